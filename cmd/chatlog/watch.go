package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"chatlog/internal/config"
	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

func watchMain(cfg config.Config, args []string) {
	ra, err := parseRenderArgs("watch", cfg, args)
	if err != nil {
		log.Fatalf("%v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := runWatch(ctx, cfg, ra, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// runWatch 先渲染一次，然后在文件每次写入/重建后重新渲染，直到 ctx 结束。
// 单次渲染失败只记录错误，不退出。
func runWatch(ctx context.Context, cfg config.Config, ra renderArgs, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// 监听所在目录：编辑器常以“写临时文件再重命名”的方式保存。
	dir := filepath.Dir(ra.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(ra.path)

	pass := 0
	render := func() {
		pass++
		text, err := renderFile(cfg, ra.path, ra.mode, os.Stderr)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		fmt.Fprintf(out, "==> %s (#%d, %s) <==\n", ra.path, pass, time.Now().Format(time.TimeOnly))
		io.WriteString(out, text)
	}
	render()

	var debounce <-chan time.Time
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchTrigger(event, target) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			debounce = timer.C
		case <-debounce:
			debounce = nil
			render()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch error: %v", err)
		}
	}
}

func isWatchTrigger(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
