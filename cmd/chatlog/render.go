package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"

	"chatlog/internal/config"
	"chatlog/internal/features"
	"chatlog/internal/inspect"
	"chatlog/internal/logger"
	"chatlog/internal/transcript"
	"github.com/atotto/clipboard"
)

// copyToClipboard 可在测试中替换，避免触碰系统剪贴板。
var copyToClipboard = clipboard.WriteAll

func renderMain(cfg config.Config, args []string) {
	if err := runRender(cfg, args, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}

type renderArgs struct {
	path string
	mode transcript.Mode
	copy bool
}

func parseRenderArgs(name string, cfg config.Config, args []string) (renderArgs, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	modeName := fs.String("mode", cfg.Mode, "Render mode: auto|flat|threaded")
	copyOut := fs.Bool("copy", cfg.Copy, "Copy the rendered transcript to the clipboard")
	paths, err := parseInterspersed(fs, args)
	if err != nil {
		return renderArgs{}, err
	}
	if len(paths) != 1 {
		return renderArgs{}, errors.New("usage: chatlog " + name + " [--mode auto|flat|threaded] [--copy] <file.json>")
	}
	mode, err := transcript.ParseMode(*modeName)
	if err != nil {
		return renderArgs{}, err
	}
	return renderArgs{path: paths[0], mode: mode, copy: *copyOut}, nil
}

// runRender 先完整渲染到内存，成功后才写出，失败时不留下半截记录。
func runRender(cfg config.Config, args []string, out io.Writer, diag io.Writer) error {
	ra, err := parseRenderArgs("render", cfg, args)
	if err != nil {
		return err
	}
	text, err := renderFile(cfg, ra.path, ra.mode, diag)
	if err != nil {
		return err
	}
	if ra.copy {
		if err := copyToClipboard(text); err != nil {
			log.Warnf("copy to clipboard failed: %v", err)
		}
	}
	_, err = io.WriteString(out, text)
	return err
}

func renderFile(cfg config.Config, path string, mode transcript.Mode, diag io.Writer) (string, error) {
	data, err := transcript.ReadFile(path)
	if err != nil {
		return "", withSuggestion(cfg, path, err)
	}
	if features.Enabled(cfg.Features, features.DumpBeforeRender) && diag != nil {
		if err := inspect.Dump(diag, data); err != nil {
			log.Warnf("structure dump failed: %v", err)
		}
	}
	doc, err := transcript.DecodeFile(path, data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	renderer := transcript.NewRenderer(transcript.Options{
		Mode:   mode,
		Warner: logger.Named("transcript"),
	})
	if err := renderer.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
