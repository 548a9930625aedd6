package main

import (
	"os"
	"path/filepath"

	"chatlog/internal/config"
	"chatlog/internal/pager"
)

func viewMain(cfg config.Config, args []string) {
	ra, err := parseRenderArgs("view", cfg, args)
	if err != nil {
		log.Fatalf("%v", err)
	}
	text, err := renderFile(cfg, ra.path, ra.mode, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if ra.copy {
		if err := copyToClipboard(text); err != nil {
			log.Warnf("copy to clipboard failed: %v", err)
		}
	}
	title := filepath.Base(ra.path) + " · " + ra.mode.String()
	if err := pager.Run(pager.Options{Title: title, Content: text}); err != nil {
		log.Fatalf("pager exit: %v", err)
	}
}
