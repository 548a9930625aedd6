package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chatlog/internal/config"
	"chatlog/internal/features"
	"chatlog/internal/transcript"
	"github.com/sahilm/fuzzy"
)

// withSuggestion 在输入文件不存在时附上同目录下最相近的 *.json 文件名。
func withSuggestion(cfg config.Config, path string, err error) error {
	if !transcript.IsNotFound(err) || !features.Enabled(cfg.Features, features.DidYouMean) {
		return err
	}
	if guess := suggestPath(path); guess != "" {
		return fmt.Errorf("%w (did you mean '%s'?)", err, guess)
	}
	return err
}

func suggestPath(missing string) string {
	dir := filepath.Dir(missing)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return ""
	}
	results := fuzzy.Find(strings.ToLower(filepath.Base(missing)), lowerAll(names))
	if len(results) == 0 {
		return ""
	}
	return filepath.Join(dir, names[results[0].Index])
}

func lowerAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.ToLower(name)
	}
	return out
}
