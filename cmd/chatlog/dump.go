package main

import (
	"errors"
	"io"
	"os"

	"chatlog/internal/config"
	"chatlog/internal/inspect"
	"chatlog/internal/transcript"
)

func dumpMain(cfg config.Config, args []string) {
	if err := runDump(cfg, args, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func runDump(cfg config.Config, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: chatlog dump <file.json>")
	}
	path := args[0]
	data, err := transcript.ReadFile(path)
	if err != nil {
		return withSuggestion(cfg, path, err)
	}
	if err := transcript.CheckSyntax(data); err != nil {
		var malformed transcript.MalformedInputError
		if errors.As(err, &malformed) {
			malformed.Path = path
			return malformed
		}
		return err
	}
	return inspect.Dump(out, data)
}
