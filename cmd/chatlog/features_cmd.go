package main

import (
	"fmt"
	"io"
	"os"

	"chatlog/internal/config"
	"chatlog/internal/features"
)

func featuresMain(cfg config.Config) {
	printFeatures(cfg, os.Stdout)
}

func printFeatures(cfg config.Config, out io.Writer) {
	for _, spec := range features.Specs {
		enabled := features.Enabled(cfg.Features, spec.Key)
		fmt.Fprintf(out, "%s\t%s\t%t\t%s\n", spec.Key, spec.Stage, enabled, spec.Description)
	}
}
