package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"chatlog/internal/features"
)

type rootArgs struct {
	overrides  []string
	configPath string
}

// rootFlagNames 记录全局 flag 及其是否需要取值；遇到其他参数即停止解析。
var rootFlagNames = map[string]bool{
	"c":        true,
	"enable":   true,
	"disable":  true,
	"config":   true,
	"color":    true,
	"log-file": true,
}

func parseRootArgs(args []string) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("chatlog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var overrides stringSlice
	var enable stringSlice
	var disable stringSlice
	fs.Var(&overrides, "c", "Override config value key=value (repeatable, applied before subcommand overrides)")
	fs.Var(&enable, "enable", "Enable a feature (repeatable). Equivalent to -c features.<name>=true")
	fs.Var(&disable, "disable", "Disable a feature (repeatable). Equivalent to -c features.<name>=false")
	configPath := fs.String("config", "", "Path to config file")
	color := fs.String("color", "", "Colour diagnostics: auto|always|never")
	logFile := fs.String("log-file", "", "Append diagnostics to this file")

	head, tail := splitRootArgs(args)
	if err := fs.Parse(head); err != nil {
		return rootArgs{}, nil, err
	}

	featureOverrides, err := buildFeatureOverrides(enable, disable)
	if err != nil {
		return rootArgs{}, nil, err
	}
	all := append([]string{}, overrides...)
	all = append(all, featureOverrides...)
	if *color != "" {
		all = append(all, "color="+*color)
	}
	if *logFile != "" {
		all = append(all, "log_file="+*logFile)
	}
	rest := append(append([]string{}, fs.Args()...), tail...)
	return rootArgs{overrides: all, configPath: *configPath}, rest, nil
}

// splitRootArgs 把开头的全局 flag 与其余参数（子命令、路径、子命令 flag）分开。
func splitRootArgs(args []string) ([]string, []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") || arg == "-" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		hasValue := strings.Contains(name, "=")
		name, _, _ = strings.Cut(name, "=")
		needsValue, ok := rootFlagNames[name]
		if !ok {
			break
		}
		i++
		if needsValue && !hasValue && i < len(args) {
			i++
		}
	}
	return args[:i], args[i:]
}

func prependOverrides(root []string, overrides []string) []string {
	merged := append([]string{}, root...)
	return append(merged, overrides...)
}

func buildFeatureOverrides(enable []string, disable []string) ([]string, error) {
	var overrides []string
	for _, key := range enable {
		if !features.IsKnown(key) {
			return nil, fmt.Errorf("unknown feature flag: %s", key)
		}
		overrides = append(overrides, fmt.Sprintf("features.%s=%t", key, true))
	}
	for _, key := range disable {
		if !features.IsKnown(key) {
			return nil, fmt.Errorf("unknown feature flag: %s", key)
		}
		overrides = append(overrides, fmt.Sprintf("features.%s=%t", key, false))
	}
	return overrides, nil
}
