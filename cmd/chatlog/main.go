package main

import (
	"fmt"
	"os"
	"strings"

	"chatlog/internal/config"
	"chatlog/internal/logger"
)

var log = logger.Named("chatlog")

const usage = `usage: chatlog [global flags] <file.json>
       chatlog [global flags] <command> [flags]

commands:
  render <file.json>   print the transcript (default when given a path)
  dump <file.json>     print the JSON structure of an export
  view <file.json>     page through the transcript
  watch <file.json>    re-render whenever the export changes
  config show|set      inspect or edit the config file
  features             list feature flags
  completion bash|zsh  print shell completions

global flags:
  -c key=value         override a config value (repeatable)
  --enable/--disable   toggle a feature flag (repeatable)
  --config PATH        config file (default ~/.chatlog/config.toml, env CHATLOG_CONFIG)
  --color MODE         auto|always|never
  --log-file PATH      also append diagnostics to PATH
`

func main() {
	logger.Configure(os.Stderr, logger.ShouldColor(logger.ColorAuto, os.Stderr))

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	cfg, err := loadConfig(root)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Configure(os.Stderr, logger.ShouldColor(cfg.Color, os.Stderr))
	if strings.TrimSpace(cfg.LogFile) != "" {
		if logFile, _, err := logger.SetupFile(cfg.LogFile); err != nil {
			log.Warnf("failed to initialize log file (%s): %v", cfg.LogFile, err)
		} else {
			defer logFile.Close()
		}
	}

	if len(rest) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	switch rest[0] {
	case "render":
		renderMain(cfg, rest[1:])
	case "dump":
		dumpMain(cfg, rest[1:])
	case "view":
		viewMain(cfg, rest[1:])
	case "watch":
		watchMain(cfg, rest[1:])
	case "config":
		configMain(root, cfg, rest[1:])
	case "features":
		featuresMain(cfg)
	case "completion":
		completionMain(rest[1:])
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
	default:
		// 其余参数一律当作文件路径，不对疑似子命令做猜测。
		renderMain(cfg, rest)
	}
}

func loadConfig(root rootArgs) (config.Config, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return cfg, err
	}
	cfg = config.ApplyKVOverrides(cfg, root.overrides)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
