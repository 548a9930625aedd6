package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"chatlog/internal/config"
	"chatlog/internal/features"
	"github.com/pelletier/go-toml/v2"
)

func configMain(root rootArgs, cfg config.Config, args []string) {
	if err := runConfig(root, cfg, args, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func runConfig(root rootArgs, cfg config.Config, args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "show" {
		data, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# %s\n", cfg.Source)
		_, err = out.Write(data)
		return err
	}
	if args[0] != "set" || len(args) != 3 {
		return errors.New("usage: chatlog config show | chatlog config set <key> <value>")
	}
	key, value := strings.TrimSpace(args[1]), strings.TrimSpace(args[2])
	if err := checkConfigValue(key, value); err != nil {
		return err
	}
	// 只写入文件中的配置，-c/--color 等临时覆盖不落盘。
	stored, err := config.LoadStored(root.configPath)
	if err != nil {
		return err
	}
	updated := config.ApplyKVOverrides(stored, []string{key + "=" + value})
	if err := config.Save(root.configPath, updated); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s = %s\n", key, value)
	return nil
}

// checkConfigValue 提前拒绝非法键值；ApplyKVOverrides 对它们只会静默忽略。
func checkConfigValue(key, value string) error {
	switch {
	case key == "color" || key == "mode":
		probe := config.Default()
		if key == "color" {
			probe.Color = strings.ToLower(value)
		} else {
			probe.Mode = strings.ToLower(value)
		}
		return probe.Validate()
	case key == "log_file" || key == "log-file":
		return nil
	case key == "copy":
		return checkBool(key, value)
	}
	if name, ok := strings.CutPrefix(key, "features."); ok {
		if !features.IsKnown(name) {
			return fmt.Errorf("unknown feature flag: %s", name)
		}
		return checkBool(key, value)
	}
	return fmt.Errorf("unknown config key: %s", key)
}

func checkBool(key, value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("%s expects true or false, got %q", key, value)
	}
	return nil
}
