package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
// Unknown keys and unparsable values are ignored.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "color":
			if oneOf(strings.ToLower(val), colorModes) {
				cfg.Color = strings.ToLower(val)
			}
		case "mode":
			if oneOf(strings.ToLower(val), renderModes) {
				cfg.Mode = strings.ToLower(val)
			}
		case "log_file", "log-file":
			cfg.LogFile = val
		case "copy":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Copy = b
			}
		default:
			name, ok := strings.CutPrefix(key, "features.")
			if !ok || name == "" {
				continue
			}
			b, err := strconv.ParseBool(val)
			if err != nil {
				continue
			}
			features := make(map[string]bool, len(cfg.Features)+1)
			for k, v := range cfg.Features {
				features[k] = v
			}
			features[name] = b
			cfg.Features = features
		}
	}
	return cfg
}
