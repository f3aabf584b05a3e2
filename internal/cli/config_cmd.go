// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - "folio config" gets and sets configuration values.
//
// Command: config <list|get|set|path> [key] [value]
//
// Keys use dot notation over the config sections, e.g. site.title,
// ui.theme, posts.dir, analytics.enabled, feed.limit.
//
// Examples:
//   folio config list
//   folio config get site.title
//   folio config set site.base_url https://example.com
//   folio config path

package cli

import (
	"fmt"

	"github.com/jeranaias/folio-tui/internal/config"
)

// HandleConfig implements "folio config".
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "list", "show":
		return handleConfigList(args)
	case "get":
		return handleConfigGet(args)
	case "set":
		return handleConfigSet(args)
	case "path":
		return handleConfigPath(args)
	default:
		return fmt.Errorf("unknown config subcommand: %s\n\nValid subcommands:\n"+
			"  list  - List all keys and their values\n"+
			"  get   - Print one value\n"+
			"  set   - Change a value\n"+
			"  path  - Print the config file path", args.Subcommand)
	}
}

// handleConfigList prints every resolvable key with its current value.
func handleConfigList(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	keys := config.GetAllKeys()

	if args.JSON {
		out := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			if v, err := cfg.Get(k); err == nil {
				out[k] = v
			}
		}
		return outputJSON(out)
	}

	for _, k := range keys {
		v, err := cfg.Get(k)
		if err != nil {
			continue
		}
		fmt.Printf("%-24s %v\n", k, v)
	}
	return nil
}

// handleConfigGet prints a single value.
func handleConfigGet(args Args) error {
	if args.ConfigKey == "" {
		return fmt.Errorf("usage: folio config get <key>")
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	v, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return fmt.Errorf("unknown config key %q (see `folio config list`)", args.ConfigKey)
	}

	if args.JSON {
		return outputJSON(map[string]interface{}{args.ConfigKey: v})
	}
	fmt.Printf("%v\n", v)
	return nil
}

// handleConfigSet changes a value, validates the result, and saves.
func handleConfigSet(args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return fmt.Errorf("usage: folio config set <key> <value>")
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return fmt.Errorf("failed to set %s: %w", args.ConfigKey, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("rejected %s=%s: %w", args.ConfigKey, args.ConfigVal, err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if args.JSON {
		v, _ := cfg.Get(args.ConfigKey)
		return outputJSON(map[string]interface{}{args.ConfigKey: v})
	}
	if !args.Quiet {
		fmt.Printf("%s %s = %s\n", okStyle.Render("[OK]"), args.ConfigKey, args.ConfigVal)
	}
	return nil
}

// handleConfigPath prints where the config lives.
func handleConfigPath(args Args) error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return err
	}
	if args.JSON {
		return outputJSON(map[string]string{"path": path})
	}
	fmt.Println(path)
	return nil
}
