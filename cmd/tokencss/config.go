package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/tokencss"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".tokencss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a
// cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TOKENCSS_* prefix)
	if err := k.Load(env.Provider("TOKENCSS_", ".", func(s string) string {
		// TOKENCSS_GENERATE_OUTPUT_MODE -> generate.output.mode is wrong,
		// so only the first underscore becomes a separator for the
		// two-level keys this tool uses; the rest become hyphens.
		key := strings.ToLower(strings.TrimPrefix(s, "TOKENCSS_"))
		if i := strings.Index(key, "_"); i >= 0 && isSection(key[:i]) {
			return key[:i] + "." + strings.ReplaceAll(key[i+1:], "_", "-")
		}
		return strings.ReplaceAll(key, "_", "-")
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// isSection reports whether a key prefix names a config file section.
func isSection(prefix string) bool {
	return prefix == "generate" || prefix == "breakpoints"
}

// buildGenerateConfig constructs the library Config from koanf state.
func buildGenerateConfig() tokencss.Config {
	return tokencss.Config{
		OutputMode:       getStringWithFallback("output-mode", "generate.output-mode", "fluid"),
		Direction:        getStringWithFallback("direction", "generate.direction", "mobile-first"),
		AliasMode:        getStringWithFallback("alias-mode", "generate.alias-mode", "preserved"),
		DarkMode:         getStringWithFallback("dark-mode", "generate.dark-mode", "both"),
		ColorFormat:      getStringWithFallback("color-format", "generate.color-format", "hex"),
		LegacyFallbacks:  getBoolWithFallback("legacy-fallbacks", "generate.legacy-fallbacks", false),
		IncludeIDs:       getBoolWithFallback("include-ids", "generate.include-ids", false),
		IncludeTimestamp: getBoolWithFallback("include-timestamp", "generate.include-timestamp", false),

		ExcludeCollections: getStringsWithFallback("exclude-collections", "generate.exclude-collections"),
		ViewportRelative:   getStringsWithFallback("viewport-relative", "generate.viewport-relative"),
		Piecewise:          getStringsWithFallback("piecewise", "generate.piecewise"),
		TextStyles:         getStringWithFallback("text-styles", "generate.text-styles", "mixin"),

		Breakpoints: tokencss.Breakpoints{
			Desktop: k.Int("breakpoints.desktop"),
			Laptop:  k.Int("breakpoints.laptop"),
			Tablet:  k.Int("breakpoints.tablet"),
			Mobile:  k.Int("breakpoints.mobile"),
		},
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}
