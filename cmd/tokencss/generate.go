package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/tokencss"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Compile a variables export into a responsive stylesheet",
	Long: `Read a design-token variables export and compile it into custom
properties with fluid scaling formulas and theme selectors.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("input", "tokens.json", "Variables export JSON file")
	f.String("output", "tokens.css", "Stylesheet output file (- for stdout)")
	f.String("output-mode", "fluid", "Scaling mode: fluid|fixed")
	f.String("direction", "mobile-first", "Breakpoint direction: mobile-first|desktop-first")
	f.String("alias-mode", "preserved", "Alias handling: preserved|resolved")
	f.String("dark-mode", "both", "Dark mode output: prefers-color-scheme|class|both")
	f.String("color-format", "hex", "Color format: hex|oklch")
	f.Bool("legacy-fallbacks", false, "Emit static fallbacks for clamp() output")
	f.Bool("include-ids", false, "Append variable ids as trailing comments")
	f.Bool("include-timestamp", false, "Include a generation timestamp in the banner")
	f.StringSlice("exclude-collections", nil, "Glob patterns for collections to skip")
	f.StringSlice("viewport-relative", nil, "Identifiers opted into min(100vw, ...) output")
	f.StringSlice("piecewise", nil, "Identifiers opted into three-segment clamps")
	f.String("text-styles", "mixin", "Text style shape: off|mixin|class|properties")
	f.String("report", "summary", "Report format: none|summary|json")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	inputPath := getStringWithFallback("input", "input", "tokens.json")
	outputPath := getStringWithFallback("output", "output", "tokens.css")

	graph, err := loadGraph(inputPath)
	if err != nil {
		return err
	}

	result, err := tokencss.Generate(graph, buildGenerateConfig())
	if err != nil {
		return err
	}

	if outputPath == "-" {
		fmt.Print(result.CSS)
	} else {
		if err := os.WriteFile(outputPath, []byte(result.CSS), 0644); err != nil {
			return fmt.Errorf("writing stylesheet: %w", err)
		}
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if quiet {
		return nil
	}

	switch getStringWithFallback("report", "report", "summary") {
	case "none":
	case "json":
		if err := tokencss.WriteJSON(os.Stdout, result); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	default:
		if outputPath != "-" {
			fmt.Printf("Wrote %s\n", outputPath)
		}
		useColors := getBoolWithFallback("color", "color", false) || shouldUseColors()
		tokencss.WriteReport(os.Stdout, result, useColors)
	}

	return nil
}

// shouldUseColors auto-detects color support when the flag is unset.
func shouldUseColors() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}
