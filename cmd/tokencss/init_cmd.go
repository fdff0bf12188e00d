package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokencss.yaml config file",
	Long:  `Create a .tokencss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tokencss.yaml"); err == nil && !force {
			return fmt.Errorf(".tokencss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tokencss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .tokencss.yaml")
		return nil
	},
}

const defaultConfig = `# tokencss configuration
# Docs: https://github.com/yacobolo/tokencss

input: tokens.json
output: tokens.css

generate:
  output-mode: fluid            # fluid | fixed
  direction: mobile-first       # mobile-first | desktop-first
  alias-mode: preserved         # preserved | resolved
  dark-mode: both               # prefers-color-scheme | class | both
  color-format: hex             # hex | oklch
  legacy-fallbacks: false
  include-ids: false
  include-timestamp: false
  exclude-collections: []       # glob patterns matched against collection names
  viewport-relative: []         # identifiers opted into min(100vw, ...) output
  piecewise: []                 # identifiers opted into three-segment clamps
  text-styles: mixin            # off | mixin | class | properties

breakpoints:
  desktop: 1680
  laptop: 1200
  tablet: 768
  mobile: 480

report: summary                 # none | summary | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
