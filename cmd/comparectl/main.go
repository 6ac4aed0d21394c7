// Command comparectl inspects and exercises the treatment comparison
// catalog from the terminal: listing comparators, running rankings and
// validating the authored data before a deploy.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/novikdental/compare-platform/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set by the release pipeline at build time.
var version = "dev"

// log is the shared diagnostics logger. Text output on stderr keeps the
// tables on stdout clean; raise COMPARECTL_LOG_LEVEL for debug detail.
var log = logging.Default()

var rootCmd = &cobra.Command{
	Use:           "comparectl",
	Short:         "Inspect and test the treatment comparison catalog.",
	Long:          `comparectl works against the same embedded catalog the API serves: list categories, comparators and methods, run a ranking for a given answer set, and validate the catalog data.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig wires environment variables into Viper.
func initConfig() {
	viper.SetEnvPrefix("COMPARECTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("color", "yes")
	viper.SetDefault("log-level", "warn")

	if viper.GetString("color") == "no" {
		color.NoColor = true
	}
	log = logging.NewText(viper.GetString("log-level"))
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(validateCmd)

	listCmd.AddCommand(listCategoriesCmd)
	listCmd.AddCommand(listComparatorsCmd)
	listCmd.AddCommand(listMethodsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
