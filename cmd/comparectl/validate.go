package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the embedded catalog for authoring mistakes.",
	Long: `Validate runs every referential and numeric check over the catalog:
metric ranges, weight vector sums, question option uniqueness and
gating rule references. Intended as a CI gate for catalog edits.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cat := catalog.Default()

		if err := cat.Validate(); err != nil {
			problems := strings.Split(err.Error(), "\n")
			failColor.Printf("Catalog validation failed with %d problem(s):\n", len(problems))
			for _, p := range problems {
				fmt.Printf("  - %s\n", p)
			}
			return fmt.Errorf("catalog %s is invalid", cat.Version())
		}

		okColor.Printf("Catalog %s is valid.\n", cat.Version())
		fmt.Printf("%d categories, %d comparators, %d priorities, %d rules.\n",
			len(cat.Categories()), len(cat.ListComparators("")), len(cat.Priorities()), len(cat.AllRules()))
		return nil
	},
}
