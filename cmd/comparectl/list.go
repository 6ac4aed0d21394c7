package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCategoryFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries.",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var listCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show all comparator categories.",
	RunE: func(_ *cobra.Command, _ []string) error {
		cat := catalog.Default()

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"ID", "Title", "Subtitle", "Comparators"})

		var data [][]string
		for _, c := range cat.Categories() {
			data = append(data, []string{
				c.ID,
				c.Title,
				c.Subtitle,
				strconv.Itoa(len(cat.ListComparators(c.ID))),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		return table.Render()
	},
}

var listComparatorsCmd = &cobra.Command{
	Use:   "comparators",
	Short: "Show comparators, optionally filtered by category.",
	Example: `  # All comparators
  comparectl list comparators

  # Only the missing-teeth category
  comparectl list comparators --category missing`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cat := catalog.Default()

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"ID", "Category", "Title", "Methods", "Questions", "Rules"})

		var data [][]string
		for _, cmp := range cat.ListComparators(listCategoryFilter) {
			data = append(data, []string{
				cmp.ID,
				cmp.CategoryID,
				cmp.Title,
				strconv.Itoa(len(cmp.MethodIDs)),
				strconv.Itoa(len(cmp.Questions)),
				strconv.Itoa(len(cat.Rules(cmp.ID))),
			})
		}
		if len(data) == 0 {
			fmt.Printf("No comparators for category %q.\n", listCategoryFilter)
			return nil
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		return table.Render()
	},
}

var listMethodsCmd = &cobra.Command{
	Use:   "methods [comparator-id]",
	Short: "Show the methods of a comparator with their scoring metrics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cat := catalog.Default()

		cmp, ok := cat.Comparator(args[0])
		if !ok {
			return fmt.Errorf("unknown comparator %q", args[0])
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"ID", "Label", "Durability", "Speed", "MinInvasive", "Maintenance", "Risk"})

		var data [][]string
		for _, id := range cmp.MethodIDs {
			m, ok := cat.Method(id)
			if !ok {
				data = append(data, []string{id, "(missing)", "", "", "", "", ""})
				continue
			}
			data = append(data, []string{
				m.ID,
				m.Label,
				fmtMetric(m.Metrics.Durability),
				fmtMetric(m.Metrics.Speed),
				fmtMetric(m.Metrics.MinInvasive),
				fmtMetric(m.Metrics.Maintenance),
				fmtMetric(m.Metrics.Risk),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Printf("%s — %s\n", cmp.Title, cmp.Subtitle)
		return nil
	},
}

func fmtMetric(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}

func init() {
	listComparatorsCmd.Flags().StringVar(&listCategoryFilter, "category", "", "restrict output to one category ID")
}
