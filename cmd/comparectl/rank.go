package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/novikdental/compare-platform/internal/engine"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	rankComparator string
	rankPriority   string
	rankAnswers    []string

	topColor   = color.New(color.FgGreen, color.Bold)
	badgeColor = color.New(color.FgYellow)
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the methods of a comparator for a priority and answer set.",
	Long: `Run the same ranking the API performs and print the result as a table.

Answers are given as question=value pairs matching the comparator's
question flow; unanswered questions simply leave conditional rules unfired.`,
	Example: `  # Rank with the default balanced priority
  comparectl rank --comparator missing_tooth

  # Durability-focused ranking with an answer set
  comparectl rank --comparator missing_tooth --priority durable \
    --answer neighbors=healthy`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cat := catalog.Default()
		eng := engine.New(cat)

		cmp, ok := cat.Comparator(rankComparator)
		if !ok {
			return fmt.Errorf("unknown comparator %q", rankComparator)
		}
		if _, ok := cat.Priority(rankPriority); !ok {
			return fmt.Errorf("unknown priority %q", rankPriority)
		}
		answers, err := parseAnswers(rankAnswers)
		if err != nil {
			return err
		}

		log.Debug("ranking", "catalog_version", cat.Version(), "comparator", cmp.ID, "priority", rankPriority, "answers", len(answers))
		results := eng.Rank(cmp.ID, rankPriority, answers)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"Rank", "Method", "Score", "Badges"})

		var data [][]string
		for i, r := range results {
			label := r.MethodID
			if m, ok := cat.Method(r.MethodID); ok {
				label = m.Label
			}
			if i == 0 {
				label = topColor.Sprint(label)
			}
			data = append(data, []string{
				strconv.Itoa(i + 1),
				label,
				strconv.Itoa(r.Score),
				badgeColor.Sprint(strings.Join(r.Badges, " | ")),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		if len(results) > 0 {
			if text := eng.RecommendationText(rankPriority, results[0]); text != "" {
				fmt.Println(text)
			}
		}
		return nil
	},
}

// parseAnswers turns repeated question=value flags into the answer map.
func parseAnswers(pairs []string) (map[string]string, error) {
	answers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid answer %q, expected question=value", pair)
		}
		answers[key] = value
	}
	return answers, nil
}

func init() {
	rankCmd.Flags().StringVar(&rankComparator, "comparator", "", "comparator ID to rank (required)")
	rankCmd.Flags().StringVar(&rankPriority, "priority", "balanced", "priority profile ID")
	rankCmd.Flags().StringArrayVar(&rankAnswers, "answer", nil, "question=value answer, repeatable")
	_ = rankCmd.MarkFlagRequired("comparator")
}
