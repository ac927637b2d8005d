package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/pkg/dataset"
	"github.com/boxkit/boxkit/pkg/pipeline"
	"github.com/boxkit/boxkit/pkg/stat"
)

// summaryOpts holds the command-line flags for the summary command.
type summaryOpts struct {
	whiskerK float64
}

// newSummaryCmd creates the summary command, which prints the five-number
// summary and outlier count per series as a terminal table.
func newSummaryCmd() *cobra.Command {
	opts := summaryOpts{}

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Print the five-number summary per series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.whiskerK, "whisker-k", 0, "IQR multiplier for outlier fences")

	return cmd
}

func runSummary(ctx context.Context, input string, opts *summaryOpts) error {
	logger := loggerFromContext(ctx)

	ds, err := dataset.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d series from %s", len(ds.Series), input)

	runner := pipeline.NewRunner(logger)
	summaries, err := runner.Summarize(ds, pipeline.Options{WhiskerK: opts.whiskerK})
	if err != nil {
		return err
	}

	if ds.Title != "" {
		caption := ds.Title
		if ds.Units != "" {
			caption = fmt.Sprintf("%s (%s)", caption, ds.Units)
		}
		fmt.Println(StyleTitle.Render(caption))
	}
	fmt.Println(summaryTable(summaries))
	return nil
}

// summaryTable formats the summaries as a bordered table, one series per row.
func summaryTable(summaries []stat.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			formatValue(s.Min),
			formatValue(s.Q1),
			formatValue(s.Median),
			formatValue(s.Q3),
			formatValue(s.Max),
			formatValue(s.IQR),
			strconv.Itoa(len(s.Outliers)),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Series", "Min", "Q1", "Median", "Q3", "Max", "IQR", "Outliers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return StyleTitle.Padding(0, 1)
			}
			if col == 0 {
				return StyleValue.Padding(0, 1)
			}
			return StyleNumber.Padding(0, 1)
		}).
		String()
}

// formatValue renders a summary statistic the shortest way that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
