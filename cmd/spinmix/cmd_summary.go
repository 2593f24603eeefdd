// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spinmix/internal/report"
	"github.com/katalvlaran/spinmix/record"
)

func (a *app) newSummaryCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "summary <file>... | --sqlite DB",
		Short: "Mean, spread and range of iterations per parameter value",
		Long: `Groups the records of each input by parameter value and prints, per
value, the trial count and the mean, min, max and sample standard deviation
of the iteration counts. Each file becomes one series labelled by the part of
its name before the first '_'; with --sqlite each stored run is a series.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && dbPath == "" {
				return a.usageError(cmd, "no input files")
			}
			var series []record.Series
			if dbPath != "" {
				s, err := sqliteSeries(cmd, dbPath)
				if err != nil {
					return err
				}
				series = append(series, s...)
			}
			if len(args) > 0 {
				s, err := record.SummarizeFiles(args...)
				if err != nil {
					return err
				}
				series = append(series, s...)
			}
			return report.WriteSeries(a.stdout, series, styled(a.stdout))
		},
	}
	cmd.Flags().StringVar(&dbPath, "sqlite", "", "summarize every run stored in this database")
	return cmd
}

func sqliteSeries(cmd *cobra.Command, path string) ([]record.Series, error) {
	ctx := cmd.Context()
	store, err := record.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	runs, err := store.Runs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]record.Series, 0, len(runs))
	for _, r := range runs {
		recs, err := store.Records(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%s n=%d (%s)", r.Model, r.N, r.ID.String()[:8])
		out = append(out, record.Series{Label: label, Points: record.Summarize(recs)})
	}
	return out, nil
}
