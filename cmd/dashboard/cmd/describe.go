package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"listinglab/internal/dataset"
)

func init() {
	rootCmd.AddCommand(describeCmd)
}

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Prints the shape, column types, statistics, nulls and outliers of a spreadsheet.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		t, err := loadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		s := dataset.Summarize(t)

		fmt.Printf("%s: %s rows, %d columns\n", s.Name, humanize.Comma(int64(s.Rows)), s.Columns)

		kinds := newTable()
		kinds.AppendHeader(table.Row{"Column", "Type", "Nulls"})
		for i, k := range s.Kinds {
			kinds.AppendRow(table.Row{k.Column, k.Kind, s.Nulls[i].Nulls})
		}
		kinds.Render()

		if len(s.Describe) > 0 {
			stats := newTable()
			stats.AppendHeader(table.Row{"", "count", "mean", "std", "min", "25%", "50%", "75%", "max"})
			for _, d := range s.Describe {
				stats.AppendRow(table.Row{d.Column, d.Count, f(d.Mean), f(d.Std), f(d.Min), f(d.Q25), f(d.Median), f(d.Q75), f(d.Max)})
			}
			stats.Render()
		} else {
			stats := newTable()
			stats.AppendHeader(table.Row{"", "count", "unique", "top", "freq"})
			for _, d := range s.DescribeObject {
				stats.AppendRow(table.Row{d.Column, d.Count, d.Unique, d.Top, d.Freq})
			}
			stats.Render()
		}

		if len(s.Outliers) > 0 {
			out := newTable()
			out.AppendHeader(table.Row{"Column", "Lower fence", "Upper fence", "Outliers"})
			for _, o := range s.Outliers {
				out.AppendRow(table.Row{o.Column, f(o.Lower), f(o.Upper), o.Count})
			}
			out.Render()
		}
	},
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
