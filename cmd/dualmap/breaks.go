package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flywave/go-dualmap/classify"
	"github.com/flywave/go-dualmap/legend"
	"github.com/flywave/go-dualmap/source"
)

var breaksFlags struct {
	source  string
	field   string
	classes int
}

var breaksCmd = &cobra.Command{
	Use:   "breaks",
	Short: "Print the natural breaks of one attribute",
	RunE: func(cmd *cobra.Command, args []string) error {
		uri := cfg.Source.URL
		if cmd.Flags().Changed("source") {
			uri = breaksFlags.source
		}
		if breaksFlags.classes < 1 {
			return fmt.Errorf("classes must be at least 1, got %d", breaksFlags.classes)
		}

		fc, err := source.New(cfg.Source.Timeout()).Fetch(cmd.Context(), uri)
		if err != nil {
			return err
		}
		values := fc.Values(breaksFlags.field)
		if len(values) == 0 {
			return fmt.Errorf("no numeric values for %q in %s", breaksFlags.field, uri)
		}

		breaks := classify.Breaks(values, breaksFlags.classes)
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "class\tfrom\tto\tfeatures")
		counts := make([]int, len(breaks)-1)
		for _, v := range values {
			counts[classify.Index(v, breaks)]++
		}
		for i := 0; i+1 < len(breaks); i++ {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i, legend.Abbrev(breaks[i]), legend.Abbrev(breaks[i+1]), counts[i])
		}
		return tw.Flush()
	},
}

func init() {
	f := breaksCmd.Flags()
	f.StringVar(&breaksFlags.source, "source", "", "GeoJSON URL or path, or shapefile path")
	f.StringVar(&breaksFlags.field, "field", "", "attribute to classify, e.g. Yield_2020")
	f.IntVar(&breaksFlags.classes, "classes", 6, "number of classes")
	_ = breaksCmd.MarkFlagRequired("field")
	rootCmd.AddCommand(breaksCmd)
}
