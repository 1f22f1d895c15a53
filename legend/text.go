package legend

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextRenderer writes a legend as a tab aligned table of hex colors.
type TextRenderer struct {
	W io.Writer
}

func (r TextRenderer) RenderLegend(m *Matrix) error {
	if m.Empty() {
		_, err := fmt.Fprintln(r.W, "legend: nothing shown")
		return err
	}

	tw := tabwriter.NewWriter(r.W, 0, 4, 2, ' ', 0)
	if m.ShowA && len(m.LabelsA) > 0 {
		header := append([]string{""}, m.LabelsA...)
		fmt.Fprintln(tw, strings.Join(header, "\t"))
	}
	for i, row := range m.Rows {
		cells := make([]string, 0, len(row)+1)
		label := ""
		if m.ShowB && i < len(m.LabelsB) {
			label = m.LabelsB[i]
		}
		cells = append(cells, label)
		for _, s := range row {
			cells = append(cells, s.Fill.Hex())
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
