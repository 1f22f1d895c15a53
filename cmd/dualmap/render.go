package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dualmap "github.com/flywave/go-dualmap"
	"github.com/flywave/go-dualmap/builder"
	"github.com/flywave/go-dualmap/config"
	"github.com/flywave/go-dualmap/legend"
	"github.com/flywave/go-dualmap/sample"
	"github.com/flywave/go-dualmap/simplestyle"
	"github.com/flywave/go-dualmap/source"
)

var renderFlags struct {
	project        string
	source         string
	mode           string
	yearA          string
	yearB          string
	showArea       bool
	showProduction bool
	out            string
	seed           int64
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the maps of two years as styled GeoJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := renderJob(cmd)
		if err != nil {
			return err
		}
		return runRender(cmd, job, cmd.OutOrStdout())
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.project, "project", "", "project file (.yaml, .yml or .toml)")
	f.StringVar(&renderFlags.source, "source", "", "GeoJSON URL or path, or shapefile path")
	f.StringVar(&renderFlags.mode, "mode", "", "yield, dotdensity or bivariate")
	f.StringVar(&renderFlags.yearA, "year-a", "", "year of the left map")
	f.StringVar(&renderFlags.yearB, "year-b", "", "year of the right map")
	f.BoolVar(&renderFlags.showArea, "show-area", true, "bivariate: show area")
	f.BoolVar(&renderFlags.showProduction, "show-production", true, "bivariate: show production")
	f.StringVar(&renderFlags.out, "out", "", "output directory")
	f.Int64Var(&renderFlags.seed, "seed", 0, "dot placement seed, 0 for random")
	rootCmd.AddCommand(renderCmd)
}

type job struct {
	uri            string
	mode           dualmap.Mode
	yearA, yearB   string
	showArea       bool
	showProduction bool
	outDir         string
	seed           int64
}

// renderJob merges config, project file and flags, in that order.
func renderJob(cmd *cobra.Command) (*job, error) {
	j := &job{
		uri:            cfg.Source.URL,
		yearA:          cfg.Render.YearA,
		yearB:          cfg.Render.YearB,
		showArea:       cfg.Render.ShowArea,
		showProduction: cfg.Render.ShowProduction,
		outDir:         cfg.Render.OutDir,
		seed:           cfg.Render.Seed,
	}
	modeName := cfg.Render.Mode

	if renderFlags.project != "" {
		p, err := dualmap.ParseFile(renderFlags.project)
		if err != nil {
			return nil, err
		}
		var loc config.Locator
		loc.SetBaseDir(filepath.Dir(renderFlags.project))
		j.uri = loc.Resolve(p.Datasource.GetURI())
		if missing := loc.MissingFiles(); len(missing) > 0 {
			return nil, &builder.FilesMissingError{Files: missing}
		}
		modeName = string(p.Mode)
		j.yearA, j.yearB = p.Years[0], p.Years[1]
		j.showArea, j.showProduction = p.ShowArea, p.ShowProduction
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		j.uri = renderFlags.source
	}
	if flags.Changed("mode") {
		modeName = renderFlags.mode
	}
	if flags.Changed("year-a") {
		j.yearA = renderFlags.yearA
	}
	if flags.Changed("year-b") {
		j.yearB = renderFlags.yearB
	}
	if flags.Changed("show-area") {
		j.showArea = renderFlags.showArea
	}
	if flags.Changed("show-production") {
		j.showProduction = renderFlags.showProduction
	}
	if flags.Changed("out") {
		j.outDir = renderFlags.out
	}
	if flags.Changed("seed") {
		j.seed = renderFlags.seed
	}

	mode, err := dualmap.ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	j.mode = mode
	return j, nil
}

func runRender(cmd *cobra.Command, j *job, w io.Writer) error {
	b := builder.New(source.New(cfg.Source.Timeout()), j.uri)
	b.SetCache(builder.NewCache(source.New(cfg.Source.Timeout()), cfg.Source.CacheTTL()))
	b.SetSampler(sample.New(j.seed, cfg.Render.MaxTries))
	b.SetToggles(builder.StaticToggles{Area: j.showArea, Production: j.showProduction})
	if j.mode == dualmap.Bivariate {
		b.SetLegendRenderer(&lockedRenderer{next: legend.TextRenderer{W: w}})
	}

	mapA, mapB := simplestyle.New(), simplestyle.New()
	canvasA, canvasB := builder.NewCanvas(mapA), builder.NewCanvas(mapB)
	if err := b.Compare(cmd.Context(), canvasA, canvasB, j.mode, j.yearA, j.yearB); err != nil {
		return err
	}

	if err := os.MkdirAll(j.outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	outputs := []struct {
		name   string
		year   string
		canvas *builder.Canvas
		m      *simplestyle.Map
	}{
		{"map_a", j.yearA, canvasA, mapA},
		{"map_b", j.yearB, canvasB, mapB},
	}
	for _, o := range outputs {
		n := o.canvas.Layer().NumFeatures()
		if o.canvas.Layer() == nil {
			zap.L().Warn("render: no data", zap.String("map", o.name), zap.String("year", o.year))
		}
		base := filepath.Join(j.outDir, o.name)
		if err := o.m.WriteFiles(base); err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (%s): %d features -> %s%s\n", o.name, o.year, n, base, simplestyle.FileSuffix)
	}
	return nil
}

// lockedRenderer serializes legends of concurrently built maps so their
// tables do not interleave on the shared writer.
type lockedRenderer struct {
	mu   sync.Mutex
	next legend.Renderer
}

func (r *lockedRenderer) RenderLegend(m *legend.Matrix) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.RenderLegend(m)
}
