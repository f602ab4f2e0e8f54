package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ecisneros/cosmofig/internal/config"
	"github.com/ecisneros/cosmofig/internal/cosmo"
	"github.com/ecisneros/cosmofig/internal/export"
	"github.com/ecisneros/cosmofig/internal/figures"
	"github.com/ecisneros/cosmofig/internal/storage"
	"github.com/ecisneros/cosmofig/internal/tui"
	"github.com/ecisneros/cosmofig/internal/viz"
)

var (
	dataDir    string
	outDir     string
	formats    []string
	seed       int64
	configFile string
	preset     string
	gridSize   int
	svgOut     string
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "cosmofig",
		Short: "figure generation for stochastic cosmology with finite memory",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cosmofig", "grid run directory")

	renderCmd := &cobra.Command{
		Use:   "render [figure]",
		Short: "render figures (all, eos, cutoff, valley)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFigures,
	}
	renderCmd.Flags().StringVar(&outDir, "out", "", "output directory (default from config)")
	renderCmd.Flags().StringSliceVar(&formats, "format", nil, "output formats (pdf, png, svg)")
	renderCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the variance grid")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "evaluate the variance grid and store the run",
		RunE:  evaluateGrid,
	}
	gridCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	gridCmd.Flags().IntVar(&gridSize, "grid", 0, "grid size per axis")
	gridCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	gridCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	previewCmd := &cobra.Command{
		Use:   "preview [figure]",
		Short: "terminal preview of the scalar models (eos, cutoff)",
		Args:  cobra.ExactArgs(1),
		RunE:  previewFigure,
	}
	previewCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	previewCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "interactive 3d view of the variance surface",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewSurface,
	}
	viewCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (fresh evaluation)")
	viewCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored grid runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print run variance grid as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the run's wireframe surface as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "surface.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, gridCmd, previewCmd, viewCmd, listCmd,
		exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and CLI overrides, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("out") {
		cfg.OutputDir = outDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Formats = formats
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("grid") {
		cfg.Valley.GridSize = gridSize
	}
	return cfg, nil
}

func renderFigures(cmd *cobra.Command, args []string) error {
	which := "all"
	if len(args) > 0 {
		which = args[0]
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	r := figures.NewRenderer(cfg.OutputDir, cfg.Formats)

	report := func(name string, paths []string) {
		for _, p := range paths {
			log.Info().Str("figure", name).Str("path", p).Msg("wrote artifact")
		}
	}

	if which == "all" || which == "eos" {
		paths, err := r.EOSFigure(cfg.EOS)
		if err != nil {
			return err
		}
		report("eos", paths)
	}

	if which == "all" || which == "cutoff" {
		paths, err := r.CutoffFigure(cfg.Cutoff)
		if err != nil {
			return err
		}
		report("cutoff", paths)
	}

	if which == "all" || which == "valley" {
		field, attractor, err := figures.EvaluateValley(cfg.Valley, cfg.Seed)
		if err != nil {
			return err
		}
		paths, err := r.ValleyFigure(field, attractor)
		if err != nil {
			return err
		}
		report("valley", paths)
	}

	if which != "all" && which != "eos" && which != "cutoff" && which != "valley" {
		return fmt.Errorf("unknown figure: %s (expected all, eos, cutoff, valley)", which)
	}
	return nil
}

func evaluateGrid(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	field, _, err := figures.EvaluateValley(cfg.Valley, cfg.Seed)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(field, cfg.Seed)
	if err != nil {
		return err
	}

	cols, rows := field.Dims()
	minTau, minOmega, minVar := field.Min()
	lo, hi := field.Range()

	log.Info().Str("run", runID).Msg("grid saved")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tSEED\tMIN VAR\tAT TAU\tAT OMEGA\tRANGE")
	fmt.Fprintf(w, "%dx%d\t%d\t%.4f\t%.2f\t%.2f\t[%.4f, %.4f]\n",
		rows, cols, cfg.Seed, minVar, minTau, minOmega, lo, hi)
	return w.Flush()
}

func previewFigure(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	switch args[0] {
	case "eos":
		zs := cosmo.Linspace(0, cfg.EOS.ZMax, 160)
		for _, amp := range cfg.EOS.Amplitudes {
			eos := cosmo.EquationOfState{
				Amplitude: amp,
				Omega:     cfg.EOS.Omega,
				Delta:     cfg.EOS.Delta,
				ZTau:      cfg.EOS.ZTau,
			}
			if err := eos.Validate(); err != nil {
				return err
			}
			graph := asciigraph.Plot(eos.Eval(zs),
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("w(z), A=%.2f", amp)),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	case "cutoff":
		zs := cosmo.Linspace(0, cfg.Cutoff.ZMax, 160)
		window := cosmo.Cutoff{Center: cfg.Cutoff.Center, Width: cfg.Cutoff.Width}
		if err := window.Validate(); err != nil {
			return err
		}
		graph := asciigraph.Plot(window.Eval(zs),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("S(z), z_c=%.1f dz=%.1f", cfg.Cutoff.Center, cfg.Cutoff.Width)),
		)
		fmt.Println(graph)
	default:
		return fmt.Errorf("unknown preview: %s (expected eos or cutoff)", args[0])
	}
	return nil
}

func viewSurface(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	field, attractor, runSeed, err := resolveField(cfg, args)
	if err != nil {
		return err
	}
	return tui.Run(field, attractor, runSeed)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no grid runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tGRID\tMIN VAR\tAT (TAU, OMEGA)")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%.4f\t(%.2f, %.2f)\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.GridRows, run.GridCols,
			run.MinVariance,
			run.MinTau, run.MinOmega,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	return export.FieldJSON(os.Stdout, field, attractorForRun(), meta.Seed)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}
	return export.FieldCSV(os.Stdout, field)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	field, err := st.LoadField(args[0])
	if err != nil {
		return err
	}

	attractor := attractorForRun()
	curve := valleyCurve(attractor)
	surface := viz.NewSurface(field, curve)

	canvas := viz.NewCanvas(120, 40)
	surface.Render(canvas, viz.NewCamera())

	svg := export.CanvasSVG(canvas, 4)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	log.Info().Str("path", filepath.Clean(svgOut)).Msg("wrote surface svg")
	return nil
}
