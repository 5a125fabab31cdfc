package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/cimviz/internal/analysis"
	"github.com/san-kum/cimviz/internal/cim"
	"github.com/san-kum/cimviz/internal/config"
	"github.com/san-kum/cimviz/internal/export"
	"github.com/san-kum/cimviz/internal/gui"
	"github.com/san-kum/cimviz/internal/logging"
	"github.com/san-kum/cimviz/internal/scene"
	"github.com/san-kum/cimviz/internal/storage"
	"github.com/san-kum/cimviz/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

// window viewer resolution; saved figures use --dpi
const windowDPI = 96

var (
	logLevel string
	devLog   bool
	log      = zap.NewNop()

	configFile    string
	particlesFile string
	// plot
	selected int
	save     bool
	output   string
	dpi      int
	size     float64
	viewer   string
	theme    string
	title    string
	// run
	tableOut   string
	seed       int64
	cells      int
	periodic   bool
	bruteForce bool
	metadata   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "cimviz",
		Short:         "cell index method neighbor detection and plotting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, devLog)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&devLog, "dev", false, "human readable console logs")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "show or save the scene around the selected particle",
		Args:  cobra.NoArgs,
		RunE:  plotScene,
	}
	plotCmd.Flags().StringVar(&configFile, "config", "input.txt", "config file (legacy input or yaml)")
	plotCmd.Flags().StringVar(&particlesFile, "particles", config.DefaultParticlesFile, "particle table")
	plotCmd.Flags().IntVar(&selected, "selected", 0, "selected particle index")
	plotCmd.Flags().BoolVar(&save, "save", false, "save the figure instead of showing it")
	plotCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "figure path; the extension selects the format")
	plotCmd.Flags().IntVar(&dpi, "dpi", config.DefaultDPI, "resolution of saved figures")
	plotCmd.Flags().Float64Var(&size, "size", config.DefaultSize, "figure side in inches")
	plotCmd.Flags().StringVar(&viewer, "viewer", config.DefaultViewer, "viewer: window or terminal")
	plotCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "terminal viewer theme: "+strings.Join(viz.ThemeNames(), ", "))
	plotCmd.Flags().StringVar(&title, "title", config.DefaultTitle, "figure title")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate a random plane and compute neighbors with the cell index method",
		Args:  cobra.NoArgs,
		RunE:  runMethod,
	}
	runCmd.Flags().StringVar(&configFile, "config", "input.txt", "generator config (legacy input or yaml)")
	runCmd.Flags().StringVar(&tableOut, "out", config.DefaultParticlesFile, "particle table to write")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().IntVar(&cells, "cells", 0, "grid side M (0 for optimum)")
	runCmd.Flags().BoolVar(&periodic, "periodic", false, "periodic boundary conditions")
	runCmd.Flags().BoolVar(&bruteForce, "brute-force", false, "compare every pair instead of using cells")
	runCmd.Flags().StringVar(&metadata, "metadata", "", "write run metadata json to this path")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "summarize neighbor counts of a particle table",
		Args:  cobra.NoArgs,
		RunE:  showStats,
	}
	statsCmd.Flags().StringVar(&particlesFile, "particles", config.DefaultParticlesFile, "particle table")
	statsCmd.Flags().StringVar(&metadata, "metadata", "", "run metadata json to print alongside")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default yaml config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(plotCmd, runCmd, statsCmd, initCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func plotScene(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.ParticlesFile = particlesFile
	}
	if flags.Changed("selected") {
		cfg.SelectedIndex = selected
	}
	if flags.Changed("save") {
		cfg.Render.Save = save
	}
	if flags.Changed("out") {
		cfg.Render.Output = output
	}
	if flags.Changed("dpi") {
		cfg.Render.DPI = dpi
	}
	if flags.Changed("size") {
		cfg.Render.Size = size
	}
	if flags.Changed("viewer") {
		cfg.Render.Viewer = viewer
	}
	if flags.Changed("theme") {
		cfg.Render.Theme = theme
	}
	if flags.Changed("title") {
		cfg.Render.Title = title
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Debug("config loaded",
		zap.String("path", configFile),
		zap.Float64("plane_length", cfg.PlaneLength),
		zap.Float64("interaction_radius", cfg.InteractionRadius),
		zap.Int("selected_index", cfg.SelectedIndex))

	particles, err := storage.ReadParticles(cfg.ParticlesFile)
	if err != nil {
		return err
	}

	s, err := scene.Build(scene.Params{
		PlaneLength:       cfg.PlaneLength,
		InteractionRadius: cfg.InteractionRadius,
		SelectedIndex:     cfg.SelectedIndex,
		Title:             cfg.Render.Title,
	}, particles)
	if err != nil {
		return err
	}
	log.Info("scene built",
		zap.String("particles", cfg.ParticlesFile),
		zap.Int("glyphs", len(s.Glyphs)),
		zap.String("selected", s.Glyphs[s.Selected].ID),
		zap.Int("neighbors", s.Count(scene.Neighbor)))

	if cfg.Render.Save {
		opts := export.Options{Size: cfg.Render.Size, DPI: cfg.Render.DPI}
		if err := export.Save(cfg.Render.Output, s, opts); err != nil {
			return err
		}
		log.Info("figure saved", zap.String("path", cfg.Render.Output), zap.Int("dpi", cfg.Render.DPI))
		return nil
	}

	switch cfg.Render.Viewer {
	case config.ViewerTerminal:
		return viz.Run(s, viz.GetTheme(cfg.Render.Theme))
	default:
		img := export.Image(s, vg.Length(cfg.Render.Size)*vg.Inch, windowDPI)
		return gui.Show(img, s.Title)
	}
}

func loadGeneratorConfig(path string) (*config.Config, error) {
	if config.IsYAML(path) {
		return config.LoadYAML(path)
	}
	return config.LoadGeneratorLegacy(path)
}

func runMethod(cmd *cobra.Command, args []string) error {
	cfg, err := loadGeneratorConfig(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	gen := &cfg.Generator
	if flags.Changed("cells") {
		gen.CellCount = cells
	}
	if flags.Changed("periodic") {
		gen.Periodic = periodic
	}
	if flags.Changed("out") || !config.IsYAML(configFile) {
		cfg.ParticlesFile = tableOut
	}
	// a seed from the flag wins; otherwise a non-zero config seed
	if flags.Changed("seed") || gen.Seed == 0 {
		gen.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	plane, err := cim.RandomPlane(cfg.PlaneLength, gen.ParticleRadii(), gen.Seed)
	if err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Timestamp:         time.Now(),
		Seed:              gen.Seed,
		ParticleCount:     len(plane.Particles),
		PlaneLength:       plane.Length,
		InteractionRadius: cfg.InteractionRadius,
		Periodic:          gen.Periodic,
		Output:            cfg.ParticlesFile,
	}

	start := time.Now()
	var neighbors cim.Neighbors
	if bruteForce {
		meta.Method = "brute-force"
		neighbors = cim.BruteForce(plane, cfg.InteractionRadius, gen.Periodic)
	} else {
		meta.Method = "cim"
		m, err := cim.New(plane, cfg.InteractionRadius, cim.WithCellCount(gen.CellCount), cim.WithPeriodic(gen.Periodic))
		if err != nil {
			return err
		}
		meta.CellCount = m.CellCount()
		if neighbors, err = m.Execute(cmd.Context()); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	meta.ElapsedMillis = elapsed.Milliseconds()

	log.Info("neighbors computed",
		zap.String("method", meta.Method),
		zap.Int("particles", meta.ParticleCount),
		zap.Int("cells", meta.CellCount),
		zap.Bool("periodic", meta.Periodic),
		zap.Int64("seed", meta.Seed),
		zap.Duration("elapsed", elapsed))

	if err := storage.SaveParticles(cfg.ParticlesFile, plane.Particles, neighbors); err != nil {
		return err
	}
	log.Info("particle table written", zap.String("path", cfg.ParticlesFile))

	if metadata != "" {
		if err := storage.SaveMetadata(metadata, meta); err != nil {
			return err
		}
		log.Info("metadata written", zap.String("path", metadata))
	}
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	particles, err := storage.ReadParticles(particlesFile)
	if err != nil {
		return err
	}
	if len(particles) == 0 {
		return errors.New("no particles")
	}

	h := analysis.NeighborHistogram(particles)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if metadata != "" {
		meta, err := storage.LoadMetadata(metadata)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "method\t%s\n", meta.Method)
		fmt.Fprintf(w, "seed\t%d\n", meta.Seed)
		fmt.Fprintf(w, "cells\t%d\n", meta.CellCount)
		fmt.Fprintf(w, "periodic\t%v\n", meta.Periodic)
		fmt.Fprintf(w, "elapsed\t%dms\n", meta.ElapsedMillis)
	}
	fmt.Fprintf(w, "particles\t%d\n", h.Total)
	fmt.Fprintf(w, "mean neighbors\t%.3f\n", h.Mean)
	fmt.Fprintf(w, "max neighbors\t%d\n", h.Max)
	fmt.Fprintf(w, "isolated\t%d\n", h.Isolated)
	w.Flush()
	fmt.Println()

	if len(h.Counts) < 2 {
		// asciigraph needs at least two points to draw a line
		return nil
	}
	graph := asciigraph.Plot(h.Counts,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption("particles by neighbor count"),
	)
	fmt.Println(graph)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "cimviz.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.DefaultConfig()
	cfg.PlaneLength = 20
	cfg.InteractionRadius = 1
	cfg.Generator.ParticleCount = 100
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
