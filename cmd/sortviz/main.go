package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/perf"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	preset     string
	values     string
	size       int
	target     int
	seed       int64
	runs       int
	frameRate  int
	speed      int
	theme      string
	verbose    bool
	sound      bool
	logFile    string
	// run
	live       bool
	printSteps bool
	// bench
	benchSizes string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "sorting and search algorithm visualizer",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use a named starting array")
	pf.StringVar(&values, "values", "", "comma-separated starting array")
	pf.IntVar(&size, "size", config.DefaultSize, "random array size")
	pf.IntVar(&target, "target", config.DefaultTarget, "linear search target")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.IntVar(&runs, "runs", perf.DefaultRuns, "timed runs averaged per algorithm")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.IntVar(&speed, "speed", config.DefaultSpeed, "animation steps per frame")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal color theme")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&sound, "sound", false, "sonify animation steps")
	pf.StringVar(&logFile, "log-file", "", "log destination (default stderr; tui logs only to this file)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal control panel",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm headless and report its steps",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&live, "live", false, "animate in the terminal")
	runCmd.Flags().BoolVar(&printSteps, "steps", false, "print every snapshot")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "plot inversions per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time the reference implementations",
		Args:  cobra.NoArgs,
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().StringVar(&benchSizes, "sizes", "", "comma-separated random array sizes (default: the configured array)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := experiment.NewRegistry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tKIND")
			for _, name := range registry.ListAlgorithms() {
				entry, err := registry.Get(name)
				if err != nil {
					return err
				}
				info := entry.Info
				kind := "sort"
				if info.Search {
					kind = "search"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Title, kind)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list starting array presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tALGORITHM\tVALUES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, p.Algorithm, viz.FormatArray(p.Values, 12))
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(tuiCmd, runCmd, traceCmd, benchCmd, listCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers the preset, the config file and explicitly set
// flags, in that order. args[0], when present, names the algorithm.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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

	flags := cmd.Flags()
	if flags.Changed("values") {
		vals, err := session.ParseNumbers(values)
		if err != nil {
			return nil, err
		}
		cfg.Values = vals
	}
	if flags.Changed("size") {
		cfg.RandomSize = size
		if !flags.Changed("values") {
			cfg.Values = nil
		}
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("runs") {
		cfg.Runs = runs
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds a production zap logger writing to path (stderr
// when empty), at debug level when verbose.
func newLogger(path string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	if path != "" {
		zcfg.OutputPaths = []string{path}
		zcfg.ErrorOutputPaths = []string{path}
	}
	return zcfg.Build()
}

func newSession(cfg *config.Config, logger *zap.Logger) (*session.Session, func()) {
	sess := session.New(cfg).WithLogger(logger.Named("session"))
	if !sound {
		return sess, func() {}
	}
	son := audio.NewSonifier(logger.Named("audio"))
	if err := son.Start(); err != nil {
		logger.Warn("sound disabled", zap.Error(err))
		return sess, func() {}
	}
	sess.Player().AddObserver(son)
	return sess, son.Stop
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	logger, err := newLogger(logFile, verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sess, stop := newSession(cfg, logger)
	defer stop()
	gui.Run(sess, logger.Named("gui"))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if logFile != "" {
		if logger, err = newLogger(logFile, verbose); err != nil {
			return err
		}
	}
	defer logger.Sync()

	sess, stop := newSession(cfg, logger)
	defer stop()
	return tui.Run(sess, tui.Options{FPS: cfg.FPS, Theme: cfg.Theme})
}

func algorithmArg(cfg *config.Config) (algo.Info, error) {
	if cfg.Algorithm == "" {
		return algo.Info{}, fmt.Errorf("no algorithm given (available: %s)", strings.Join(algo.Names(), ", "))
	}
	return algo.Lookup(cfg.Algorithm)
}

func newRand(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	info, err := algorithmArg(cfg)
	if err != nil {
		return err
	}
	input := cfg.InitialValues(newRand(cfg))
	out := cmd.OutOrStdout()

	if live {
		return runLive(cmd, cfg, info, input)
	}

	exp := experiment.New(experiment.Config{
		Algorithm:     info.Name,
		Values:        input,
		Target:        cfg.Target,
		KeepSnapshots: printSteps,
	})
	if err := exp.SetupFromRegistry(experiment.NewRegistry()); err != nil {
		return err
	}

	start := time.Now()
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "algorithm: %s\n", info.Title)
	fmt.Fprintf(out, "input:     %s\n", viz.FormatArray(result.Initial, 30))
	if printSteps {
		for i, s := range result.Snapshots {
			fmt.Fprintf(out, "%6d  %s\n", i+1, viz.FormatArray(s, 30))
		}
	}
	fmt.Fprintf(out, "final:     %s\n", viz.FormatArray(result.Final, 30))
	if info.Search {
		fmt.Fprintf(out, "target:    %d found at %v\n", cfg.Target, algo.Matches(result.Final, cfg.Target))
	}
	fmt.Fprintf(out, "steps:     %d (%v)\n\n", result.Steps, elapsed)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range metrics.Defaults() {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), result.Metrics[m.Name()])
	}
	return w.Flush()
}

// runLive drives a player at the configured frame rate and draws each
// frame to the terminal.
func runLive(cmd *cobra.Command, cfg *config.Config, info algo.Info, input []int) error {
	gen, err := algo.New(info.Name, cfg.Target)
	if err != nil {
		return err
	}

	r := tui.NewLiveRenderer(cmd.OutOrStdout(), info.Title, cfg.FPS).WithTheme(viz.GetTheme(cfg.Theme))
	if info.Search {
		r.WithHighlight(func(vals []int, i int) bool { return vals[i] == cfg.Target })
	}

	p := player.New()
	p.SetSpeed(cfg.Speed)
	p.AddObserver(r)

	r.Start()
	defer r.Stop()

	ctx := cmd.Context()
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	p.Start(gen, input)
	defer p.Stop()
	for !p.Completed() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Tick()
		}
	}
	r.Flush(p.Current(), p.Steps())
	fmt.Fprintf(cmd.OutOrStdout(), "done: %d steps in %v\n", p.Steps(), p.VisualTime().Round(time.Millisecond))
	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	info, err := algorithmArg(cfg)
	if err != nil {
		return err
	}

	exp := experiment.New(experiment.Config{
		Algorithm: info.Name,
		Values:    cfg.InitialValues(newRand(cfg)),
		Target:    cfg.Target,
	})
	if err := exp.SetupFromRegistry(experiment.NewRegistry()); err != nil {
		return err
	}
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	m, _ := exp.Metric("inversions")
	history := m.(*metrics.Inversions).History()
	if len(history) < 2 {
		return fmt.Errorf("not enough steps to plot (%d)", len(history))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "algorithm: %s\n", info.Title)
	fmt.Fprintf(out, "steps: %d\n\n", result.Steps)
	fmt.Fprintln(out, asciigraph.Plot(history,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("inversions per step"),
	))
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	rng := newRand(cfg)
	meter := perf.NewMeter(cfg.Runs)

	inputs := [][]int{cfg.InitialValues(rng)}
	if benchSizes != "" {
		sizes, err := session.ParseNumbers(benchSizes)
		if err != nil {
			return err
		}
		inputs = inputs[:0]
		big := *cfg
		big.MaxRandomSize = max(cfg.MaxRandomSize, 1<<20)
		for _, n := range sizes {
			if n <= 0 {
				return fmt.Errorf("%w: %d", session.ErrNonPositiveSize, n)
			}
			inputs = append(inputs, big.RandomValues(rng, n))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "averaging %d runs\n\n", meter.Runs())
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tALGORITHM\tMEAN")
	for _, in := range inputs {
		timings := append(meter.Sorts(in), meter.LinearSearch(in, cfg.Target)...)
		for _, t := range timings {
			fmt.Fprintf(w, "%d\t%s\t%s\n", len(in), t.Name, t)
		}
	}
	return w.Flush()
}
