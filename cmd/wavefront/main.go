package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavefront/internal/analysis"
	"github.com/san-kum/wavefront/internal/automation"
	"github.com/san-kum/wavefront/internal/camera"
	"github.com/san-kum/wavefront/internal/clock"
	"github.com/san-kum/wavefront/internal/config"
	"github.com/san-kum/wavefront/internal/dynamo"
	"github.com/san-kum/wavefront/internal/export"
	"github.com/san-kum/wavefront/internal/field"
	"github.com/san-kum/wavefront/internal/metrics"
	"github.com/san-kum/wavefront/internal/session"
	"github.com/san-kum/wavefront/internal/sim"
	"github.com/san-kum/wavefront/internal/storage"
	"github.com/san-kum/wavefront/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	// Overrides applied over the file or preset
	seed       int64
	integrator string
	count      int
	speed      float64
	style      string
	projection string
	fps        int
	theme      string
	// Headless runs; tick counts are per command since the defaults differ
	runSteps     int
	compareSteps int
	svgSteps     int
	surveySteps  int
	frameDt      float64
	csvPath      string
	jsonPath     string
	save         bool
	noPlot       bool
	// SVG export
	outPath string
	svgW    int
	svgH    int
	braille bool
	// Live view
	gifPath string
	// Parameter listing
	numParams int
	force     bool
	// Survey
	trials int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wavefront",
		Short:         "wavefront flow through random vector fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".wavefront", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to file")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	pf.IntVar(&count, "count", config.DefaultCount, "wavefront count (2*count-1 points)")
	pf.Float64Var(&speed, "speed", clock.DefaultSpeed, "initial simulation speed")
	pf.StringVar(&style, "style", config.DefaultStyle, "plot style (point, line, radial)")
	pf.StringVar(&projection, "projection", "orthographic", "projection (orthographic, perspective)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("panel theme (%s)", strings.Join(viz.ThemeNames(), ", ")))

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the live terminal view",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	for _, c := range []*cobra.Command{rootCmd, liveCmd} {
		c.Flags().StringVar(&gifPath, "gif", "wavefront.gif", "output path for G recordings")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&runSteps, "steps", 1000, "number of ticks")
	runCmd.Flags().Float64Var(&frameDt, "dt", 0, "nominal frame length in seconds (default 1/fps)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write metric series to CSV")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write the result to JSON")
	runCmd.Flags().BoolVar(&save, "save", false, "archive the run in the data directory")
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plots")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same seed",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().IntVar(&compareSteps, "steps", 1000, "number of ticks")
	compareCmd.Flags().Float64Var(&frameDt, "dt", 0, "nominal frame length in seconds (default 1/fps)")

	svgCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render one frame after a headless run to SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	svgCmd.Flags().IntVar(&svgSteps, "steps", 500, "ticks before the frame is taken")
	svgCmd.Flags().Float64Var(&frameDt, "dt", 0, "nominal frame length in seconds (default 1/fps)")
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "wavefront.svg", "output file (- for stdout)")
	svgCmd.Flags().IntVar(&svgW, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgH, "height", 600, "image height")
	svgCmd.Flags().BoolVar(&braille, "braille", false, "export the braille rendering instead of vector lines")

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "print generated parameter sets",
		Args:  cobra.NoArgs,
		RunE:  listParams,
	}
	paramsCmd.Flags().IntVarP(&numParams, "num", "n", 10, "number of sets")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the metric series of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOUNT\tSPEED\tSTYLE\tPROJECTION\tAXES")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.1f\t%s\t%s\t%d\n",
					name, p.Wavefront.Count, p.Clock.Speed, p.Plot.Style, p.Camera.Projection, p.Params.Axes)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
	configCmd.AddCommand(configInitCmd, configShowCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "periodicity of a saved run's metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of headless runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	surveyCmd := &cobra.Command{
		Use:   "survey",
		Short: "classify random parameter sets as stable or runaway",
		Args:  cobra.NoArgs,
		RunE:  runSurvey,
	}
	surveyCmd.Flags().IntVar(&trials, "trials", 20, "number of parameter sets")
	surveyCmd.Flags().IntVar(&surveySteps, "steps", 500, "ticks per trial")
	surveyCmd.Flags().Float64Var(&frameDt, "dt", 0, "nominal frame length in seconds (default 1/fps)")

	rootCmd.AddCommand(liveCmd, runCmd, compareCmd, svgCmd, paramsCmd, listCmd, plotCmd, analyzeCmd,
		scenarioCmd, surveyCmd, presetsCmd, configCmd)
	return rootCmd
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := setupLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := session.FromConfig(cfg, log)
	if err != nil {
		return err
	}
	return viz.Run(sess, viz.Options{
		FPS:     cfg.View.FPS,
		Theme:   cfg.View.Theme,
		GIFPath: gifPath,
		Log:     log,
	})
}

// headless builds a session and runs it for the requested steps. The run
// stops early on interrupt and returns what it recorded.
func headless(cmd *cobra.Command, cfg *config.Config, steps int) (*session.Session, *sim.Result, error) {
	log, closeLog, err := setupLogger(false)
	if err != nil {
		return nil, nil, err
	}
	defer closeLog()

	sess, err := session.FromConfig(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runner := sim.New(sess, log)
	runner.AddObserver(runawayWatch(log))
	result, err := runner.Run(ctx, steps, resolvedDt(cfg))
	if err != nil && !errors.Is(err, context.Canceled) {
		return nil, nil, err
	}
	if err != nil {
		log.Warn("run interrupted", "steps", result.Steps)
	}
	return sess, result, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	sess, result, err := headless(cmd, cfg, runSteps)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("params: %s\n", sess.Params())
	fmt.Printf("completed %d steps in %v\n", result.Steps, elapsed)

	if !noPlot {
		fmt.Println()
		for _, name := range result.Names() {
			if len(result.Series[name]) < 2 {
				continue
			}
			fmt.Println(asciigraph.Plot(result.Series[name],
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(name),
			))
			fmt.Println()
		}
	}

	fmt.Println("metrics:")
	for _, name := range result.Names() {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	if csvPath != "" {
		if err := writeFile(csvPath, func(f *os.File) error { return export.SeriesToCSV(f, result) }); err != nil {
			return err
		}
		fmt.Printf("series written to %s\n", csvPath)
	}
	if jsonPath != "" {
		err := writeFile(jsonPath, func(f *os.File) error {
			return export.ResultToJSON(f, sess.Params().String(), cfg.Integrator, resolvedDt(cfg), result)
		})
		if err != nil {
			return err
		}
		fmt.Printf("result written to %s\n", jsonPath)
	}
	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		name := preset
		if name == "" {
			name = "custom"
		}
		runID, err := st.Save(storage.RunMetadata{
			Preset:     name,
			Seed:       cfg.Seed,
			FrameDt:    resolvedDt(cfg),
			Integrator: cfg.Integrator,
			Params:     sess.Params().String(),
		}, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	fmt.Printf("comparing integrators (seed=%d, steps=%d, dt=%.4f)\n\n", cfg.Seed, compareSteps, resolvedDt(cfg))
	fmt.Printf("%-12s  %-12s  %-12s  %-12s  %-12s\n", "integrator", metrics.SpreadName, metrics.VelocityName, metrics.RunawayName, "time_ms")
	fmt.Println(strings.Repeat("-", 68))

	for _, name := range args {
		c := *cfg
		c.Integrator = name
		if err := c.Validate(); err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		_, result, err := headless(cmd, &c, compareSteps)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		fmt.Printf("%-12s  %12.6f  %12.6f  %12.0f  %12.2f\n", name,
			result.Metrics[metrics.SpreadName], result.Metrics[metrics.VelocityName], result.Metrics[metrics.RunawayName],
			float64(elapsed.Microseconds())/1000)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sess, _, err := headless(cmd, cfg, svgSteps)
	if err != nil {
		return err
	}

	vp := camera.Viewport{Width: float64(svgW), Height: float64(svgH)}
	frame := sess.Render(vp, 0)

	write := func(w io.Writer) error { return export.WriteFrameSVG(w, frame, svgW, svgH) }
	if braille {
		canvas := viz.NewCanvas(svgW/2, svgH/4)
		for _, seg := range frame.Segments {
			canvas.DrawSegment(seg)
		}
		write = func(w io.Writer) error {
			_, err := io.WriteString(w, export.CanvasToSVG(canvas, 1))
			return err
		}
	}

	if outPath == "-" {
		return write(os.Stdout)
	}
	if err := writeFile(outPath, func(f *os.File) error { return write(f) }); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d segments)\n", outPath, len(frame.Segments))
	return nil
}

// runawayWatch logs the first tick at which any point stops being finite.
func runawayWatch(log *slog.Logger) sim.ObserverFunc {
	reported := false
	return func(points []dynamo.Vec3, elapsed float64) {
		if reported {
			return
		}
		for i, p := range points {
			if !p.IsFinite() {
				log.Warn("runaway onset", "tick", elapsed, "point", i, "points", len(points))
				reported = true
				return
			}
		}
	}
}

func listParams(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	gen, err := field.NewGenerator(rand.NewSource(cfg.Seed), cfg.Params)
	if err != nil {
		return err
	}

	fmt.Printf("seed: %d\n\n", cfg.Seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tA1\tA2\tA3\tP\tQ\tR\tS\tV\tW\tU")
	for i := 0; i < numParams; i++ {
		p := gen.Generate()
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			i, p.A1, p.A2, p.A3, p.P, p.Q, p.R, p.S, p.V, p.W, p.U)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSTEPS\tDT\tINTEG\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%s\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.FrameDt,
			run.Integrator,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, times, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("params: %s\n", meta.Params)
	fmt.Printf("samples: %d\n\n", len(times))

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(asciigraph.Plot(series[name],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs tick"),
		))
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, times, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(times) == 0 {
		return fmt.Errorf("no data to analyze")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(times))

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tPERIOD (ticks)\tFINAL")
	for _, name := range names {
		vals := series[name]
		period := "-"
		if p := analysis.DominantPeriod(vals); p > 0 {
			period = fmt.Sprintf("%.1f", p)
		}
		fmt.Fprintf(w, "%s\t%s\t%.6f\n", name, period, vals[len(vals)-1])
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	log, closeLog, err := setupLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := automation.RunScenario(ctx, sc, log)

	fmt.Printf("scenario: %s (%d/%d steps)\n", sc.Name, len(results), len(sc.Steps))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tTICKS\tSPREAD\tVELOCITY\tRUNAWAY\tPARAMS")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\t%.0f\t%s\n", i+1, r.Result.Steps,
			r.Result.Metrics[metrics.SpreadName], r.Result.Metrics[metrics.VelocityName], r.Result.Metrics[metrics.RunawayName], r.Params)
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	return err
}

func runSurvey(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := setupLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	results, err := automation.RunSurvey(ctx, &automation.SurveyConfig{
		Base:   cfg,
		Trials: trials,
		Ticks:  surveySteps,
		Dt:     frameDt,
		Seed:   cfg.Seed,
	}, log)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSEED\tSTABLE\tSPREAD\tRUNAWAY\tLYAPUNOV")
	for _, t := range results {
		fmt.Fprintf(w, "%d\t%d\t%v\t%.4f\t%d\t%.4f\n", t.ID, t.Seed, t.Stable, t.Spread, t.Runaway, t.Lyapunov)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stable, unstable := automation.SurveyStats(results)
	fmt.Printf("\nstable: %d  runaway: %d\n", stable, unstable)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "wavefront.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists (use --force to overwrite)", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func resolvedDt(cfg *config.Config) float64 {
	if frameDt != 0 {
		return frameDt
	}
	return cfg.FrameDt()
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
