package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/san-kum/scenecore/internal/capability"
	"github.com/san-kum/scenecore/internal/config"
	"github.com/san-kum/scenecore/internal/export"
	"github.com/san-kum/scenecore/internal/layout"
	"github.com/san-kum/scenecore/internal/logging"
	"github.com/san-kum/scenecore/internal/metrics"
	"github.com/san-kum/scenecore/internal/quality"
	"github.com/san-kum/scenecore/internal/sim"
	"github.com/san-kum/scenecore/internal/storage"
	"github.com/san-kum/scenecore/internal/viz"
)

var (
	dataDir    string
	configFile string
	profile    string
	logLevel   string
	theme      string
	seed       int64

	frames int
	dt     float64
	asJSON bool

	tracePath string
	noSave    bool
	series    string

	tierName string

	view        string
	outPath     string
	size        int
	supersample int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands; with none given it runs the preview.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scenecore",
		Short:         "capability-gated portfolio scene engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				lvl, ok := logging.ParseLevel(logLevel)
				if !ok {
					return fmt.Errorf("unknown log level: %s", logLevel)
				}
				l := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
				logging.SetLogger(l)
				gg.SetLogger(l)
			}
			if theme != "" {
				viz.SetTheme(theme)
			}
			return nil
		},
		RunE: runPreview,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".scenecore", "run data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&profile, "profile", "", "device profile (see 'profiles')")
	pf.StringVar(&logLevel, "log-level", "", "log to stderr at debug|info|warn|error")
	pf.StringVar(&theme, "theme", "", "preview theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.Int64Var(&seed, "seed", 0, "particle seed (0 keeps the config value)")

	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "probe the device and print its capability report",
		RunE:  detectDevice,
	}
	detectCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	qualityCmd := &cobra.Command{
		Use:   "quality",
		Short: "print the quality table, or the row for one tier",
		RunE:  showQuality,
	}
	qualityCmd.Flags().StringVar(&tierName, "tier", "", "tier name (none|low|medium|high)")
	qualityCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	graphCmd := &cobra.Command{
		Use:   "graph",
		Short: "print the skill graph layout",
		RunE:  showGraph,
	}
	graphCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	carouselCmd := &cobra.Command{
		Use:   "carousel [count]",
		Short: "print the carousel layout for count cards",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showCarousel,
	}
	carouselCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the scene headlessly and record metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 0, "frames to run (0 uses the config)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "frame delta in seconds (0 uses the config)")
	runCmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON summary")
	runCmd.Flags().StringVar(&tracePath, "trace", "", "also write the per-frame trace CSV here")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "", "trace column to plot (default: residuals)")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "interactive terminal preview",
		RunE:  runPreview,
	}
	previewCmd.Flags().Float64Var(&dt, "dt", 0, "frame delta in seconds (0 uses the config)")

	exportCmd := &cobra.Command{
		Use:       "export [json|svg|png|jpeg|webp]",
		Short:     "export a frame of the scene",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"json", "svg", "png", "jpeg", "webp"},
		RunE:      exportFrame,
	}
	exportCmd.Flags().IntVar(&frames, "frames", 0, "frames to run before the snapshot (0 uses the config)")
	exportCmd.Flags().StringVar(&view, "view", "carousel", "carousel or graph")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&size, "size", 512, "picture size in pixels")
	exportCmd.Flags().IntVar(&supersample, "supersample", 2, "raster supersampling factor")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list the built-in device profiles",
		RunE:  listProfiles,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scenecore.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(detectCmd, qualityCmd, graphCmd, carouselCmd, runCmd, listCmd, plotCmd, previewCmd, exportCmd, profilesCmd, initCmd)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if profile != "" {
		cfg.Profile = profile
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSession() (*sim.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return sim.NewSession(cfg, nil), nil
}

func profileName(cfg *config.Config) string {
	if cfg.Profile != "" {
		return cfg.Profile
	}
	return "custom"
}

func detectDevice(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s, err := loadSession()
	if err != nil {
		return err
	}
	report, settings := s.Report(), s.Settings()
	if asJSON {
		return export.WriteJSON(out, struct {
			Report   capability.Report `json:"report"`
			Settings quality.Settings  `json:"settings"`
		}{report, settings})
	}

	lines := []string{
		viz.GradientText("device capability", viz.CurrentTheme.Primary, viz.CurrentTheme.Secondary),
		"",
		viz.KeyValue("profile", profileName(s.Config())),
		viz.KeyValue("tier", viz.TierBadge(report.Tier)),
		viz.KeyValue("supported", report.Supported),
		viz.KeyValue("mobile", report.IsMobile),
		viz.KeyValue("context", renderLabel(report.RenderVersion)),
	}
	if report.Renderer != "" {
		lines = append(lines, viz.KeyValue("renderer", report.Renderer))
	}
	if report.Reason != "" {
		lines = append(lines, viz.KeyValue("reason", report.Reason))
	}
	lines = append(append(lines, ""), settingsLines(settings)...)
	fmt.Fprintln(out, viz.Panel.Render(strings.Join(lines, "\n")))
	return nil
}

func renderLabel(v int) string {
	if v == 0 {
		return "none"
	}
	return "webgl" + strconv.Itoa(v)
}

func settingsLines(s quality.Settings) []string {
	return []string{
		viz.KeyValue("antialias", s.Antialias),
		viz.KeyValue("shadows", s.Shadows),
		viz.KeyValue("particles", s.ParticleCount),
		viz.KeyValue("max fps", s.MaxFPS),
		viz.KeyValue("pixel ratio", fmt.Sprintf("%.2f", s.PixelRatio)),
	}
}

func showQuality(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ratio := capability.NewStaticHost(cfg.GetDevice()).DevicePixelRatio()

	tiers := capability.Tiers()
	if tierName != "" {
		t, err := capability.ParseTier(tierName)
		if err != nil {
			return err
		}
		tiers = []capability.Tier{t}
	}

	if asJSON {
		rows := make(map[string]quality.Settings, len(tiers))
		for _, t := range tiers {
			rows[t.String()] = quality.Resolve(t, ratio)
		}
		return export.WriteJSON(out, rows)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIER\tANTIALIAS\tSHADOWS\tPARTICLES\tMAX FPS\tPIXEL RATIO")
	for _, t := range tiers {
		s := quality.Resolve(t, ratio)
		fmt.Fprintf(w, "%s\t%t\t%t\t%d\t%d\t%.2f\n", t, s.Antialias, s.Shadows, s.ParticleCount, s.MaxFPS, s.PixelRatio)
	}
	return w.Flush()
}

func showGraph(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g := layout.BuildGraph(sim.Items(cfg.Skills), cfg.Scene.GraphRadius)
	if asJSON {
		return export.WriteJSON(out, g)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tWEIGHT\tRADIUS\tX\tY\tZ")
	for _, n := range g.Nodes {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			n.ID, n.Category, n.Weight, n.Radius, n.Position.X, n.Position.Y, n.Position.Z)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d edges\n", len(g.Edges))
	for _, e := range g.Edges {
		fmt.Fprintf(out, "  %s -- %s (%.2f)\n", e.SourceID, e.TargetID, e.Strength)
	}

	fmt.Fprintln(out, "\ncategories:")
	for _, name := range layout.Categories() {
		c, _ := layout.LookupCategory(name)
		fmt.Fprintf(out, "  %s %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●"), name)
	}
	return nil
}

func showCarousel(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	count := len(cfg.Projects)
	if len(args) > 0 {
		if count, err = strconv.Atoi(args[0]); err != nil || count < 0 {
			return fmt.Errorf("invalid card count: %s", args[0])
		}
	}
	cards := layout.Carousel(count, cfg.Scene.CarouselRadius)
	if asJSON {
		return export.WriteJSON(out, cards)
	}

	mode := "ring"
	if layout.IsSpiral(count) {
		mode = "spiral"
	}
	fmt.Fprintf(out, "%d cards, %s layout, %d ring(s)\n\n", count, mode, layout.RingCount(count))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tRING\tX\tY\tZ\tYAW\tSCALE")
	for i, c := range cards {
		fmt.Fprintf(w, "%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.2f\n",
			i, c.Ring, c.Position.X, c.Position.Y, c.Position.Z, c.Rotation.Y, c.Scale)
	}
	return w.Flush()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s, err := loadSession()
	if err != nil {
		return err
	}
	cfg := s.Config()
	if frames == 0 {
		frames = cfg.Run.Frames
	}
	if dt == 0 {
		dt = cfg.Run.Dt
	}

	runner := sim.NewRunner(s)
	for _, m := range metrics.Standard() {
		runner.AddMetric(m)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := runner.Run(ctx, frames, dt)
	if result == nil {
		return err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "interrupted after %d frames\n", result.FramesRun)
	}
	elapsed := time.Since(start)

	if tracePath != "" {
		if err := writeFile(tracePath, out, func(w io.Writer) error { return export.WriteTraceCSV(w, result) }); err != nil {
			return err
		}
	}

	runID := ""
	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err = st.Save(storage.RunMetadata{
			Profile: profileName(cfg),
			Tier:    s.Report().Tier.String(),
			Seed:    cfg.Seed,
			Dt:      dt,
			Cards:   len(s.Cards()),
			Nodes:   len(s.Graph().Nodes),
		}, result)
		if err != nil {
			return err
		}
	}

	if asJSON {
		return export.WriteJSON(out, export.Summarize(result, dt, cfg.Seed))
	}

	fmt.Fprintf(out, "completed %d frames in %v\n", result.FramesRun, elapsed)
	if runID != "" {
		fmt.Fprintf(out, "run id: %s\n", runID)
	}
	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range metrics.Standard() {
		fmt.Fprintf(out, "  %s: %.6f\n", m.Name(), result.Metrics[m.Name()])
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  error: %v\n", e)
	}

	chart := viz.PlotSeries("camera (cyan) and rotation (yellow) residuals",
		[][]float64{result.Series["camera_residual"], result.Series["rotation_residual"]}, 60, 10)
	if chart != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, chart)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROFILE\tTIER\tFRAMES\tSETTLED\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3f\t%s\n",
			r.ID, r.Profile, r.Tier, r.Frames, r.Metrics["settled"], r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	header, cols, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s  %s  %d frames\n\n", meta.ID, viz.Subtle.Render(meta.Profile+"/"+meta.Tier), meta.Frames)
	if series != "" {
		values, ok := cols[series]
		if !ok {
			return fmt.Errorf("unknown series %q (available: %s)", series, strings.Join(header, ", "))
		}
		fmt.Fprintln(out, viz.Plot(series, values, 60, 12))
		return nil
	}
	fmt.Fprintln(out, viz.PlotSeries("camera (cyan) and rotation (yellow) residuals",
		[][]float64{cols["camera_residual"], cols["rotation_residual"]}, 60, 12))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Plot("camera height", cols["cam_y"], 60, 8))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	if dt == 0 {
		dt = s.Config().Run.Dt
	}
	return viz.Run(s, dt)
}

func exportFrame(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	format := strings.ToLower(args[0])
	v, err := export.ParseView(view)
	if err != nil {
		return err
	}
	s, err := loadSession()
	if err != nil {
		return err
	}
	if frames == 0 {
		frames = s.Config().Run.Frames
	}

	var last sim.Frame
	runner := sim.NewRunner(s)
	runner.AddObserver(sim.ObserverFunc(func(f sim.Frame) { last = f }))
	if _, err := runner.Run(context.Background(), frames, s.Config().Run.Dt); err != nil {
		return err
	}
	snap := export.NewSnapshot(s, last)

	return writeFile(outPath, out, func(w io.Writer) error {
		switch format {
		case "json":
			return export.WriteJSON(w, snap)
		case "svg":
			_, err := io.WriteString(w, export.SceneSVG(snap, v, size))
			return err
		}
		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		opts := export.DefaultRasterOptions()
		opts.Size, opts.Supersample, opts.View = size, supersample, v
		return export.WriteRaster(w, snap, f, opts)
	})
}

func listProfiles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tTIER\tSUPPORTED\tRENDERER")
	for _, name := range config.ListProfiles() {
		p, _ := config.GetProfile(name)
		r := capability.Detect(capability.NewStaticHost(p))
		renderer := r.Renderer
		if renderer == "" {
			renderer = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", name, r.Tier, r.Supported, renderer)
	}
	return w.Flush()
}

// writeFile runs fn against path, or stdout when path is "" or "-".
func writeFile(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
