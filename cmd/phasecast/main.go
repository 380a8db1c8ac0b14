package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/phasecast/internal/analysis"
	"github.com/san-kum/phasecast/internal/config"
	"github.com/san-kum/phasecast/internal/embed"
	"github.com/san-kum/phasecast/internal/export"
	"github.com/san-kum/phasecast/internal/generate"
	"github.com/san-kum/phasecast/internal/logging"
	"github.com/san-kum/phasecast/internal/pipeline"
	"github.com/san-kum/phasecast/internal/series"
	"github.com/san-kum/phasecast/internal/storage"
	"github.com/san-kum/phasecast/internal/viz"
)

var (
	dataDir string
	verbose bool

	// Source flags
	column    string
	generator string
	length    int
	seed      int64

	// Embedding flags
	maxLag int
	maxDim int
	tau    int
	dim    int

	// Forecast flags
	modelName    string
	steps        int
	splitRatio   float64
	reference    string
	refColumn    string
	onlineUpdate bool
	learningRate float64
	neighbors    int

	// Config file and preset
	configFile string
	preset     string

	// Output
	outPath   string
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phasecast",
		Short: "delay-embedding analysis and forecasting for scalar time series",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".phasecast", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "estimate embedding parameters and chaos diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	addSourceFlags(analyzeCmd)
	addEmbeddingFlags(analyzeCmd)

	forecastCmd := &cobra.Command{
		Use:   "forecast [file]",
		Short: "run the full embedding and forecasting pipeline",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runForecast,
	}
	addSourceFlags(forecastCmd)
	addEmbeddingFlags(forecastCmd)
	addForecastFlags(forecastCmd)

	generateCmd := &cobra.Command{
		Use:   "generate [name]",
		Short: "emit a synthetic series as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVar(&length, "n", config.DefaultLength, "series length")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "generator seed")
	generateCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list forecast runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored forecast",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored forecast to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and diagnostics to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a stored forecast chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [file]",
		Short: "run the pipeline and replay the forecast in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSourceFlags(liveCmd)
	addEmbeddingFlags(liveCmd)
	addForecastFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "playback frame rate")

	rootCmd.AddCommand(analyzeCmd, forecastCmd, generateCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&column, "column", "", "csv column name")
	cmd.Flags().StringVar(&generator, "generator", "", "synthetic generator instead of a file")
	cmd.Flags().IntVar(&length, "n", config.DefaultLength, "generated series length")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addEmbeddingFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&maxLag, "max-lag", config.DefaultMaxLag, "delay search bound")
	cmd.Flags().IntVar(&maxDim, "max-dim", config.DefaultMaxDim, "dimension search bound")
	cmd.Flags().IntVar(&tau, "tau", 0, "fixed embedding delay (0 = estimate)")
	cmd.Flags().IntVar(&dim, "dim", 0, "fixed embedding dimension (0 = estimate)")
}

func addForecastFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelName, "model", "ar", "forecasting model (ar, knn, naive, auto)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "forecast horizon")
	cmd.Flags().Float64Var(&splitRatio, "split", config.DefaultSplitRatio, "train/test split ratio")
	cmd.Flags().StringVar(&reference, "reference", "", "reference csv for online correction")
	cmd.Flags().StringVar(&refColumn, "ref-column", "", "reference csv column name")
	cmd.Flags().BoolVar(&onlineUpdate, "online-update", false, "one model update per observed step")
	cmd.Flags().Float64Var(&learningRate, "lr", config.DefaultLearningRate, "ar online learning rate")
	cmd.Flags().IntVar(&neighbors, "k", config.DefaultNeighbors, "knn neighbor count")
}

// buildConfig resolves the effective configuration: defaults, then preset,
// then config file, then explicit CLI flags, then the positional source.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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
	if flags.Changed("column") {
		cfg.Source.Column = column
	}
	if flags.Changed("generator") {
		cfg.Source.Kind = "generate"
		cfg.Source.Generator = generator
	}
	if flags.Changed("n") {
		cfg.Source.Length = length
	}
	if flags.Changed("seed") {
		cfg.Source.Seed = seed
	}
	if flags.Changed("max-lag") {
		cfg.Embedding.MaxLag = maxLag
	}
	if flags.Changed("max-dim") {
		cfg.Embedding.MaxDim = maxDim
	}
	if flags.Changed("tau") {
		cfg.Embedding.Tau = tau
	}
	if flags.Changed("dim") {
		cfg.Embedding.Dim = dim
	}
	if f := flags.Lookup("model"); f != nil && f.Changed {
		cfg.Forecast.Model = modelName
	}
	if f := flags.Lookup("steps"); f != nil && f.Changed {
		cfg.Forecast.Steps = steps
	}
	if f := flags.Lookup("split"); f != nil && f.Changed {
		cfg.Forecast.SplitRatio = splitRatio
	}
	if f := flags.Lookup("reference"); f != nil && f.Changed {
		cfg.Forecast.Reference = reference
	}
	if f := flags.Lookup("ref-column"); f != nil && f.Changed {
		cfg.Forecast.RefColumn = refColumn
	}
	if f := flags.Lookup("online-update"); f != nil && f.Changed {
		cfg.Forecast.OnlineUpdate = onlineUpdate
	}
	if f := flags.Lookup("lr"); f != nil && f.Changed {
		cfg.Forecast.LearningRate = learningRate
	}
	if f := flags.Lookup("k"); f != nil && f.Changed {
		cfg.Forecast.Neighbors = neighbors
	}

	if len(args) == 1 {
		if args[0] == "-" {
			cfg.Source.Kind = "stdin"
		} else {
			cfg.Source.Kind = "csv"
			cfg.Source.Path = args[0]
		}
	}
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	log := logging.New(verbose)

	p := pipeline.New(cfg, log)
	s, err := p.LoadSeries()
	if err != nil {
		return err
	}

	emb := cfg.Embedding
	selectedTau := emb.Tau
	if selectedTau <= 0 {
		lagBound := emb.MaxLag
		if lagBound >= s.Len() {
			lagBound = s.Len() - 1
		}
		selectedTau, err = embed.EstimateDelay(s, lagBound)
		if err != nil {
			return err
		}
	}
	selectedDim := emb.Dim
	if selectedDim <= 0 {
		selectedDim, err = embed.EstimateDimension(s, selectedTau, emb.MaxDim)
		if err != nil {
			return err
		}
	}

	lyap := analysis.Lyapunov(s.Values())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "series\t%s (%d samples)\n", s.Name(), s.Len())
	fmt.Fprintf(w, "delay (tau)\t%d\n", selectedTau)
	fmt.Fprintf(w, "dimension (m)\t%d\n", selectedDim)
	if lyap.Defined {
		fmt.Fprintf(w, "lyapunov\t%.6f (%s)\n", lyap.Exponent, lyap.Classification())
	} else {
		fmt.Fprintf(w, "lyapunov\t%s\n", lyap.Classification())
	}
	if h, err := analysis.Hurst(s.Values()); err == nil {
		fmt.Fprintf(w, "hurst\t%.4f (%s)\n", h, analysis.ClassifyHurst(h))
	}
	if period := analysis.DominantPeriod(s.Values()); period > 0 {
		fmt.Fprintf(w, "dominant period\t%.1f samples\n", period)
	}
	w.Flush()

	if acf := analysis.ACF(s.Values(), 30); acf != nil {
		fmt.Println()
		fmt.Println(asciigraph.Plot(acf,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("autocorrelation (lags 0-30)"),
		))
	}
	return nil
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	log := logging.New(verbose)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	p := pipeline.New(cfg, log)
	s, err := p.LoadSeries()
	if err != nil {
		return err
	}
	ref, err := p.LoadReference()
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := p.Run(s, ref)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", result.Model)
	fmt.Fprintf(w, "tau\t%d\n", result.Tau)
	fmt.Fprintf(w, "dim\t%d\n", result.Dim)
	fmt.Fprintf(w, "dataset\t%d rows (%d train / %d test)\n", result.DatasetLen, result.TrainLen, result.TestLen)
	fmt.Fprintf(w, "test rmse\t%.6f\n", result.TestScore)
	fmt.Fprintf(w, "lyapunov\t%.6f (%s)\n", result.Lyapunov, result.LyapunovClass)
	if result.HurstClass != "" {
		fmt.Fprintf(w, "hurst\t%.4f (%s)\n", result.Hurst, result.HurstClass)
	}
	for name, val := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", name, val)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(plotForecast(s, result.Forecast))
	return nil
}

// plotForecast renders the series tail with the forecast appended.
func plotForecast(s *series.Series, predictions []float64) string {
	tail := s.Len()
	if tail > 100 {
		tail = 100
	}
	data := append(s.Slice(s.Len()-tail, s.Len()).Values(), predictions...)
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("last %d samples + %d-step forecast", tail, len(predictions))),
	)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := generate.Get(args[0], seed)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, generate.Names())
	}
	values := gen.Generate(length)

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	defer w.Flush()
	if err := w.Write([]string{"value"}); err != nil {
		return err
	}
	for _, v := range values {
		if err := w.Write([]string{strconv.FormatFloat(v, 'f', 8, 64)}); err != nil {
			return err
		}
	}
	return nil
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
	fmt.Fprintln(w, "ID\tSERIES\tTIME\tMODEL\tTAU\tDIM\tSTEPS\tRMSE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%.4f\n",
			run.ID,
			run.Series,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Model,
			run.Tau,
			run.Dim,
			run.Steps,
			run.TestScore,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	values, _, err := st.LoadForecast(args[0])
	if err != nil {
		return err
	}
	if len(values) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s (tau=%d, dim=%d)\n\n", meta.Model, meta.Tau, meta.Dim)
	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%d-step forecast", len(values))),
	))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	values, records, err := st.LoadForecast(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"step", "value", "mode"}); err != nil {
		return err
	}
	for i, v := range values {
		mode := ""
		if i < len(records) {
			mode = string(records[i].Mode)
		}
		if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64), mode}); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	values, records, err := st.LoadForecast(args[0])
	if err != nil {
		return err
	}

	payload := struct {
		Meta     *storage.RunMetadata `json:"meta"`
		Forecast []float64            `json:"forecast"`
		Records  interface{}          `json:"records"`
	}{meta, values, records}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	values, _, err := st.LoadForecast(args[0])
	if err != nil {
		return err
	}

	svg := export.ChartSVG([]export.Line{
		{Values: values, Color: "#00ff88"},
	}, 800, 400)
	if svg == "" {
		return fmt.Errorf("not enough data to render")
	}

	path := outPath
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	log := logging.New(verbose)

	p := pipeline.New(cfg, log)
	s, err := p.LoadSeries()
	if err != nil {
		return err
	}
	ref, err := p.LoadReference()
	if err != nil {
		return err
	}
	result, err := p.Run(s, ref)
	if err != nil {
		return err
	}

	return viz.Run(s.Name(), s.Values(), result.Forecast, result.Records, frameRate)
}
