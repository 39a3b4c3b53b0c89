package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/arpitban/ljmc/internal/analysis"
	"github.com/arpitban/ljmc/internal/box"
	"github.com/arpitban/ljmc/internal/config"
	"github.com/arpitban/ljmc/internal/initial"
	"github.com/arpitban/ljmc/internal/mc"
	"github.com/arpitban/ljmc/internal/metrics"
	"github.com/arpitban/ljmc/internal/potential"
	"github.com/arpitban/ljmc/internal/storage"
	"github.com/arpitban/ljmc/internal/viz"
	"github.com/arpitban/ljmc/internal/xyz"
)

var (
	dataDir string

	particles   int
	boxLength   float64
	cutoff      float64
	epsilon     float64
	sigma       float64
	temperature float64
	steps       int
	maxDisp     float64
	adjustEvery int
	sampleEvery int
	seed        int64
	replicas    int
	initMethod  string
	initFile    string
	configFile  string
	preset      string

	// analysis/plot parameters
	maxLag int
	bins   int
	rMax   float64
	// live view
	frameRate    int
	stepsPerTick int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ljmc",
		Short: "Metropolis Monte Carlo for the Lennard-Jones fluid",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ljmc", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [name]",
		Short: "run a Monte Carlo simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	energyCmd := &cobra.Command{
		Use:   "energy [config.xyz]",
		Short: "one-shot energy report for a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE:  reportEnergy,
	}
	energyCmd.Flags().Float64Var(&boxLength, "box-length", config.DefaultBoxLength, "box side length")
	energyCmd.Flags().Float64Var(&cutoff, "cutoff", config.DefaultCutoff, "potential cutoff")
	energyCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "LJ well depth")
	energyCmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "LJ zero crossing")

	rdfCmd := &cobra.Command{
		Use:   "rdf [config.xyz]",
		Short: "radial distribution function of a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE:  reportRDF,
	}
	rdfCmd.Flags().Float64Var(&boxLength, "box-length", config.DefaultBoxLength, "box side length")
	rdfCmd.Flags().IntVar(&bins, "bins", 60, "histogram bins")
	rdfCmd.Flags().Float64Var(&rMax, "rmax", 0, "histogram range (default half box)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "autocorrelation analysis of the energy series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&maxLag, "max-lag", 100, "maximum autocorrelation lag")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the energy series of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the energy series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export the full run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark trial moves across system sizes",
		RunE:  benchSizes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	liveCmd := &cobra.Command{
		Use:   "live [name]",
		Short: "run with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerTick, "steps-per-tick", 200, "trial moves per frame")

	rootCmd.AddCommand(runCmd, energyCmd, rdfCmd, analyzeCmd, listCmd, plotCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, benchCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	cmd.Flags().Float64Var(&boxLength, "box-length", config.DefaultBoxLength, "box side length")
	cmd.Flags().Float64Var(&cutoff, "cutoff", config.DefaultCutoff, "potential cutoff")
	cmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "LJ well depth")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "LJ zero crossing")
	cmd.Flags().Float64Var(&temperature, "temp", config.DefaultTemperature, "reduced temperature")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "trial moves")
	cmd.Flags().Float64Var(&maxDisp, "max-disp", config.DefaultMaxDisplacement, "initial max displacement")
	cmd.Flags().IntVar(&adjustEvery, "adjust-every", config.DefaultAdjustEvery, "displacement tuning interval")
	cmd.Flags().IntVar(&sampleEvery, "sample-every", config.DefaultSampleEvery, "energy sampling interval")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&replicas, "replicas", 1, "independent replicas")
	cmd.Flags().StringVar(&initMethod, "init", "lattice", "initial configuration: random, lattice, file")
	cmd.Flags().StringVar(&initFile, "init-file", "", "xyz file for --init file")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig folds preset, config file and flags into one Config.
// Precedence: explicit flags > config file > preset > defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		tmp := *p
		cfg = &tmp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("box-length") {
		cfg.BoxLength = boxLength
	}
	if cmd.Flags().Changed("cutoff") {
		cfg.Cutoff = cutoff
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = sigma
	}
	if cmd.Flags().Changed("temp") {
		cfg.Temperature = temperature
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("max-disp") {
		cfg.MaxDisplacement = maxDisp
	}
	if cmd.Flags().Changed("adjust-every") {
		cfg.AdjustEvery = adjustEvery
	}
	if cmd.Flags().Changed("sample-every") {
		cfg.SampleEvery = sampleEvery
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("replicas") {
		cfg.Replicas = replicas
	}
	if cmd.Flags().Changed("init") {
		cfg.Init.Method = initMethod
	}
	if cmd.Flags().Changed("init-file") {
		cfg.Init.File = initFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// assemble builds the box and potential from a validated config.
func assemble(cfg *config.Config) (*box.Box, *potential.LennardJones, mc.Config, error) {
	rng := mc.NewSource(cfg.Seed)
	coords, err := initial.Generate(cfg.Init.Method, rng, cfg.Particles, cfg.BoxLength, cfg.Init.File)
	if err != nil {
		return nil, nil, mc.Config{}, err
	}

	b, err := box.New(cfg.BoxLength, coords)
	if err != nil {
		return nil, nil, mc.Config{}, err
	}
	b.WrapAll()

	lj, err := potential.New(cfg.Epsilon, cfg.Sigma, cfg.Cutoff)
	if err != nil {
		return nil, nil, mc.Config{}, err
	}

	runCfg := mc.Config{
		Steps:           cfg.Steps,
		Beta:            cfg.Beta(),
		MaxDisplacement: cfg.MaxDisplacement,
		AdjustEvery:     cfg.AdjustEvery,
		SampleEvery:     cfg.SampleEvery,
		Seed:            cfg.Seed,
	}
	return b, lj, runCfg, nil
}

func runName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "lj"
}

func seriesMean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	b, lj, runCfg, err := assemble(cfg)
	if err != nil {
		return err
	}

	params := storage.RunParams{
		Particles:       cfg.Particles,
		BoxLength:       cfg.BoxLength,
		Cutoff:          cfg.Cutoff,
		Temperature:     cfg.Temperature,
		Steps:           cfg.Steps,
		MaxDisplacement: cfg.MaxDisplacement,
		Seed:            cfg.Seed,
	}

	name := runName(args)
	start := time.Now()

	if cfg.Replicas > 1 {
		fmt.Printf("running %d replicas of %d particles for %d steps...\n", cfg.Replicas, cfg.Particles, cfg.Steps)

		ensemble := mc.NewEnsemble(b, lj, cfg.Replicas)
		results, err := ensemble.Run(context.Background(), runCfg)
		if err != nil {
			return err
		}
		fmt.Printf("completed in %v\n\n", time.Since(start))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "REPLICA\tSEED\tACCEPTANCE\tMEAN ENERGY")
		for i, r := range results {
			fmt.Fprintf(w, "%d\t%d\t%.3f\t%.6f\n",
				i, runCfg.Seed+int64(i), r.AcceptanceRate, seriesMean(r.Energies))
		}
		return w.Flush()
	}

	sim, err := mc.New(b, lj, mc.NewSource(cfg.Seed))
	if err != nil {
		return err
	}
	sim.AddAccumulator(metrics.NewMean("energy_mean"))
	sim.AddAccumulator(metrics.NewVariance("energy_var"))
	sim.AddAccumulator(metrics.NewBlockAverage("energy_stderr", 16))

	fmt.Printf("running %d particles for %d steps...\n", cfg.Particles, cfg.Steps)
	result, err := sim.Run(context.Background(), runCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	b.WrapAll()
	runID, err := st.Save(name, params, result, b.Coords)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("trials: %d, accepts: %d (%.3f)\n", result.Trials, result.Accepts, result.AcceptanceRate)
	fmt.Printf("final max displacement: %.4f\n", result.MaxDisplacement)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func reportEnergy(cmd *cobra.Command, args []string) error {
	coords, err := xyz.ReadFile(args[0])
	if err != nil {
		return err
	}

	b, err := box.New(boxLength, coords)
	if err != nil {
		return err
	}
	b.WrapAll()

	lj, err := potential.New(epsilon, sigma, cutoff)
	if err != nil {
		return err
	}
	if err := lj.ValidateForBox(b.Length); err != nil {
		return err
	}

	pair := lj.ChunkedTotalPairEnergy(b, 4)
	tail := lj.TailCorrection(b.NumParticles(), b.Volume())
	n := float64(b.NumParticles())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "particles\t%d\n", b.NumParticles())
	fmt.Fprintf(w, "box length\t%.4f\n", b.Length)
	fmt.Fprintf(w, "volume\t%.4f\n", b.Volume())
	fmt.Fprintf(w, "density\t%.6f\n", n/b.Volume())
	fmt.Fprintf(w, "pair energy\t%.6f\n", pair)
	fmt.Fprintf(w, "tail correction\t%.6f\n", tail)
	fmt.Fprintf(w, "unit energy\t%.6f\n", (pair+tail)/n)
	return w.Flush()
}

func reportRDF(cmd *cobra.Command, args []string) error {
	coords, err := xyz.ReadFile(args[0])
	if err != nil {
		return err
	}

	b, err := box.New(boxLength, coords)
	if err != nil {
		return err
	}
	b.WrapAll()

	r := rMax
	if r <= 0 {
		r = b.Length / 2
	}
	rs, g, err := analysis.RadialDistribution(b, bins, r)
	if err != nil {
		return err
	}

	fmt.Printf("g(r) over %d bins up to r=%.3f\n\n", len(rs), rs[len(rs)-1])
	graph := asciigraph.Plot(g,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("radial distribution function"),
	)
	fmt.Println(graph)

	// first peak
	peakIdx := 0
	for i := range g {
		if g[i] > g[peakIdx] {
			peakIdx = i
		}
	}
	fmt.Printf("\nfirst peak: g=%.3f at r=%.3f\n", g[peakIdx], rs[peakIdx])
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	_, energies, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(energies) < 2 {
		return fmt.Errorf("not enough samples to analyze")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(energies))

	acf := analysis.Autocorrelation(energies, maxLag)
	graph := asciigraph.Plot(acf,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("energy autocorrelation"),
	)
	fmt.Println(graph)

	tau := analysis.IntegratedTime(acf)
	fmt.Printf("\nintegrated autocorrelation time: %.3f samples\n", tau)
	fmt.Printf("effective independent samples: %.1f\n", float64(len(energies))/tau)
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
	fmt.Fprintln(w, "ID\tNAME\tTIME\tN\tBOX\tT\tSTEPS\tACCEPT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\t%.2f\t%d\t%.3f\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Params.Particles,
			run.Params.BoxLength,
			run.Params.Temperature,
			run.Params.Steps,
			run.Metrics["acceptance"],
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

	_, energies, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(energies) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(energies))

	graph := asciigraph.Plot(energies,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("unit energy"),
	)
	fmt.Println(graph)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	steps, energies, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "unit_energy"}); err != nil {
		return err
	}
	for i := range steps {
		row := []string{
			strconv.Itoa(steps[i]),
			strconv.FormatFloat(energies[i], 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportJSONTo(os.Stdout, args[0])
}

func benchSizes(cmd *cobra.Command, args []string) error {
	sizes := []int{64, 125, 216, 512}
	benchSteps := 5000

	fmt.Println("benchmarking trial moves")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range sizes {
		// box sized to keep the cutoff below half the side
		side := 9.0
		if n > 200 {
			side = 12
		}
		coords, err := initial.Lattice(n, side)
		if err != nil {
			return err
		}
		b, err := box.New(side, coords)
		if err != nil {
			return err
		}
		lj, err := potential.New(1, 1, config.DefaultCutoff)
		if err != nil {
			return err
		}
		sim, err := mc.New(b, lj, mc.NewSource(42))
		if err != nil {
			return err
		}

		runCfg := mc.Config{
			Steps:           benchSteps,
			Beta:            1,
			MaxDisplacement: 0.1,
			AdjustEvery:     1000,
			SampleEvery:     benchSteps,
			Seed:            42,
		}

		start := time.Now()
		result, err := sim.Run(context.Background(), runCfg)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n",
			n, result.Trials, elapsed, float64(result.Trials)/elapsed.Seconds())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tN\tBOX\tT\tSTEPS\tINIT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%d\t%s\n",
			name, p.Particles, p.BoxLength, p.Temperature, p.Steps, p.Init.Method)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	b, lj, runCfg, err := assemble(cfg)
	if err != nil {
		return err
	}

	sim, err := mc.New(b, lj, mc.NewSource(cfg.Seed))
	if err != nil {
		return err
	}
	if err := sim.Start(runCfg); err != nil {
		return err
	}

	m := viz.NewModel(sim, runCfg, stepsPerTick, frameRate)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
