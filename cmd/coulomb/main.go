package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/coulomb/internal/config"
	"github.com/san-kum/coulomb/internal/export"
	"github.com/san-kum/coulomb/internal/physics"
	"github.com/san-kum/coulomb/internal/preset"
	"github.com/san-kum/coulomb/internal/sim"
	"github.com/san-kum/coulomb/internal/storage"
	"github.com/san-kum/coulomb/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	boundary   float64
	fps        int
	configFile string
	dtList     string
	outFile    string
	svgScale   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coulomb",
		Short: "interactive electrostatic charge simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view on the first preset.
			return runLive(cmd, []string{})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".coulomb", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a preset headless and save the trajectories",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time step")
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of ticks")
	runCmd.Flags().Float64Var(&boundary, "boundary", config.DefaultBoundary, "deactivation boundary (symmetric)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run with the interactive terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time step")
	liveCmd.Flags().Float64Var(&boundary, "boundary", config.DefaultBoundary, "deactivation boundary (symmetric)")
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPARTICLES")
			for _, p := range preset.Catalog() {
				fmt.Fprintf(w, "%s\t%d\n", p.Name, len(p.Charges))
			}
			return w.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot saved trajectories",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "render saved trajectories to an SVG image",
		Args:  cobra.ExactArgs(1),
		RunE:  svgRun,
	}
	svgCmd.Flags().StringVar(&outFile, "out", "", "output path (default <run_id>.svg)")
	svgCmd.Flags().Float64Var(&svgScale, "scale", 6, "pixels per canvas dot")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run every preset at several time steps and report energy drift",
		RunE:  sweepPresets,
	}
	sweepCmd.Flags().StringVar(&dtList, "dts", "0.001,0.005,0.01", "comma-separated time steps")
	sweepCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "ticks per run")

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, listCmd, plotCmd, exportCmd, svgCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges defaults, an optional config file, the preset
// positional argument, and explicit CLI flags, flags winning.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Preset = args[0]
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("boundary") {
		cfg.BoundaryMin = -boundary
		cfg.BoundaryMax = boundary
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSimulation(cfg *config.Config) (*sim.Simulation, error) {
	idx := preset.IndexOf(cfg.Preset)
	if idx < 0 {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", cfg.Preset, preset.Names())
	}
	return sim.New(preset.Catalog(), idx, sim.WithDt(cfg.Dt), sim.WithBounds(cfg.Bounds()))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	s, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	initialEnergy := physics.Energy(s.Charges)

	fmt.Printf("running %s for %d steps (dt=%g)...\n", cfg.Preset, cfg.Steps, cfg.Dt)
	start := time.Now()

	if err := s.Run(context.Background(), cfg.Steps, nil); err != nil {
		return err
	}

	elapsed := time.Since(start)
	finalEnergy := physics.Energy(s.Charges)

	drift := 0.0
	if initialEnergy != 0 {
		drift = (finalEnergy - initialEnergy) / initialEnergy
		if drift < 0 {
			drift = -drift
		}
	}

	metrics := map[string]float64{
		"initial_energy": initialEnergy,
		"final_energy":   finalEnergy,
		"energy_drift":   drift,
		"momentum":       physics.Momentum(s.Charges).Length(),
		"active":         float64(physics.ActiveCount(s.Charges)),
	}

	runID, err := st.Save(cfg.Preset, cfg.Dt, s.Trajectories, metrics)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("particles: %d (%d active)\n", len(s.Charges), physics.ActiveCount(s.Charges))
	fmt.Println("\nmetrics:")
	for name, val := range metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	s, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	s.Running = true

	return viz.RunLive(s, cfg.FPS)
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
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSTEPS\tDT\tPARTICLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Particles,
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

	trajectories, err := st.LoadTrajectories(runID)
	if err != nil {
		return err
	}
	if len(trajectories) == 0 || len(trajectories[0]) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(trajectories[0]))

	numPlots := len(trajectories)
	const maxPlots = 6
	if numPlots > maxPlots {
		numPlots = maxPlots
	}

	for i := 0; i < numPlots; i++ {
		data := make([]float64, len(trajectories[i]))
		for step, p := range trajectories[i] {
			data[step] = p.X
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("particle %d: x vs step", i)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

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

func svgRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	trajectories, err := st.LoadTrajectories(runID)
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(120, 48)
	camera := viz.NewCamera()
	sw, sh := canvas.Width*2, canvas.Height*4

	viz.DrawBox(canvas, camera, 5)
	center := viz.WorldCenter()
	for _, traj := range trajectories {
		for _, p := range traj {
			if x, y, ok := camera.Project(p.Sub(center), sw, sh); ok {
				canvas.Set(x, y)
			}
		}
	}

	path := outFile
	if path == "" {
		path = runID + ".svg"
	}
	if err := export.SaveSVG(path, canvas, svgScale); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func sweepPresets(cmd *cobra.Command, args []string) error {
	dts := make([]float64, 0)
	for _, field := range strings.Split(dtList, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid dt value: %q", field)
		}
		dts = append(dts, v)
	}

	results, err := sim.Sweep(context.Background(), preset.Catalog(), dts, steps)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tDT\tSTEPS\tACTIVE\tENERGY\tDRIFT")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.4f\t%d\t%d\t%.6g\t%.3g\n",
			r.Preset, r.Dt, r.Steps, r.Active, r.FinalEnergy, r.EnergyDrift)
	}
	return w.Flush()
}
