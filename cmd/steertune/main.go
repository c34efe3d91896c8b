package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KSPSnark/SteeringTweaker/internal/actuator"
	"github.com/KSPSnark/SteeringTweaker/internal/config"
	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
	"github.com/KSPSnark/SteeringTweaker/internal/sim"
	"github.com/KSPSnark/SteeringTweaker/internal/storage"
	"github.com/KSPSnark/SteeringTweaker/internal/vehicle"
	"github.com/KSPSnark/SteeringTweaker/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "steertune",
		Short: "steering limiter simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".steertune", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate a drive and report limiter behavior",
		RunE:  runDrive,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration override")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip saving the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live drive view",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, listCmd, presetsCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = config.DefaultConfig()
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	return cfg, cfg.Validate()
}

func buildRunner(cfg *config.Config) *sim.Runner {
	rover := vehicle.NewRover()
	scenario := vehicle.NewScenario(cfg.Phases()...)
	runner := sim.New(rover, scenario)

	cache := limiter.NewCache()
	for _, a := range cfg.Actuators {
		act := &actuator.Actuator{
			Name:         a.Name,
			TypeID:       a.Type,
			BaseCurve:    a.BaseCurve(),
			BaseResponse: a.Response,
		}
		runner.AddBinding(actuator.NewBinding(act, cache, a.Limiter.Setting()))
	}
	return runner
}

func runDrive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := buildRunner(cfg)
	simCfg := sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}
	result, err := runner.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	printSummary(result)

	if noSave {
		return nil
	}
	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(preset, simCfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved run %s\n", runID)
	return nil
}

func printSummary(result *sim.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "actuator\tmin %\tmax %\tfinal range\tskipped")
	for _, a := range result.Actuators {
		lo, hi := minMax(a.Percent)
		finalRange := 0.0
		if len(a.Range) > 0 {
			finalRange = a.Range[len(a.Range)-1]
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.2f\t%d\n", a.Name, lo, hi, finalRange, a.Skipped)
	}
	w.Flush()

	topSpeed := 0.0
	for _, v := range result.Speeds {
		if v > topSpeed {
			topSpeed = v
		}
	}
	fmt.Printf("\nsteps: %d  top speed: %.1f m/s  errors: %d\n",
		result.StepsTaken, topSpeed, len(result.Errors))
}

func minMax(series []float64) (float64, float64) {
	if len(series) == 0 {
		return 0, 0
	}
	lo, hi := series[0], series[0]
	for _, v := range series[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := buildRunner(cfg)
	p := tea.NewProgram(viz.NewModel(runner, cfg.Dt))
	_, err = p.Run()
	return err
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	_, speeds, percents, err := store.LoadSeries(args[0])
	if err != nil {
		return err
	}
	fmt.Print(viz.Plot(speeds, percents))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\ttime\tpreset\tsteps\tactuators")
	for _, r := range runs {
		name := r.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), name, r.Steps, len(r.Actuators))
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
