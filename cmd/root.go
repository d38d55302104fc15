package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edsim/edsim/sim/hospital"
	"github.com/edsim/edsim/sim/report"
)

var (
	// CLI flags for the department model
	fastDoctors     int     // Fast-track doctors
	fastNurses      int     // Fast-track nurses
	edDoctors       int     // Main-department doctors
	edNurses        int     // Main-department nurses
	beds            int     // Admission beds
	patients        int     // Number of patients to generate
	horizon         float64 // Simulation horizon (minutes)
	arrivalMean     float64 // Mean inter-arrival time (minutes)
	seed            int64   // Seed for all random draws
	monitorInterval float64 // Monitor sampling period (minutes)

	// CLI flags for the run itself
	configFile  string // Optional YAML config file
	logLevel    string // Log verbosity level
	showChart   bool   // Print ASCII charts
	chartWidth  int    // Chart width in columns
	resultsPath string // YAML results output
	promPath    string // Prometheus textfile output
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "edsim",
	Short: "Discrete-event simulator for emergency department patient flow",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes the simulation using parameters from the config file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the emergency department simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Unable to load configuration: %v", err)
		}

		logrus.Infof("Capacities: fast doctors=%d, fast nurses=%d, ED doctors=%d, ED nurses=%d, beds=%d",
			cfg.FastDoctors, cfg.FastNurses, cfg.EDDoctors, cfg.EDNurses, cfg.Beds)

		startTime := time.Now()
		result, err := hospital.Run(cfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Simulated %.0f minutes in %s", result.EndTime, time.Since(startTime))

		summary := report.Summarize(result)
		report.PrintSummary(cmd.OutOrStdout(), summary)

		if showChart {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), report.NewChartGenerator(chartWidth, 0).RenderSeries(result.Series))
		}
		if resultsPath != "" {
			if err := report.WriteResults(resultsPath, cfg, result, summary); err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Results written to %s", resultsPath)
		}
		if promPath != "" {
			if err := report.WritePrometheus(promPath, summary); err != nil {
				logrus.Fatalf("Unable to write prometheus textfile: %v", err)
			}
			logrus.Infof("Prometheus metrics written to %s", promPath)
		}
	},
}

// validateCmd checks a configuration without running it
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
		return nil
	},
}

// reportCmd re-renders a results file written by `run --results`
var reportCmd = &cobra.Command{
	Use:   "report <results.yaml>",
	Short: "Print the summary and charts of a saved run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rf, err := report.ReadResults(args[0])
		if err != nil {
			return err
		}
		report.PrintSummary(cmd.OutOrStdout(), report.Summarize(rf.Result))
		if showChart && rf.Result != nil {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprint(cmd.OutOrStdout(), report.NewChartGenerator(chartWidth, 0).RenderSeries(rf.Result.Series))
		}
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	defaults := hospital.DefaultConfig()
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file (flags override its values)")
	cmd.Flags().IntVar(&fastDoctors, "fast-doctors", defaults.FastDoctors, "Number of fast-track doctors")
	cmd.Flags().IntVar(&fastNurses, "fast-nurses", defaults.FastNurses, "Number of fast-track nurses")
	cmd.Flags().IntVar(&edDoctors, "ed-doctors", defaults.EDDoctors, "Number of main ED doctors")
	cmd.Flags().IntVar(&edNurses, "ed-nurses", defaults.EDNurses, "Number of main ED nurses")
	cmd.Flags().IntVar(&beds, "beds", defaults.Beds, "Number of admission beds")
	cmd.Flags().IntVar(&patients, "patients", defaults.Patients, "Number of patients to generate")
	cmd.Flags().Float64Var(&horizon, "horizon", defaults.Horizon, "Simulation horizon (minutes)")
	cmd.Flags().Float64Var(&arrivalMean, "arrival-mean", defaults.ArrivalMean, "Mean inter-arrival time (minutes)")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for all random draws")
	cmd.Flags().Float64Var(&monitorInterval, "monitor-interval", defaults.MonitorInterval, "Monitor sampling interval (minutes)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addModelFlags(runCmd)
	runCmd.Flags().BoolVar(&showChart, "chart", false, "Print ASCII charts of queues and utilization")
	runCmd.Flags().IntVar(&chartWidth, "chart-width", 72, "Chart width in columns")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write config, summary and raw series to this YAML file")
	runCmd.Flags().StringVar(&promPath, "prom-out", "", "Write summary gauges to this file in Prometheus text format")

	addModelFlags(validateCmd)

	reportCmd.Flags().BoolVar(&showChart, "chart", false, "Print ASCII charts of queues and utilization")
	reportCmd.Flags().IntVar(&chartWidth, "chart-width", 72, "Chart width in columns")

	rootCmd.AddCommand(runCmd, validateCmd, reportCmd)
}
