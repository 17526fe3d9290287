package cmd

import (
	"fmt"
	"os"

	"github.com/chrisdamba/ridehailsim/internal/dispatch"
	"github.com/chrisdamba/ridehailsim/internal/factories"
	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/chrisdamba/ridehailsim/internal/monitor"
	"github.com/chrisdamba/ridehailsim/internal/output"
	"github.com/chrisdamba/ridehailsim/internal/simulator"
	"github.com/lucsky/cuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ridehailsim",
	Short: "Discrete-event simulator for ride-hailing dispatch",
	Long: `ridehailsim replays a scripted (or generated) stream of rider and driver
requests through a deterministic discrete-event loop, matching riders with
drivers and streaming the resulting activity to the configured sink.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return runSimulation(cfg)
	},
}

func runSimulation(cfg *models.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	// tag every log line of this run so interleaved runs stay separable
	log := logrus.WithField("run_id", cuid.Slug())
	log.WithField("config", cfgFile).Info("starting simulation run")

	var seed []models.Event
	if cfg.ScriptFile != "" {
		seed, err = simulator.LoadEventScript(cfg.ScriptFile)
	} else {
		log.Info("no event script configured, generating a random scenario")
		seed, err = factories.NewScenarioGenerator(cfg).Events()
	}
	if err != nil {
		return err
	}

	destination, err := output.NewDestination(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := destination.Close(); err != nil {
			log.WithError(err).Error("failed to close output destination")
		}
	}()

	activityMonitor := monitor.NewActivityMonitor(destination)
	sim := simulator.NewSimulator(cfg, dispatch.NewFIFODispatcher(), activityMonitor)
	sim.Schedule(seed...)

	if err := sim.Run(); err != nil {
		return err
	}

	report := activityMonitor.Report()
	log.WithFields(logrus.Fields{
		"riders":                    report.Riders,
		"drivers":                   report.Drivers,
		"rides":                     report.Rides,
		"rider_wait_time_avg":       report.RiderWaitTimeAvg,
		"driver_total_distance_avg": report.DriverTotalDistanceAvg,
		"ride_distance_avg":         report.RideDistanceAvg,
	}).Info("simulation report")
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().String("script", "", "Path to the event script to replay")
	rootCmd.Flags().Int64("seed", 42, "Random seed for generated scenarios")
	rootCmd.Flags().Int64("horizon", 0, "Maximum virtual timestamp to process (0 = unbounded)")
	rootCmd.Flags().String("horizon-mode", models.HorizonModeDrop, "What to do with events past the horizon: drop or halt")
	rootCmd.Flags().String("output-format", "console", "Activity sink: console, json, parquet or postgres")
	rootCmd.Flags().String("output-path", "", "Base directory for file outputs")
	rootCmd.Flags().Bool("kafka-enabled", false, "Stream activity to Kafka instead of a file sink")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("log-level", "info", "Log level")

	bindings := map[string]string{
		"script_file":       "script",
		"seed":              "seed",
		"horizon":           "horizon",
		"horizon_mode":      "horizon-mode",
		"output_format":     "output-format",
		"output_path":       "output-path",
		"kafka_enabled":     "kafka-enabled",
		"kafka_broker_list": "kafka-broker-list",
		"log_level":         "log-level",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			cobra.CheckErr(err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
