package cmd

import (
	"fmt"
	"os"

	"github.com/chrisdamba/ridehailsim/internal/factories"
	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random event script",
	Long: `generate fabricates a reproducible random scenario (drivers coming online,
riders requesting trips) and writes it as an event script that the root
command can replay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		file, err := os.Create(generateOut)
		if err != nil {
			return fmt.Errorf("failed to create script file: %w", err)
		}
		defer file.Close()

		if err := factories.NewScenarioGenerator(cfg).WriteScript(file); err != nil {
			return fmt.Errorf("failed to write scenario: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"path":    generateOut,
			"seed":    cfg.Seed,
			"drivers": cfg.Generator.Drivers,
			"riders":  cfg.Generator.Riders,
		}).Info("scenario written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateOut, "out", "scenario.txt", "Path of the script to write")
	generateCmd.Flags().Int("drivers", 10, "Number of drivers to generate")
	generateCmd.Flags().Int("riders", 50, "Number of riders to generate")
	generateCmd.Flags().Int64("duration", 200, "Virtual time window for generated requests")

	bindings := map[string]string{
		"generator.drivers":  "drivers",
		"generator.riders":   "riders",
		"generator.duration": "duration",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, generateCmd.Flags().Lookup(flag)); err != nil {
			cobra.CheckErr(err)
		}
	}
}
