package main

import (
	"os"

	"hms/config"
	"hms/helper"
	"hms/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	var source string

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the hms postgres schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&source, "source", "file://migrations/postgres", "migration source URL")

	actions := []struct {
		use   string
		short string
	}{
		{use: helper.ActionUp, short: "Apply every pending migration"},
		{use: helper.ActionDown, short: "Roll back the latest migration"},
		{use: helper.ActionStepUp, short: "Apply the next migration"},
		{use: helper.ActionDrop, short: "Roll back every migration"},
	}

	for _, action := range actions {
		rootCmd.AddCommand(&cobra.Command{
			Use:   action.use,
			Short: action.short,
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return helper.Runner(cfg, source, action.use)
			},
		})
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert the default rooms and departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helper.Seed(cmd.Context(), cfg)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Migration command failed")
		os.Exit(1)
	}
}
