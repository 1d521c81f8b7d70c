// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

// actionsctl exercises the post "Actions" menu against a Mattermost server.
package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/mattermost/mattermost-apps-actions/config"
	"github.com/mattermost/mattermost-apps-actions/telemetry"
	"github.com/mattermost/mattermost-apps-actions/utils"
)

var (
	verbose    bool
	configPath string

	conf     *config.Config
	log      = utils.MustMakeCommandLogger(zapcore.InfoLevel)
	registry = prometheus.NewRegistry()
	metrics  = telemetry.NewMetrics(registry)
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "yaml config file, MM_ACTIONS_* environment variables override it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Errorw("command failed")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "actionsctl",
	Short:         "A tool to use the post actions menu of Mattermost Apps.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = config.Load(configPath)
		if err != nil {
			return err
		}

		level, err := conf.ZapLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		log = utils.MustMakeCommandLogger(level)
		log.With(conf).Debugw("loaded config")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logMetrics()
		}
	},
}

func logMetrics() {
	families, err := registry.Gather()
	if err != nil {
		log.WithError(err).Warnw("failed to gather metrics")
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			kv := []interface{}{}
			for _, l := range m.GetLabel() {
				kv = append(kv, l.GetName(), l.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				kv = append(kv, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				kv = append(kv, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
			}
			log.Debugw(mf.GetName(), kv...)
		}
	}
}
