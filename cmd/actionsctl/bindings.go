// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-apps-actions/utils"
)

var (
	channelID string
	teamID    string
)

func init() {
	rootCmd.AddCommand(bindingsCmd)
	bindingsCmd.Flags().StringVar(&channelID, "channel", "", "channel ID")
	bindingsCmd.Flags().StringVar(&teamID, "team", "", "team ID")
	_ = bindingsCmd.MarkFlagRequired("channel")
}

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Print the post menu bindings for a channel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getMattermostClient()
		if err != nil {
			return err
		}

		bb, err := client.FetchBindings(cmd.Context(), conf.UserID, channelID, teamID)
		metrics.ObserveBindingsFetch(err)
		if err != nil {
			return err
		}
		log.Debugw("fetched bindings", "count", len(bb))
		fmt.Println(utils.Pretty(bb))
		return nil
	},
}
