// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-apps-actions/actionsmenu"
	"github.com/mattermost/mattermost-apps-actions/apps"
	"github.com/mattermost/mattermost-apps-actions/utils"
)

var invokeTeamID string

func init() {
	rootCmd.AddCommand(invokeCmd)
	invokeCmd.Flags().StringVar(&invokeTeamID, "team", "", "team ID of the post")
}

var invokeCmd = &cobra.Command{
	Use:   "invoke post_id location",
	Short: "Click a post menu binding, e.g. invoke 8a7bx... /post_menu/send",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, location := args[0], apps.Location(args[1])
		ctx := cmd.Context()

		client, err := getMattermostClient()
		if err != nil {
			return err
		}
		post, _, err := client.GetPost(ctx, postID, "")
		if err != nil {
			return errors.Wrapf(err, "failed to get post %s", postID)
		}

		menu := actionsmenu.NewMenu(*conf, actionsmenu.Props{
			Post:          post,
			UserID:        conf.UserID,
			Locale:        conf.Locale,
			TeamID:        invokeTeamID,
			CurrentTeamID: invokeTeamID,
			AppsEnabled:   conf.AppsEnabled,
		}, menuServices(client))
		defer menu.Dispose()

		menu.SetOpen(ctx, true)
		bb, loaded := menu.Bindings()
		if !loaded {
			return errors.New("failed to load the post menu bindings")
		}
		for _, b := range bb {
			if b.Location != location {
				continue
			}
			log.Debugw("invoking", "app_id", b.AppID, "location", b.Location, "call", b.Call)
			return menu.ClickBinding(ctx, b)
		}

		fmt.Println("Available bindings:")
		for _, b := range bb {
			fmt.Printf("  %s\t%s\n", b.Location, b.Label)
		}
		return utils.NewNotFoundError("no binding for location %s", location)
	},
}
