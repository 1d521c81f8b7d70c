// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-apps-actions/actionsmenu"
)

var (
	triggerY       float64
	viewportHeight float64
)

func init() {
	rootCmd.AddCommand(placementCmd)
	placementCmd.Flags().Float64Var(&triggerY, "y", 0, "vertical position of the menu button, unknown if not set")
	placementCmd.Flags().Float64Var(&viewportHeight, "viewport", 800, "height of the viewport")
}

var placementCmd = &cobra.Command{
	Use:   "placement",
	Short: "Print whether the menu opens up or down",
	Args:  cobra.NoArgs,
	// Does not need a config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		trigger := actionsmenu.Rect{}
		if cmd.Flags().Changed("y") {
			trigger = actionsmenu.NewRect(triggerY)
		}
		if actionsmenu.DecidePlacement(trigger, viewportHeight) {
			fmt.Println("up")
		} else {
			fmt.Println("down")
		}
		return nil
	},
}
