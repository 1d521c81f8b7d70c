// Copyright (c) 2022-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-apps-actions/cloudtrial"
)

func init() {
	rootCmd.AddCommand(validateEmailCmd)
}

var validateEmailCmd = &cobra.Command{
	Use:   "validate-email email",
	Short: "Check an email the way the cloud trial modal does",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getMattermostClient()
		if err != nil {
			return err
		}

		v := cloudtrial.NewValidator(client, nil,
			cloudtrial.WithLocale(conf.Locale),
			cloudtrial.WithLogger(log))
		defer v.Close()

		res := v.Validate(cmd.Context(), args[0])
		if res.Label.Status == cloudtrial.StatusNone {
			fmt.Println("empty")
			return nil
		}
		fmt.Printf("%s: %s\n", res.Label.Status, res.Label.Text)
		return nil
	},
}
