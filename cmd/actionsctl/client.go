// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"github.com/mattermost/mattermost-apps-actions/actionsmenu"
	"github.com/mattermost/mattermost-apps-actions/apps/appclient"
	"github.com/mattermost/mattermost-apps-actions/cloudtrial"
	"github.com/mattermost/mattermost-apps-actions/modal"
	"github.com/mattermost/mattermost-apps-actions/utils/i18nutils"
)

var (
	_ actionsmenu.BindingsFetcher     = (*appclient.Client)(nil)
	_ actionsmenu.CallSubmitter       = (*appclient.Client)(nil)
	_ actionsmenu.EphemeralPoster     = (*appclient.Client)(nil)
	_ cloudtrial.BusinessEmailChecker = (*appclient.Client)(nil)
)

func getMattermostClient() (*appclient.Client, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return appclient.NewClient(conf.UserID, conf.AccessToken, conf.MattermostSiteURL), nil
}

func menuServices(client *appclient.Client) actionsmenu.Services {
	return actionsmenu.Services{
		Bindings:  client,
		Calls:     client,
		Ephemeral: client,
		Modals:    modal.NewStack(),
		I18N:      i18nutils.MustNewBundle(),
		Metrics:   metrics,
		Log:       log,
	}
}
