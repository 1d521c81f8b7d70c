// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package actionsmenu

import (
	"context"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-apps-actions/apps"
	"github.com/mattermost/mattermost-apps-actions/modal"
	"github.com/mattermost/mattermost-apps-actions/telemetry"
	"github.com/mattermost/mattermost-apps-actions/utils"
	"github.com/mattermost/mattermost-apps-actions/utils/i18nutils"
)

//go:generate mockgen -destination=../mocks/mock_actionsmenu/mock_service.go -package=mock_actionsmenu github.com/mattermost/mattermost-apps-actions/actionsmenu BindingsFetcher,CallSubmitter,EphemeralPoster

// BindingsFetcher returns the post menu bindings visible to the user in the
// channel and team. The result is the complete set, it replaces any
// previously fetched bindings.
type BindingsFetcher interface {
	FetchBindings(ctx context.Context, userID, channelID, teamID string) ([]apps.Binding, error)
}

// CallSubmitter executes one call. An error-typed response may be returned
// either as the response, or as an apps.CallResponse error.
type CallSubmitter interface {
	SubmitCall(ctx context.Context, creq apps.CallRequest, callType apps.CallType, locale string) (*apps.CallResponse, error)
}

// EphemeralPoster shows a message to the acting user only, attached to post.
type EphemeralPoster interface {
	PostEphemeralCallResponseForPost(ctx context.Context, cresp apps.CallResponse, message string, post *model.Post) error
}

// Services are the collaborators of a Menu.
type Services struct {
	Bindings  BindingsFetcher
	Calls     CallSubmitter
	Ephemeral EphemeralPoster
	Modals    modal.Service

	I18N      *i18nutils.Bundle
	Telemetry *telemetry.Telemetry
	Metrics   *telemetry.Metrics
	Log       utils.Logger
}

func (s Services) withDefaults() Services {
	if s.I18N == nil {
		s.I18N = i18nutils.MustNewBundle()
	}
	if s.Log == nil {
		s.Log = utils.NewNilLogger()
	}
	return s
}
