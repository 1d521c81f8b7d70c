// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package appclient

import (
	"context"
	"net/http"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-apps-actions/apps"
)

// Client is used by the post menu to talk to the Apps plugin and to
// Mattermost, on behalf of the acting user.
type Client struct {
	*model.Client4
	*ClientPP
	userID string
}

func NewClient(userID, token, mattermostSiteURL string) *Client {
	c := Client{
		userID:   userID,
		ClientPP: NewAppsPluginAPIClient(mattermostSiteURL),
		Client4:  model.NewAPIv4Client(mattermostSiteURL),
	}
	c.Client4.SetOAuthToken(token)
	c.ClientPP.SetOAuthToken(token)
	return &c
}

// SetHTTPClient makes both clients use hc.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.Client4.HTTPClient = hc
	c.ClientPP.HTTPClient = hc
}

// FetchBindings returns the post menu bindings of all Apps for the channel
// and team. Bindings for other locations are dropped.
func (c *Client) FetchBindings(ctx context.Context, userID, channelID, teamID string) ([]apps.Binding, error) {
	bindings, res, err := c.ClientPP.GetBindings(ctx, userID, channelID, teamID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get bindings")
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("get bindings returned with status %d", res.StatusCode)
	}
	return apps.PostMenuBindings(bindings), nil
}

// SubmitCall submits creq as a callType call. An error-typed response is
// returned as an apps.CallResponse error.
func (c *Client) SubmitCall(ctx context.Context, creq apps.CallRequest, callType apps.CallType, locale string) (*apps.CallResponse, error) {
	creq.Type = callType
	if locale != "" {
		creq.Context.Locale = locale
	}
	cresp, _, err := c.ClientPP.Call(ctx, creq)
	if err != nil {
		return nil, err
	}
	return cresp, nil
}

// PostEphemeralCallResponseForPost shows message to the acting user, in the
// thread of post.
func (c *Client) PostEphemeralCallResponseForPost(ctx context.Context, cresp apps.CallResponse, message string, post *model.Post) error {
	if post == nil {
		return errors.New("no post to respond to")
	}
	rootID := post.RootId
	if rootID == "" {
		rootID = post.Id
	}
	_, _, err := c.Client4.CreatePostEphemeral(ctx, &model.PostEphemeral{
		UserID: c.userID,
		Post: &model.Post{
			ChannelId: post.ChannelId,
			RootId:    rootID,
			Message:   message,
			Props: model.StringInterface{
				"call_response_type": string(cresp.Type),
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create ephemeral post")
	}
	return nil
}

// ValidateBusinessEmail returns true if email belongs to a business domain.
func (c *Client) ValidateBusinessEmail(ctx context.Context, email string) (bool, error) {
	valid, _, err := c.ClientPP.ValidateBusinessEmail(ctx, email)
	if err != nil {
		return false, errors.Wrap(err, "failed to validate business email")
	}
	return valid, nil
}
