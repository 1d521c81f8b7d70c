// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

const UserAgentWebapp = "webapp"

// Context is included in CallRequest and provides the App with the context
// of the user agent at the time of the call: the App and location of the
// binding, and the IDs of the Mattermost entities the call is scoped to.
//
// Context is built fresh for each call and is never stored.
type Context struct {
	// AppID is used for handling CallRequest internally.
	AppID AppID `json:"app_id"`

	// Fully qualified original Location of the user action (if applicable),
	// e.g. "/post_menu/send".
	Location Location `json:"location,omitempty"`

	// The optional IDs of Mattermost entities associated with the call: Team,
	// Channel, Post, RootPost.
	ChannelID  string `json:"channel_id,omitempty"`
	TeamID     string `json:"team_id"`
	PostID     string `json:"post_id,omitempty"`
	RootPostID string `json:"root_post_id,omitempty"`

	// UserAgent used to perform the call, "webapp" for this client.
	UserAgent string `json:"user_agent,omitempty"`

	// Locale of the acting user, used by the App to localize responses.
	Locale string `json:"locale,omitempty"`
}

// NewCallContext builds the Context of a call from a post menu binding.
func NewCallContext(appID AppID, location Location, channelID, teamID, postID, rootPostID string) Context {
	return Context{
		AppID:      appID,
		Location:   location,
		ChannelID:  channelID,
		TeamID:     teamID,
		PostID:     postID,
		RootPostID: rootPostID,
		UserAgent:  UserAgentWebapp,
	}
}

func (cc Context) Loggable() []interface{} {
	props := []interface{}{"app_id", cc.AppID}
	if cc.Location != "" {
		props = append(props, "location", cc.Location)
	}
	if cc.ChannelID != "" {
		props = append(props, "channel_id", cc.ChannelID)
	}
	if cc.TeamID != "" {
		props = append(props, "team_id", cc.TeamID)
	}
	if cc.PostID != "" {
		props = append(props, "post_id", cc.PostID)
	}
	if cc.RootPostID != "" {
		props = append(props, "root_post_id", cc.RootPostID)
	}
	return props
}
