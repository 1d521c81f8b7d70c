// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

import (
	"sort"
	"strings"

	"github.com/mattermost/mattermost-apps-actions/utils"
)

type ExpandLevel string

const (
	ExpandDefault ExpandLevel = ""
	ExpandNone    ExpandLevel = "none"
	ExpandID      ExpandLevel = "id"
	ExpandSummary ExpandLevel = "summary"
	ExpandAll     ExpandLevel = "all"
)

// Expand is a clause in the Call struct that controls what additional
// information is to be provided in each request made.
//
// By default only the IDs of certain entities are provided in the request's
// Context. Post menu calls always ask for the full post, see ExpandPostAll.
type Expand struct {
	// ActingUser: all for the entire model.User, summary for the basic
	// profile fields.
	ActingUser ExpandLevel `json:"acting_user,omitempty"`

	// Locale expands the locale to use for this call.
	Locale ExpandLevel `json:"locale,omitempty"`

	// Channel: all for model.Channel, summary for Id, DeleteAt, TeamId, Type,
	// DisplayName, Name.
	Channel ExpandLevel `json:"channel,omitempty"`

	// Team: all for model.Team, summary for Id, DisplayName, Name, Description,
	// Email, Type.
	Team ExpandLevel `json:"team,omitempty"`

	// Post, RootPost: all for model.Post, summary for Id, Type, UserId,
	// ChannelId, RootId, Message.
	Post     ExpandLevel `json:"post,omitempty"`
	RootPost ExpandLevel `json:"root_post,omitempty"`
}

// ExpandPostAll is the expansion policy of post menu calls: the post is
// expanded to its full content.
func ExpandPostAll() *Expand {
	return &Expand{
		Post: ExpandAll,
	}
}

func (e Expand) String() string {
	m := map[string]string{}
	utils.Remarshal(&m, e)
	ss := []string{}
	for k, v := range m {
		ss = append(ss, k+":"+v)
	}
	sort.Strings(ss)
	return strings.Join(ss, ",")
}
