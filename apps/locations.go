// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

import (
	"strings"
)

const (
	LocationPostMenu      Location = "/post_menu"
	LocationChannelHeader Location = "/channel_header"
	LocationCommand       Location = "/command"
	LocationInPost        Location = "/in_post"
)

type Location string

func (l Location) IsTop() bool {
	switch l {
	case LocationChannelHeader,
		LocationCommand,
		LocationInPost,
		LocationPostMenu:
		return true
	}
	return false
}

// In returns true if l is other, or is nested in it.
func (l Location) In(other Location) bool {
	return strings.HasPrefix(string(l), string(other))
}

// Sub appends a nested location, inserting the separator if needed.
func (l Location) Sub(sub Location) Location {
	out := l
	if len(sub) == 0 {
		return out
	}
	if sub[0] != '/' {
		out += "/"
	}
	return out + sub
}

// Top returns the top-level location l is in, e.g. "/post_menu" for
// "/post_menu/send".
func (l Location) Top() Location {
	if len(l) == 0 || l[0] != '/' {
		return ""
	}
	tokens := strings.SplitN(string(l)[1:], "/", 2)
	return Location("/" + tokens[0])
}
