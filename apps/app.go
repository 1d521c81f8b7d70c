// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

import (
	"unicode"

	"github.com/mattermost/mattermost-apps-actions/utils"
)

// AppID is a globally unique identifier that represents a Mattermost App.
// An AppID is restricted to no more than 32 ASCII letters, numbers, '-', or '_'.
type AppID string

const (
	MinAppIDLength = 3
	MaxAppIDLength = 32
)

func (id AppID) Validate() error {
	if len(id) < MinAppIDLength {
		return utils.NewInvalidError("appID %s too short, should be %d bytes", id, MinAppIDLength)
	}
	if len(id) > MaxAppIDLength {
		return utils.NewInvalidError("appID %s too long, should be %d bytes", id, MaxAppIDLength)
	}
	for _, c := range id {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' || c == '_' {
			continue
		}
		return utils.NewInvalidError("invalid character '%c' in appID %q", c, id)
	}
	return nil
}
