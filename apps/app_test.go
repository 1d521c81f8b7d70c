// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-apps-actions/utils"
)

func TestAppIDValidate(t *testing.T) {
	for id, valid := range map[AppID]bool{
		"":                                  false,
		"ab":                                false,
		"abc":                               true,
		"some-app_ID-99":                    true,
		"abcdefghijklmnopqrstuvwxyz012345":  true,
		"abcdefghijklmnopqrstuvwxyz0123456": false,
		"with space":                        false,
		"with/slash":                        false,
	} {
		t.Run(string(id), func(t *testing.T) {
			err := id.Validate()
			if valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, utils.ErrInvalid))
			}
		})
	}
}
