// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-apps-actions/utils"
)

func TestNewError(t *testing.T) {
	for _, tc := range []struct {
		name     string
		err      error
		expected string
		cause    error
	}{
		{
			name:     "no args",
			err:      utils.NewNotFoundError(),
			expected: "not found",
			cause:    utils.ErrNotFound,
		},
		{
			name:     "format",
			err:      utils.NewInvalidError("bad %s", "thing"),
			expected: "bad thing: invalid input",
			cause:    utils.ErrInvalid,
		},
		{
			name:     "error",
			err:      utils.NewUnauthorizedError(errors.New("no session")),
			expected: "no session: unauthorized",
			cause:    utils.ErrUnauthorized,
		},
		{
			name:     "other",
			err:      utils.NewTimeoutError(42),
			expected: "timed out",
			cause:    utils.ErrTimeout,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.EqualError(t, tc.err, tc.expected)
			require.Equal(t, tc.cause, errors.Cause(tc.err))
		})
	}
}
