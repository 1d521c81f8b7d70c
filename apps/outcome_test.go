// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-apps-actions/apps"
)

func TestClassifyResponse(t *testing.T) {
	for _, tc := range []struct {
		name     string
		cresp    apps.CallResponse
		expected apps.Outcome
	}{
		{
			name:     "ok with markdown",
			cresp:    apps.CallResponse{Type: apps.CallResponseTypeOK, Markdown: "hi there"},
			expected: apps.OutcomeOK{Markdown: "hi there"},
		},
		{
			name:     "ok empty",
			cresp:    apps.CallResponse{Type: apps.CallResponseTypeOK},
			expected: apps.OutcomeOK{},
		},
		{
			name:     "navigate",
			cresp:    apps.CallResponse{Type: apps.CallResponseTypeNavigate, NavigateToURL: "http://x"},
			expected: apps.OutcomeNavigate{URL: "http://x"},
		},
		{
			name:     "form",
			cresp:    apps.CallResponse{Type: apps.CallResponseTypeForm},
			expected: apps.OutcomeForm{},
		},
		{
			name:     "error",
			cresp:    apps.NewErrorResponse(errors.New("boom")),
			expected: apps.OutcomeFailure{Message: "boom"},
		},
		{
			name:     "call is not supported",
			cresp:    apps.CallResponse{Type: apps.CallResponseTypeCall},
			expected: apps.OutcomeUnknown{Type: apps.CallResponseTypeCall},
		},
		{
			name:     "unknown",
			cresp:    apps.CallResponse{Type: "WEIRD"},
			expected: apps.OutcomeUnknown{Type: "WEIRD"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, apps.ClassifyResponse(tc.cresp))
		})
	}
}

func TestCallResponseError(t *testing.T) {
	var err error = apps.NewErrorResponse(errors.New("boom"))
	require.EqualError(t, err, "boom")
	require.Equal(t, "", apps.CallResponse{Type: apps.CallResponseTypeOK, Markdown: "ok"}.Error())
}

func TestOutcomeName(t *testing.T) {
	require.Equal(t, "ok", apps.OutcomeName(apps.OutcomeOK{}))
	require.Equal(t, "error", apps.OutcomeName(apps.OutcomeFailure{}))
	require.Equal(t, "unknown", apps.OutcomeName(apps.OutcomeUnknown{}))
	require.Equal(t, "none", apps.OutcomeName(nil))
}
