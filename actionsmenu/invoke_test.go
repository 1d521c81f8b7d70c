// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package actionsmenu

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/mattermost/mattermost/server/public/model"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-apps-actions/apps"
	"github.com/mattermost/mattermost-apps-actions/mocks/mock_actionsmenu"
	"github.com/mattermost/mattermost-apps-actions/telemetry"
	"github.com/mattermost/mattermost-apps-actions/utils"
)

type invokeTest struct {
	ctrl      *gomock.Controller
	calls     *mock_actionsmenu.MockCallSubmitter
	ephemeral *mock_actionsmenu.MockEphemeralPoster
	services  Services
}

func newInvokeTest(t *testing.T) *invokeTest {
	ctrl := gomock.NewController(t)
	calls := mock_actionsmenu.NewMockCallSubmitter(ctrl)
	ephemeral := mock_actionsmenu.NewMockEphemeralPoster(ctrl)
	return &invokeTest{
		ctrl:      ctrl,
		calls:     calls,
		ephemeral: ephemeral,
		services: Services{
			Calls:     calls,
			Ephemeral: ephemeral,
			Log:       utils.NewTestLogger(),
		},
	}
}

func testPost() *model.Post {
	return &model.Post{
		Id:        "post_id",
		ChannelId: "channel_id",
		RootId:    "root_id",
		Message:   "hello",
	}
}

func testTarget() Target {
	return Target{
		Post:   testPost(),
		TeamID: "team_id",
		UserID: "user_id",
	}
}

func testBinding() apps.Binding {
	return apps.Binding{
		AppID:    "app1",
		Location: "/post_menu/send",
		Label:    "Send",
		Call:     apps.NewCall("/send"),
	}
}

func TestInvokeNoCall(t *testing.T) {
	it := newInvokeTest(t)
	defer it.ctrl.Finish()

	b := testBinding()
	b.Call = nil
	err := NewInvoker(it.services, time.Second).Invoke(context.Background(), testTarget(), b)
	require.NoError(t, err)
}

func TestInvokeNoPost(t *testing.T) {
	it := newInvokeTest(t)
	defer it.ctrl.Finish()

	err := NewInvoker(it.services, time.Second).Invoke(context.Background(), Target{UserID: "user_id"}, testBinding())
	require.Error(t, err)
	require.True(t, errors.Is(err, utils.ErrInvalid))
}

func TestInvokeRequest(t *testing.T) {
	it := newInvokeTest(t)
	defer it.ctrl.Finish()

	expected := apps.CallRequest{
		Call: apps.Call{
			Path:   "/send",
			Expand: apps.ExpandPostAll(),
		},
		Context: apps.Context{
			AppID:      "app1",
			Location:   "/post_menu/send",
			ChannelID:  "channel_id",
			TeamID:     "team_id",
			PostID:     "post_id",
			RootPostID: "root_id",
			UserAgent:  apps.UserAgentWebapp,
			Locale:     "es",
		},
	}
	it.calls.EXPECT().
		SubmitCall(gomock.Any(), expected, apps.CallTypeSubmit, "es").
		Return(&apps.CallResponse{Type: apps.CallResponseTypeOK}, nil)

	target := testTarget()
	target.Locale = "es"
	err := NewInvoker(it.services, time.Second).Invoke(context.Background(), target, testBinding())
	require.NoError(t, err)
}

func TestInvokeFeedback(t *testing.T) {
	for name, tc := range map[string]struct {
		resp            *apps.CallResponse
		err             error
		expectPosted    bool
		expectMessage   string
		expectContains  string
		expectRespType  apps.CallResponseType
		expectedOutcome string
	}{
		"OK no markdown": {
			resp:            &apps.CallResponse{Type: apps.CallResponseTypeOK},
			expectedOutcome: "ok",
		},
		"OK with markdown": {
			resp:            &apps.CallResponse{Type: apps.CallResponseTypeOK, Markdown: "hi"},
			expectPosted:    true,
			expectMessage:   "hi",
			expectRespType:  apps.CallResponseTypeOK,
			expectedOutcome: "ok",
		},
		"navigate": {
			resp:            &apps.CallResponse{Type: apps.CallResponseTypeNavigate, NavigateToURL: "http://test.test"},
			expectedOutcome: "navigate",
		},
		"form": {
			resp:            &apps.CallResponse{Type: apps.CallResponseTypeForm},
			expectedOutcome: "form",
		},
		"unknown type": {
			resp:            &apps.CallResponse{Type: "WEIRD"},
			expectPosted:    true,
			expectContains:  "WEIRD",
			expectRespType:  "WEIRD",
			expectedOutcome: "unknown",
		},
		"error response": {
			err:             apps.CallResponse{Type: apps.CallResponseTypeError, ErrorText: "boom"},
			expectPosted:    true,
			expectMessage:   "boom",
			expectRespType:  apps.CallResponseTypeError,
			expectedOutcome: "error",
		},
		"wrapped error response": {
			err:             errors.Wrap(apps.CallResponse{Type: apps.CallResponseTypeError, ErrorText: "boom"}, "call failed"),
			expectPosted:    true,
			expectMessage:   "boom",
			expectRespType:  apps.CallResponseTypeError,
			expectedOutcome: "error",
		},
		"empty error response": {
			err:             apps.CallResponse{Type: apps.CallResponseTypeError},
			expectPosted:    true,
			expectMessage:   "Unknown error occurred.",
			expectRespType:  apps.CallResponseTypeError,
			expectedOutcome: "error",
		},
		"error typed response": {
			resp:            &apps.CallResponse{Type: apps.CallResponseTypeError, ErrorText: "boom"},
			expectPosted:    true,
			expectMessage:   "boom",
			expectRespType:  apps.CallResponseTypeError,
			expectedOutcome: "error",
		},
		"canceled": {
			err:             errors.Wrap(context.Canceled, "Post \"http://test.test\""),
			expectPosted:    true,
			expectMessage:   "Unknown error occurred.",
			expectRespType:  apps.CallResponseTypeError,
			expectedOutcome: "error",
		},
		"transport error": {
			err:             errors.New("connection refused"),
			expectPosted:    true,
			expectMessage:   "connection refused",
			expectRespType:  apps.CallResponseTypeError,
			expectedOutcome: "error",
		},
	} {
		t.Run(name, func(t *testing.T) {
			it := newInvokeTest(t)
			defer it.ctrl.Finish()
			reg := prometheus.NewRegistry()
			it.services.Metrics = telemetry.NewMetrics(reg)

			it.calls.EXPECT().
				SubmitCall(gomock.Any(), gomock.Any(), apps.CallTypeSubmit, "").
				Return(tc.resp, tc.err)

			var posted []string
			if tc.expectPosted {
				it.ephemeral.EXPECT().
					PostEphemeralCallResponseForPost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cresp apps.CallResponse, message string, post *model.Post) error {
						require.Equal(t, tc.expectRespType, cresp.Type)
						require.Equal(t, "post_id", post.Id)
						posted = append(posted, message)
						return nil
					})
			}

			err := NewInvoker(it.services, time.Second).Invoke(context.Background(), testTarget(), testBinding())
			require.NoError(t, err)

			if !tc.expectPosted {
				require.Empty(t, posted)
			} else {
				require.Len(t, posted, 1)
				if tc.expectMessage != "" {
					require.Equal(t, tc.expectMessage, posted[0])
				}
				require.Contains(t, posted[0], tc.expectContains)
			}

			count, err := testutil.GatherAndCount(reg, "apps_actions_invocations_total")
			require.NoError(t, err)
			require.Equal(t, 1, count)
		})
	}
}

func TestInvokeTimeout(t *testing.T) {
	it := newInvokeTest(t)
	defer it.ctrl.Finish()

	it.calls.EXPECT().
		SubmitCall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ apps.CallRequest, _ apps.CallType, _ string) (*apps.CallResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	it.ephemeral.EXPECT().
		PostEphemeralCallResponseForPost(gomock.Any(), gomock.Any(), "The App did not respond in time.", gomock.Any()).
		Return(nil)

	inv := NewInvoker(it.services, 10*time.Millisecond)
	err := inv.Invoke(context.Background(), testTarget(), testBinding())
	require.NoError(t, err)
	require.False(t, inv.InFlight())
}

func TestInvokeInFlight(t *testing.T) {
	it := newInvokeTest(t)
	defer it.ctrl.Finish()

	release := make(chan struct{})
	it.calls.EXPECT().
		SubmitCall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, apps.CallRequest, apps.CallType, string) (*apps.CallResponse, error) {
			<-release
			return &apps.CallResponse{Type: apps.CallResponseTypeOK, Markdown: "done"}, nil
		}).
		Times(1)
	it.ephemeral.EXPECT().
		PostEphemeralCallResponseForPost(gomock.Any(), gomock.Any(), "done", gomock.Any()).
		Return(nil).
		Times(1)

	inv := NewInvoker(it.services, time.Minute)
	done := make(chan error)
	go func() {
		done <- inv.Invoke(context.Background(), testTarget(), testBinding())
	}()
	require.Eventually(t, inv.InFlight, time.Second, time.Millisecond)

	err := inv.Invoke(context.Background(), testTarget(), testBinding())
	require.True(t, errors.Is(err, utils.ErrCallInFlight))

	close(release)
	require.NoError(t, <-done)
	require.False(t, inv.InFlight())
}

func TestInvokeEphemeralFailureIsLogged(t *testing.T) {
	it := newInvokeTest(t)
	defer it.ctrl.Finish()
	log, logs := utils.NewObservedTestLogger()
	it.services.Log = log

	it.calls.EXPECT().
		SubmitCall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&apps.CallResponse{Type: apps.CallResponseTypeOK, Markdown: "hi"}, nil)
	it.ephemeral.EXPECT().
		PostEphemeralCallResponseForPost(gomock.Any(), gomock.Any(), "hi", gomock.Any()).
		Return(errors.New("forbidden"))

	err := NewInvoker(it.services, time.Second).Invoke(context.Background(), testTarget(), testBinding())
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("failed to post ephemeral call response").Len())
}
