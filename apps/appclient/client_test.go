// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package appclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/mattermost/mattermost/server/public/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-apps-actions/apps"
	"github.com/mattermost/mattermost-apps-actions/utils"
	"github.com/mattermost/mattermost-apps-actions/utils/httputils"
)

const (
	bindingsPath = "/plugins/com.mattermost.apps/api/v1/bindings"
	callPath     = "/plugins/com.mattermost.apps/api/v1/call"
)

func setupTestServer(t *testing.T, r *mux.Router) *Client {
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return NewClient("user_id", "some_token", server.URL)
}

func requireAuth(t *testing.T, req *http.Request) {
	require.Equal(t, model.HeaderBearer+" some_token", req.Header.Get(HeaderAuth))
	require.True(t, model.IsValidId(req.Header.Get(HeaderRequestID)))
}

func textResponse(markdown string) apps.CallResponse {
	return apps.CallResponse{
		Type:     apps.CallResponseTypeOK,
		Markdown: markdown,
	}
}

func TestFetchBindings(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc(bindingsPath, func(w http.ResponseWriter, req *http.Request) {
		requireAuth(t, req)
		q := req.URL.Query()
		require.Equal(t, "user_id", q.Get("user_id"))
		require.Equal(t, "channel_id", q.Get("channel_id"))
		require.Equal(t, "team_id", q.Get("team_id"))
		require.Equal(t, "webapp", q.Get("user_agent_type"))

		_ = httputils.WriteJSON(w, []apps.Binding{
			{
				AppID:    "app1",
				Location: apps.LocationPostMenu,
				Bindings: []apps.Binding{
					{Location: "send", Label: "Send", Call: apps.NewCall("/send")},
					{Label: "no call"},
				},
			},
			{
				AppID:    "app1",
				Location: apps.LocationChannelHeader,
				Bindings: []apps.Binding{
					{Location: "header", Label: "Header", Call: apps.NewCall("/header")},
				},
			},
		})
	}).Methods(http.MethodGet)
	c := setupTestServer(t, r)

	bb, err := c.FetchBindings(context.Background(), "user_id", "channel_id", "team_id")
	require.NoError(t, err)
	require.Equal(t, []apps.Binding{
		{AppID: "app1", Location: "/post_menu/send", Label: "Send", Call: apps.NewCall("/send")},
	}, bb)
}

func TestFetchBindingsError(t *testing.T) {
	for name, tc := range map[string]struct {
		handler  http.HandlerFunc
		expected error
		text     string
	}{
		"plain text": {
			handler: func(w http.ResponseWriter, req *http.Request) {
				http.Error(w, "something broke", http.StatusInternalServerError)
			},
			text: "something broke",
		},
		"app error": {
			handler: func(w http.ResponseWriter, req *http.Request) {
				_ = httputils.WriteJSONStatus(w, http.StatusNotFound, model.NewAppError("GetBindings", "id", nil, "no such app", http.StatusNotFound))
			},
			expected: utils.ErrNotFound,
		},
		"unauthorized": {
			handler: func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expected: utils.ErrUnauthorized,
			text:     "Unauthorized",
		},
		"bad JSON": {
			handler: func(w http.ResponseWriter, req *http.Request) {
				_, _ = w.Write([]byte("{"))
			},
			text: "failed to decode response",
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc(bindingsPath, tc.handler)
			c := setupTestServer(t, r)

			bb, err := c.FetchBindings(context.Background(), "user_id", "channel_id", "team_id")
			require.Error(t, err)
			require.Nil(t, bb)
			if tc.expected != nil {
				require.True(t, errors.Is(err, tc.expected))
			}
			require.Contains(t, err.Error(), tc.text)
		})
	}
}

func TestSubmitCall(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc(callPath, func(w http.ResponseWriter, req *http.Request) {
		requireAuth(t, req)
		creq, err := apps.CallRequestFromJSONReader(req.Body)
		require.NoError(t, err)
		require.Equal(t, apps.CallTypeSubmit, creq.Type)
		require.Equal(t, "fr", creq.Context.Locale)
		require.Equal(t, apps.ExpandAll, creq.Expand.Post)

		switch creq.Path {
		case "/ok":
			_ = httputils.WriteJSON(w, textResponse("hi " + creq.Context.PostID))
		case "/error":
			_ = httputils.WriteJSON(w, apps.CallResponse{Type: apps.CallResponseTypeError, ErrorText: "boom"})
		default:
			_ = httputils.WriteJSONStatus(w, http.StatusInternalServerError, apps.CallResponse{Type: apps.CallResponseTypeError, ErrorText: "no such path"})
		}
	}).Methods(http.MethodPost)
	c := setupTestServer(t, r)

	newRequest := func(path string) apps.CallRequest {
		cc := apps.NewCallContext("app1", "/post_menu/send", "channel_id", "team_id", "post_id", "")
		return apps.NewCallRequest(*apps.NewCall(path), cc, apps.ExpandPostAll())
	}

	t.Run("ok", func(t *testing.T) {
		cresp, err := c.SubmitCall(context.Background(), newRequest("/ok"), apps.CallTypeSubmit, "fr")
		require.NoError(t, err)
		require.Equal(t, &apps.CallResponse{Type: apps.CallResponseTypeOK, Markdown: "hi post_id"}, cresp)
	})

	for _, path := range []string{"/error", "/other"} {
		t.Run(path, func(t *testing.T) {
			cresp, err := c.SubmitCall(context.Background(), newRequest(path), apps.CallTypeSubmit, "fr")
			require.Error(t, err)
			require.Nil(t, cresp)
			var errResp apps.CallResponse
			require.True(t, errors.As(err, &errResp))
			require.Equal(t, apps.CallResponseTypeError, errResp.Type)
		})
	}
}

func TestPostEphemeralCallResponseForPost(t *testing.T) {
	var received []model.PostEphemeral
	r := mux.NewRouter()
	r.HandleFunc("/api/v4/posts/ephemeral", func(w http.ResponseWriter, req *http.Request) {
		var in model.PostEphemeral
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		received = append(received, in)
		_ = httputils.WriteJSONStatus(w, http.StatusCreated, in.Post)
	}).Methods(http.MethodPost)
	c := setupTestServer(t, r)

	cresp := textResponse("hi")
	err := c.PostEphemeralCallResponseForPost(context.Background(), cresp, "hi", &model.Post{Id: "post_id", ChannelId: "channel_id"})
	require.NoError(t, err)
	err = c.PostEphemeralCallResponseForPost(context.Background(), cresp, "again", &model.Post{Id: "reply_id", ChannelId: "channel_id", RootId: "root_id"})
	require.NoError(t, err)
	err = c.PostEphemeralCallResponseForPost(context.Background(), cresp, "nothing", nil)
	require.Error(t, err)

	require.Len(t, received, 2)
	require.Equal(t, "user_id", received[0].UserID)
	require.Equal(t, "post_id", received[0].Post.RootId)
	require.Equal(t, "channel_id", received[0].Post.ChannelId)
	require.Equal(t, "hi", received[0].Post.Message)
	require.Equal(t, "root_id", received[1].Post.RootId)
	require.Equal(t, "again", received[1].Post.Message)
}

func TestValidateBusinessEmail(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v4/cloud/validate-business-email", func(w http.ResponseWriter, req *http.Request) {
		var in validateBusinessEmailRequest
		require.NoError(t, httputils.DecodeJSON(req.Body, &in))
		if in.Email == "broken@test.test" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = httputils.WriteJSON(w, validateBusinessEmailResponse{
			IsValid: in.Email == "someone@business.test",
		})
	}).Methods(http.MethodPost)
	c := setupTestServer(t, r)

	valid, err := c.ValidateBusinessEmail(context.Background(), "someone@business.test")
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = c.ValidateBusinessEmail(context.Background(), "someone@gmail.com")
	require.NoError(t, err)
	require.False(t, valid)

	_, err = c.ValidateBusinessEmail(context.Background(), "broken@test.test")
	require.Error(t, err)
}
