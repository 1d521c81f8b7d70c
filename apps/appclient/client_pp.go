// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package appclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-apps-actions/apps"
	appspath "github.com/mattermost/mattermost-apps-actions/apps/path"
	"github.com/mattermost/mattermost-apps-actions/utils"
	"github.com/mattermost/mattermost-apps-actions/utils/httputils"
)

const (
	HeaderAuth      = "Authorization"
	HeaderRequestID = "X-Request-Id"
)

// ClientPP is the client for the REST API of the Apps plugin, and the few
// Mattermost APIs that the model client does not cover.
type ClientPP struct {
	URL        string       // The location of the server, for example  "http://localhost:8065"
	HTTPClient *http.Client // The http client
	AuthToken  string
	AuthType   string
	HTTPHeader map[string]string // Headers to be copied over for each request
}

func NewAppsPluginAPIClient(url string) *ClientPP {
	return &ClientPP{
		URL:        strings.TrimRight(url, "/"),
		HTTPClient: &http.Client{},
		HTTPHeader: map[string]string{},
	}
}

func (c *ClientPP) SetOAuthToken(token string) {
	c.AuthToken = token
	c.AuthType = model.HeaderBearer
}

// GetBindings returns the top-level bindings of all Apps, for the context.
func (c *ClientPP) GetBindings(ctx context.Context, userID, channelID, teamID string) ([]apps.Binding, *model.Response, error) {
	v := url.Values{}
	v.Add("user_id", userID)
	v.Add("channel_id", channelID)
	v.Add("team_id", teamID)
	v.Add("user_agent_type", apps.UserAgentWebapp)

	r, err := c.DoAPIGET(ctx, c.apipath(appspath.Bindings)+"?"+v.Encode()) // nolint:bodyclose
	if err != nil {
		return nil, model.BuildResponse(r), err
	}
	defer c.closeBody(r)

	bindings := []apps.Binding{}
	err = httputils.DecodeJSON(r.Body, &bindings)
	if err != nil {
		return nil, model.BuildResponse(r), errors.Wrap(err, "failed to decode response")
	}
	return bindings, model.BuildResponse(r), nil
}

// Call submits a call request. An error-typed response is returned as an
// apps.CallResponse error.
func (c *ClientPP) Call(ctx context.Context, creq apps.CallRequest) (*apps.CallResponse, *model.Response, error) {
	b, err := json.Marshal(&creq)
	if err != nil {
		return nil, nil, err
	}

	r, err := c.DoAPIPOST(ctx, c.apipath(appspath.Call), string(b)) // nolint:bodyclose
	if err != nil {
		return nil, model.BuildResponse(r), err
	}
	defer c.closeBody(r)

	var cresp apps.CallResponse
	err = httputils.DecodeJSON(r.Body, &cresp)
	if err != nil {
		return nil, model.BuildResponse(r), errors.Wrap(err, "failed to decode response")
	}
	if cresp.Type == apps.CallResponseTypeError {
		return nil, model.BuildResponse(r), cresp
	}
	return &cresp, model.BuildResponse(r), nil
}

type validateBusinessEmailRequest struct {
	Email string `json:"email"`
}

type validateBusinessEmailResponse struct {
	IsValid bool `json:"is_valid"`
}

// ValidateBusinessEmail asks the Mattermost server whether email belongs to a
// business domain.
func (c *ClientPP) ValidateBusinessEmail(ctx context.Context, email string) (bool, *model.Response, error) {
	r, err := c.DoAPIPOST(ctx, appspath.MattermostAPI+appspath.ValidateBusinessEmail, utils.ToJSON(validateBusinessEmailRequest{Email: email})) // nolint:bodyclose
	if err != nil {
		return false, model.BuildResponse(r), err
	}
	defer c.closeBody(r)

	var out validateBusinessEmailResponse
	err = httputils.DecodeJSON(r.Body, &out)
	if err != nil {
		return false, model.BuildResponse(r), errors.Wrap(err, "failed to decode response")
	}
	return out.IsValid, model.BuildResponse(r), nil
}

func (c *ClientPP) GetPluginRoute(pluginID string) string {
	return "/plugins/" + pluginID
}

func (c *ClientPP) DoAPIGET(ctx context.Context, url string) (*http.Response, error) {
	return c.DoAPIRequest(ctx, http.MethodGet, c.URL+url, "")
}

func (c *ClientPP) DoAPIPOST(ctx context.Context, url string, data string) (*http.Response, error) {
	return c.DoAPIRequest(ctx, http.MethodPost, c.URL+url, data)
}

func (c *ClientPP) DoAPIRequest(ctx context.Context, method, url, data string) (*http.Response, error) {
	rq, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(data))
	if err != nil {
		return nil, err
	}
	if data != "" {
		rq.Header.Set("Content-Type", "application/json")
	}
	rq.Header.Set(HeaderRequestID, model.NewId())
	if len(c.AuthToken) > 0 {
		rq.Header.Set(HeaderAuth, c.AuthType+" "+c.AuthToken)
	}
	for k, v := range c.HTTPHeader {
		rq.Header.Set(k, v)
	}

	rp, err := c.HTTPClient.Do(rq)
	if err != nil {
		return rp, err
	}

	if rp.StatusCode >= 300 {
		defer c.closeBody(rp)
		return rp, responseError(rp)
	}
	return rp, nil
}

// responseError interprets the body of a failed request: an error-typed call
// response, a Mattermost AppError, or plain text.
func responseError(rp *http.Response) error {
	data, err := httputils.LimitReadAll(rp.Body, maxErrorBodySize)
	if err != nil {
		return err
	}

	var cresp apps.CallResponse
	if json.Unmarshal(data, &cresp) == nil && cresp.Type == apps.CallResponseTypeError {
		return cresp
	}

	var appErr model.AppError
	if json.Unmarshal(data, &appErr) == nil && appErr.Message != "" {
		return statusError(rp.StatusCode, errors.New(appErr.Message))
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		text = http.StatusText(rp.StatusCode)
	}
	return statusError(rp.StatusCode, errors.New(text))
}

func statusError(status int, err error) error {
	switch status {
	case http.StatusNotFound:
		return utils.NewNotFoundError(err)
	case http.StatusUnauthorized:
		return utils.NewUnauthorizedError(err)
	case http.StatusForbidden:
		return utils.NewForbiddenError(err)
	case http.StatusBadRequest:
		return utils.NewInvalidError(err)
	}
	return err
}

const maxErrorBodySize = 64 * 1024

func (c *ClientPP) closeBody(r *http.Response) {
	if r.Body != nil {
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
}

func (c *ClientPP) apipath(p string) string {
	return c.GetPluginRoute(appspath.PluginName) + appspath.API + p
}
