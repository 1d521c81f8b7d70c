// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package actionsmenu

import (
	"context"
	"sync"
	"time"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-apps-actions/apps"
	"github.com/mattermost/mattermost-apps-actions/utils"
)

var (
	msgUnknownError = &i18n.Message{
		ID:    "apps.error.unknown",
		Other: "Unknown error occurred.",
	}
	msgUnknownResponseType = &i18n.Message{
		ID:    "apps.error.responses.unknown_type",
		Other: "App response type not supported. Response type: {{.Type}}.",
	}
	msgTimeout = &i18n.Message{
		ID:    "apps.error.timeout",
		Other: "The App did not respond in time.",
	}
)

// Target is what a post menu call is about: the post, and the acting user.
type Target struct {
	Post   *model.Post
	TeamID string
	UserID string
	Locale string
}

// Invoker submits the calls of post menu bindings, and turns the responses
// into ephemeral feedback. Only one call is in flight at a time.
type Invoker struct {
	services Services
	timeout  time.Duration

	mu       sync.Mutex
	inFlight bool
}

func NewInvoker(s Services, timeout time.Duration) *Invoker {
	return &Invoker{
		services: s.withDefaults(),
		timeout:  timeout,
	}
}

// Invoke calls the binding's Call in the context of target. A binding without
// a Call is inert, nothing happens. At most one ephemeral message is posted.
// If another call is still in flight ErrCallInFlight is returned and nothing
// else happens. Failures of the call itself are reported to the user, not
// returned.
func (inv *Invoker) Invoke(ctx context.Context, target Target, binding apps.Binding) error {
	if binding.Call == nil {
		return nil
	}
	if target.Post == nil {
		return utils.NewInvalidError("no post to invoke %s for", binding.Location)
	}
	if !inv.begin() {
		return utils.ErrCallInFlight
	}
	defer inv.end()

	post := target.Post
	cc := apps.NewCallContext(binding.AppID, binding.Location, post.ChannelId, target.TeamID, post.Id, post.RootId)
	cc.Locale = target.Locale
	creq := apps.NewCallRequest(*binding.Call, cc, apps.ExpandPostAll())
	log := inv.services.Log.With(creq)

	inv.services.Telemetry.TrackCall(string(binding.AppID), string(binding.Location), target.UserID)

	cresp, err := inv.submit(ctx, creq, target.Locale)
	outcome := outcomeOf(cresp, err)
	inv.services.Metrics.ObserveInvocation(apps.OutcomeName(outcome))

	loc := inv.services.I18N.NewLocalizer(target.Locale)
	message, ok := inv.feedbackMessage(loc, outcome, err)
	if err != nil {
		log.WithError(err).Debugw("call failed")
	} else {
		log.Debugw("call completed", "outcome", apps.OutcomeName(outcome))
	}
	if !ok {
		return nil
	}

	feedback := feedbackResponse(cresp, err)
	postErr := inv.services.Ephemeral.PostEphemeralCallResponseForPost(ctx, feedback, message, post)
	if postErr != nil {
		log.WithError(postErr).Warnw("failed to post ephemeral call response")
	}
	return nil
}

// InFlight returns true while a call is being submitted.
func (inv *Invoker) InFlight() bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.inFlight
}

func (inv *Invoker) begin() bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.inFlight {
		return false
	}
	inv.inFlight = true
	return true
}

func (inv *Invoker) end() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.inFlight = false
}

func (inv *Invoker) submit(ctx context.Context, creq apps.CallRequest, locale string) (*apps.CallResponse, error) {
	if inv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.timeout)
		defer cancel()
	}

	start := time.Now()
	cresp, err := inv.services.Calls.SubmitCall(ctx, creq, apps.CallTypeSubmit, locale)
	inv.services.Metrics.ObserveCallDuration(string(creq.Context.AppID), time.Since(start))

	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, utils.NewTimeoutError(err)
	}
	return cresp, err
}

// outcomeOf interprets the result of a submission. Transport errors and
// error-typed responses are both failures. Timeouts and cancellations carry
// no message of their own.
func outcomeOf(cresp *apps.CallResponse, err error) apps.Outcome {
	if err != nil {
		var errResp apps.CallResponse
		if errors.As(err, &errResp) {
			return apps.OutcomeFailure{Message: errResp.ErrorText}
		}
		if errors.Is(err, utils.ErrTimeout) || errors.Is(err, context.Canceled) {
			return apps.OutcomeFailure{}
		}
		return apps.OutcomeFailure{Message: err.Error()}
	}
	if cresp == nil {
		return apps.OutcomeOK{}
	}
	return apps.ClassifyResponse(*cresp)
}

// feedbackMessage returns the ephemeral message for outcome, and false if
// there is nothing to show.
func (inv *Invoker) feedbackMessage(loc *i18n.Localizer, outcome apps.Outcome, err error) (string, bool) {
	switch o := outcome.(type) {
	case apps.OutcomeOK:
		return o.Markdown, o.Markdown != ""

	case apps.OutcomeNavigate, apps.OutcomeForm:
		return "", false

	case apps.OutcomeFailure:
		if o.Message != "" {
			return o.Message, true
		}
		if errors.Is(err, utils.ErrTimeout) {
			return inv.services.I18N.LocalizeDefaultMessage(loc, msgTimeout), true
		}
		return inv.services.I18N.LocalizeDefaultMessage(loc, msgUnknownError), true

	case apps.OutcomeUnknown:
		return inv.services.I18N.LocalizeWithConfig(loc, &i18n.LocalizeConfig{
			DefaultMessage: msgUnknownResponseType,
			TemplateData: map[string]string{
				"Type": string(o.Type),
			},
		}), true
	}
	return "", false
}

// feedbackResponse is the response the ephemeral message is attributed to.
func feedbackResponse(cresp *apps.CallResponse, err error) apps.CallResponse {
	if err != nil {
		var errResp apps.CallResponse
		if errors.As(err, &errResp) {
			return errResp
		}
		return apps.NewErrorResponse(err)
	}
	if cresp == nil {
		return apps.CallResponse{Type: apps.CallResponseTypeOK}
	}
	return *cresp
}
