// Copyright (c) 2022-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

// Package cloudtrial validates the email a user enters to start a cloud
// trial.
package cloudtrial

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-apps-actions/modal"
	"github.com/mattermost/mattermost-apps-actions/telemetry"
	"github.com/mattermost/mattermost-apps-actions/utils"
	"github.com/mattermost/mattermost-apps-actions/utils/i18nutils"
)

// ClearAfter is how long the confirmation of a valid email is shown.
const ClearAfter = 2 * time.Second

type Status string

const (
	StatusNone    Status = ""
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	StatusOK      Status = "success"
)

var (
	msgInvalidEmail = &i18n.Message{
		ID:    "request_business_email_modal.invalidEmail",
		Other: "This doesnt look like a valid email",
	}
	msgNotBusinessEmail = &i18n.Message{
		ID:    "request_business_email_modal.not_business_email",
		Other: "This doesnt look like a business email",
	}
	msgValidBusinessEmail = &i18n.Message{
		ID:    "request_business_email_modal.valid_business_email",
		Other: "This is a valid email",
	}
	msgTitle = &i18n.Message{
		ID:    "start_cloud_trial.modal.enter_trial_email.title",
		Other: "Enter an email to start your trial",
	}
	msgDescription = &i18n.Message{
		ID:    "start_cloud_trial.modal.enter_trial_email.description",
		Other: "Start a trial and enter a business email to get started.",
	}
	msgStartTrial = &i18n.Message{
		ID:    "cloud.startTrial.modal.btn",
		Other: "Start trial",
	}
)

// BusinessEmailChecker is implemented by appclient.Client.
type BusinessEmailChecker interface {
	ValidateBusinessEmail(ctx context.Context, email string) (bool, error)
}

// Label is the status shown under the email input. The zero value shows
// nothing.
type Label struct {
	Status Status
	Text   string
}

// Result of validating one value of the email input.
type Result struct {
	Email string
	Label Label
}

// Validator holds the state of the request business email modal.
type Validator struct {
	checker    BusinessEmailChecker
	i18n       *i18nutils.Bundle
	localizer  *i18n.Localizer
	telemetry  *telemetry.Telemetry
	log        utils.Logger
	clearAfter time.Duration

	mu                 sync.Mutex
	email              string
	label              Label
	trialButtonEnabled bool
	generation         int
	clearTimer         *time.Timer
}

type Option func(*Validator)

func WithTelemetry(t *telemetry.Telemetry) Option {
	return func(v *Validator) { v.telemetry = t }
}

func WithLogger(log utils.Logger) Option {
	return func(v *Validator) { v.log = log }
}

func WithLocale(locale string) Option {
	return func(v *Validator) { v.localizer = v.i18n.NewLocalizer(locale) }
}

func WithClearAfter(d time.Duration) Option {
	return func(v *Validator) { v.clearAfter = d }
}

func NewValidator(checker BusinessEmailChecker, bundle *i18nutils.Bundle, opts ...Option) *Validator {
	if bundle == nil {
		bundle = i18nutils.MustNewBundle()
	}
	v := &Validator{
		checker:    checker,
		i18n:       bundle,
		localizer:  bundle.NewLocalizer(""),
		log:        utils.NewNilLogger(),
		clearAfter: ClearAfter,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Open is called when the modal is shown.
func (v *Validator) Open() {
	v.telemetry.TrackCategoryEvent(telemetry.CategoryRequestBusinessEmail, "request_business_email")
}

// OpenModal shows the request business email modal.
func (v *Validator) OpenModal(ctx context.Context, modals modal.Service) error {
	shown, err := modals.Open(ctx, modal.Descriptor{
		ID: modal.RequestBusinessEmail,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open the request business email modal")
	}
	if shown {
		v.Open()
	}
	return nil
}

// Close stops any pending label update.
func (v *Validator) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	if v.clearTimer != nil {
		v.clearTimer.Stop()
		v.clearTimer = nil
	}
}

// Validate processes a new value of the email input. The email is trimmed
// and lower-cased. Empty input clears the label, a malformed address is a
// warning, and a valid one is checked remotely. A business email enables the
// trial button, and its confirmation is cleared after a while.
func (v *Validator) Validate(ctx context.Context, raw string) Result {
	email := strings.ToLower(strings.TrimSpace(raw))

	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.email = email
	v.mu.Unlock()

	var label Label
	switch {
	case email == "":

	case !model.IsValidEmail(email):
		label = Label{StatusWarning, v.i18n.LocalizeDefaultMessage(v.localizer, msgInvalidEmail)}

	default:
		ok, err := v.checker.ValidateBusinessEmail(ctx, email)
		if err != nil {
			v.log.WithError(err).Debugw("failed to validate business email")
		}
		if err != nil || !ok {
			label = Label{StatusError, v.i18n.LocalizeDefaultMessage(v.localizer, msgNotBusinessEmail)}
		} else {
			label = Label{StatusOK, v.i18n.LocalizeDefaultMessage(v.localizer, msgValidBusinessEmail)}
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	// A newer input took over while the check was in progress.
	if gen != v.generation {
		return Result{Email: email, Label: label}
	}
	v.label = label
	if label.Status == StatusOK {
		v.trialButtonEnabled = true
		v.scheduleClear(gen)
	}
	return Result{Email: email, Label: label}
}

func (v *Validator) scheduleClear(gen int) {
	if v.clearTimer != nil {
		v.clearTimer.Stop()
	}
	v.clearTimer = time.AfterFunc(v.clearAfter, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if gen == v.generation {
			v.label = Label{}
		}
	})
}

func (v *Validator) Email() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.email
}

func (v *Validator) Label() Label {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.label
}

// TrialButtonEnabled becomes true once a business email was entered, and
// stays so.
func (v *Validator) TrialButtonEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.trialButtonEnabled
}

// Texts are the localized static texts of the modal.
type Texts struct {
	Title       string
	Description string
	StartTrial  string
}

func (v *Validator) Texts() Texts {
	return Texts{
		Title:       v.i18n.LocalizeDefaultMessage(v.localizer, msgTitle),
		Description: v.i18n.LocalizeDefaultMessage(v.localizer, msgDescription),
		StartTrial:  v.i18n.LocalizeDefaultMessage(v.localizer, msgStartTrial),
	}
}
