// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

// Outcome is the interpretation of a submit CallResponse from the point of
// view of the user agent. It is one of OutcomeOK, OutcomeNavigate,
// OutcomeForm, OutcomeFailure, or OutcomeUnknown; consumers use a type switch.
type Outcome interface {
	outcome()
}

// OutcomeOK is a successful call, Markdown may be empty.
type OutcomeOK struct {
	Markdown string
}

// OutcomeNavigate is handled by the navigation collaborator.
type OutcomeNavigate struct {
	URL                string
	UseExternalBrowser bool
}

// OutcomeForm is handled by the forms collaborator.
type OutcomeForm struct{}

// OutcomeFailure is an error-typed response. Message is empty if the App did
// not provide one.
type OutcomeFailure struct {
	Message string
}

// OutcomeUnknown is a response with a type the user agent does not support.
type OutcomeUnknown struct {
	Type CallResponseType
}

func (OutcomeOK) outcome()       {}
func (OutcomeNavigate) outcome() {}
func (OutcomeForm) outcome()     {}
func (OutcomeFailure) outcome()  {}
func (OutcomeUnknown) outcome()  {}

// ClassifyResponse maps a CallResponse to exactly one Outcome.
func ClassifyResponse(cresp CallResponse) Outcome {
	switch cresp.Type {
	case CallResponseTypeOK:
		return OutcomeOK{Markdown: cresp.Markdown}
	case CallResponseTypeNavigate:
		return OutcomeNavigate{
			URL:                cresp.NavigateToURL,
			UseExternalBrowser: cresp.UseExternalBrowser,
		}
	case CallResponseTypeForm:
		return OutcomeForm{}
	case CallResponseTypeError:
		return OutcomeFailure{Message: cresp.ErrorText}
	default:
		return OutcomeUnknown{Type: cresp.Type}
	}
}

// OutcomeName is a short label for an Outcome, used in logs and metrics.
func OutcomeName(o Outcome) string {
	switch o.(type) {
	case OutcomeOK:
		return "ok"
	case OutcomeNavigate:
		return "navigate"
	case OutcomeForm:
		return "form"
	case OutcomeFailure:
		return "error"
	case OutcomeUnknown:
		return "unknown"
	}
	return "none"
}
