// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

type CallType string

const (
	// CallTypeSubmit (default) indicates the intent to take action.
	CallTypeSubmit = CallType("submit")
	// CallTypeForm retrieves the form definition for the current set of values,
	// and the context.
	CallTypeForm = CallType("form")
	// CallTypeCancel is used for for the (rare?) case of when the form with
	// SubmitOnCancel set is dismissed by the user.
	CallTypeCancel = CallType("cancel")
	// CallTypeLookup is used to fetch items for dynamic select elements
	CallTypeLookup = CallType("lookup")
)

// A Call defines a way to invoke an App's function. In the post menu, each
// binding carries the Call to perform when the user clicks it.
type Call struct {
	// The path of the Call. For HTTP apps, the path is appended to the app's
	// RootURL.
	Path string `json:"path,omitempty"`

	// Expand specifies what extended data should be provided to the function
	// in each request's Context.
	Expand *Expand `json:"expand,omitempty"`

	// State is an opaque value that the App set in the binding, returned
	// as-is.
	State interface{} `json:"state,omitempty"`
}

func NewCall(path string) *Call {
	return &Call{
		Path: path,
	}
}

func (c Call) String() string {
	s := c.Path
	if c.Expand != nil {
		s += ", expand: " + c.Expand.String()
	}
	return s
}
