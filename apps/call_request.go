// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

import (
	"encoding/json"
	"io"
)

// CallRequest envelops all requests sent to Apps.
type CallRequest struct {
	// A copy of the Call struct that originated the request. Path and State are
	// of significance.
	Call

	// Type of the call, submit for clicks on post menu bindings.
	Type CallType `json:"type,omitempty"`

	// Values are all values entered by the user.
	Values map[string]interface{} `json:"values,omitempty"`

	// Context of execution, see the Context type for more information.
	Context Context `json:"context,omitempty"`
}

// NewCallRequest builds a single-use request for a binding's call. expand, if
// not nil, replaces the Expand of the binding's call.
func NewCallRequest(call Call, cc Context, expand *Expand) CallRequest {
	if expand != nil {
		call.Expand = expand
	}
	return CallRequest{
		Call:    call,
		Context: cc,
	}
}

// UnmarshalJSON has to be defined since Call is embedded anonymously, and
// CallRequest inherits its UnmarshalJSON unless it defines its own.
func (creq *CallRequest) UnmarshalJSON(data []byte) error {
	call := Call{}
	err := json.Unmarshal(data, &call)
	if err != nil {
		return err
	}

	// Need a type that is just like CallRequest, but without Call to avoid
	// recursion.
	structValue := struct {
		Type    CallType               `json:"type,omitempty"`
		Values  map[string]interface{} `json:"values,omitempty"`
		Context Context                `json:"context,omitempty"`
	}{}
	err = json.Unmarshal(data, &structValue)
	if err != nil {
		return err
	}

	*creq = CallRequest{
		Call:    call,
		Type:    structValue.Type,
		Values:  structValue.Values,
		Context: structValue.Context,
	}
	return nil
}

func CallRequestFromJSONReader(in io.Reader) (*CallRequest, error) {
	c := CallRequest{}
	err := json.NewDecoder(in).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (creq CallRequest) Loggable() []interface{} {
	props := []interface{}{"call_path", creq.Path}
	if creq.Type != "" {
		props = append(props, "call_type", creq.Type)
	}
	return append(props, creq.Context.Loggable()...)
}
