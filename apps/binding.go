// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package apps

// Binding is the main way for an App to attach its functionality to the
// Mattermost UI. A post menu binding is an item in the post "Actions" menu.
//
// The apps plugin returns the bindings for a user/channel/team as a list of
// top-level bindings, one per location, each containing the bindings the apps
// contributed there:
//
//	[
//	   {
//	       "location": "/post_menu",
//	       "bindings": [
//	           {
//	               "app_id": "hello",
//	               "location": "send",
//	               "label": "Send survey",
//	               "icon": "http://localhost:8080/static/icon.png",
//	               "call": {
//	                   "path": "/send"
//	               }
//	           }
//	       ]
//	   }
//	]
type Binding struct {
	// For internal use by Mattermost, Apps do not need to set.
	AppID AppID `json:"app_id,omitempty"`

	// Location allows the App to identify where in the UX the Call request
	// comes from. Once cleaned with PostMenuBindings it is fully qualified,
	// e.g. "/post_menu/send".
	Location Location `json:"location,omitempty"`

	// Icon is the icon to display, should be either a fully-qualified URL, or a
	// path for an app's static asset.
	Icon string `json:"icon,omitempty"`

	// Label is the primary text to display, the item text in the post menu.
	Label string `json:"label,omitempty"`

	// Hint is the secondary text to display, not used in the post menu.
	Hint string `json:"hint,omitempty"`

	// Description is the (optional) extended help text.
	Description string `json:"description,omitempty"`

	// A Binding is either to a Call, or is a "container" for other locations -
	// i.e. menu sub-items.
	Call     *Call     `json:"call,omitempty"`
	Bindings []Binding `json:"bindings,omitempty"`
}

// Key identifies the binding within a rendered menu.
func (b Binding) Key() string {
	return string(b.AppID) + string(b.Location)
}

// PostMenuBindings extracts the post menu items from the top-level bindings
// returned by the apps plugin. Sub-bindings inherit the AppID of their parent
// and get a fully qualified Location. Items that have neither a Call nor any
// sub-bindings, no Label, or an invalid AppID are dropped.
func PostMenuBindings(top []Binding) []Binding {
	var out []Binding
	for _, b := range top {
		if b.Location != LocationPostMenu {
			continue
		}
		out = append(out, cleanBindings(b.Bindings, LocationPostMenu, b.AppID)...)
	}
	return out
}

func cleanBindings(bb []Binding, parent Location, appID AppID) []Binding {
	var out []Binding
	for _, b := range bb {
		if b.AppID == "" {
			b.AppID = appID
		}
		if b.Location == "" {
			b.Location = Location(b.Label)
		}
		b.Location = parent.Sub(b.Location)
		if len(b.Bindings) > 0 {
			b.Bindings = cleanBindings(b.Bindings, b.Location, b.AppID)
		}
		if b.AppID.Validate() != nil {
			continue
		}
		if b.Label == "" || (b.Call == nil && len(b.Bindings) == 0) {
			continue
		}
		out = append(out, b)
	}
	return out
}
