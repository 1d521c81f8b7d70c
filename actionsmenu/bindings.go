// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package actionsmenu

import (
	"github.com/mattermost/mattermost-apps-actions/apps"
)

// bindingsState holds the menu's bindings from two sources. A non-empty
// pushed list takes precedence over the fetched one. The fetched list is
// either absent (not loaded) or the complete result of the last fetch.
type bindingsState struct {
	pushed  []apps.Binding
	fetched []apps.Binding
	loaded  bool
}

// push records bindings provided by the owner of the menu. Empty lists are
// ignored so they never hide fetched bindings.
func (s *bindingsState) push(bb []apps.Binding) {
	if len(bb) == 0 {
		return
	}
	s.pushed = bb
}

func (s *bindingsState) setFetched(bb []apps.Binding) {
	if bb == nil {
		bb = []apps.Binding{}
	}
	s.fetched = bb
	s.loaded = true
}

// current returns the effective bindings, and false if there are none yet.
func (s *bindingsState) current() ([]apps.Binding, bool) {
	if len(s.pushed) > 0 {
		return s.pushed, true
	}
	return s.fetched, s.loaded
}
