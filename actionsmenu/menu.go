// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package actionsmenu

import (
	"context"
	"sync"
	"time"

	"github.com/mattermost/mattermost/server/public/model"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-apps-actions/apps"
	"github.com/mattermost/mattermost-apps-actions/config"
	"github.com/mattermost/mattermost-apps-actions/modal"
)

const (
	LocationCenter     = "CENTER"
	LocationRHSRoot    = "RHS_ROOT"
	LocationRHSComment = "RHS_COMMENT"
	LocationSearch     = "SEARCH"
)

// Props are provided by the owner of the menu.
type Props struct {
	Post *model.Post

	UserID string
	Locale string

	// TeamID is the team of the post, used in the context of calls.
	// CurrentTeamID is the team the user is looking at, used to fetch
	// bindings.
	TeamID        string
	CurrentTeamID string

	// Location of the post list the menu is rendered in, CENTER by default.
	Location string

	AppsEnabled     bool
	IsSysAdmin      bool
	ShowTutorialTip bool

	// PluginMenuItems are the menu items registered by webapp plugins, and
	// PluggableCount the number of components plugged in the menu.
	PluginMenuItems []PluginMenuItem
	PluggableCount  int

	// AppBindings, if not empty, are used instead of fetching.
	AppBindings []apps.Binding
}

// Menu is one instance of the post "Actions" menu. It owns the bindings
// fetched for the post, and the placement of the dropdown.
type Menu struct {
	props        Props
	services     Services
	invoker      *Invoker
	fetchTimeout time.Duration

	mu       sync.Mutex
	isOpen   bool
	fetching bool
	disposed bool
	openUp   bool
	bindings bindingsState
}

func NewMenu(conf config.Config, props Props, s Services) *Menu {
	if props.Location == "" {
		props.Location = LocationCenter
	}
	s = s.withDefaults()
	m := &Menu{
		props:        props,
		services:     s,
		invoker:      NewInvoker(s, conf.CallTimeout),
		fetchTimeout: conf.FetchTimeout,
	}
	m.bindings.push(props.AppBindings)
	return m
}

// SetAppBindings updates the bindings pushed by the owner of the menu. A
// non-empty list replaces whatever the menu has; an empty one is ignored.
func (m *Menu) SetAppBindings(bb []apps.Binding) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings.push(bb)
}

// Bindings returns the current bindings, and false if none have been loaded.
func (m *Menu) Bindings() ([]apps.Binding, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bindings.current()
}

func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isOpen
}

// SetOpen is called when the menu is toggled. Opening a menu that has no
// bindings yet fetches them; the call returns when the fetch completes. A
// failed fetch leaves the menu without bindings, it is logged and not
// reported. A menu without a post never fetches.
func (m *Menu) SetOpen(ctx context.Context, open bool) {
	m.mu.Lock()
	if m.disposed {
		m.mu.Unlock()
		return
	}
	wasOpen := m.isOpen
	m.isOpen = open
	_, loaded := m.bindings.current()
	shouldFetch := open && !wasOpen && !loaded && !m.fetching && m.props.Post != nil
	if shouldFetch {
		m.fetching = true
	}
	m.mu.Unlock()

	if shouldFetch {
		m.fetchBindings(ctx)
	}
}

func (m *Menu) fetchBindings(ctx context.Context) {
	if m.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.fetchTimeout)
		defer cancel()
	}

	post := m.props.Post
	log := m.services.Log.With("user_id", m.props.UserID, "channel_id", post.ChannelId, "team_id", m.props.CurrentTeamID)

	bb, err := m.services.Bindings.FetchBindings(ctx, m.props.UserID, post.ChannelId, m.props.CurrentTeamID)
	m.services.Metrics.ObserveBindingsFetch(err)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetching = false
	if err != nil {
		log.WithError(err).Warnw("failed to fetch post menu bindings")
		return
	}
	if m.disposed {
		log.Debugw("menu disposed, dropping fetched bindings")
		return
	}
	m.bindings.setFetched(bb)
	log.Debugw("fetched post menu bindings", "count", len(bb))
}

// Attach is called when the dropdown is attached to the layout, it decides
// whether the menu opens upward.
func (m *Menu) Attach(trigger Rect, viewportHeight float64) bool {
	openUp := DecidePlacement(trigger, viewportHeight)

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.disposed {
		m.openUp = openUp
	}
	return openUp
}

func (m *Menu) OpenUp() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openUp
}

// ClickBinding invokes the binding for the menu's post.
func (m *Menu) ClickBinding(ctx context.Context, binding apps.Binding) error {
	return m.invoker.Invoke(ctx, Target{
		Post:   m.props.Post,
		TeamID: m.props.TeamID,
		UserID: m.props.UserID,
		Locale: m.props.Locale,
	}, binding)
}

// ClickItem performs the action of a rendered item.
func (m *Menu) ClickItem(ctx context.Context, item MenuItem) error {
	switch item.Kind {
	case ItemAppBinding:
		if item.Binding == nil {
			return nil
		}
		return m.ClickBinding(ctx, *item.Binding)
	case ItemMarketplace, ItemVisitMarketplace:
		return m.OpenMarketplace(ctx)
	case ItemPlugin:
		if item.Action != nil {
			item.Action(m.postID())
		}
	}
	return nil
}

// OpenMarketplace opens the App Marketplace modal.
func (m *Menu) OpenMarketplace(ctx context.Context) error {
	if m.services.Modals == nil {
		return errors.New("no modal service to open the marketplace")
	}
	m.services.Telemetry.TrackOpenMarketplace(m.props.UserID)
	_, err := m.services.Modals.Open(ctx, modal.Descriptor{
		ID: modal.PluginMarketplace,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open the marketplace")
	}
	return nil
}

// Dispose is called when the menu is torn down. Pending results are dropped.
func (m *Menu) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disposed = true
	m.isOpen = false
}
