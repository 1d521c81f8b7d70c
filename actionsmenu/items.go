// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package actionsmenu

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/mattermost/mattermost-apps-actions/apps"
)

// PluggableComponent is the name of the component plugins register to be
// rendered inside the menu.
const PluggableComponent = "PostDropdownMenuItem"

const marketplaceIcon = "icon-view-grid-plus-outline"

type ItemKind string

const (
	ItemPlugin           ItemKind = "plugin"
	ItemPluginSubMenu    ItemKind = "plugin_submenu"
	ItemAppBinding       ItemKind = "app_binding"
	ItemPluggable        ItemKind = "pluggable"
	ItemDivider          ItemKind = "divider"
	ItemMarketplace      ItemKind = "marketplace"
	ItemVisitMarketplace ItemKind = "visit_marketplace"
)

var (
	msgMarketplace = &i18n.Message{
		ID:    "post_info.marketplace",
		Other: "App Marketplace",
	}
	msgNoActions = &i18n.Message{
		ID:    "post_info.actions.noActions",
		Other: "No Actions currently\nconfigured for this server",
	}
	msgVisitMarketplace = &i18n.Message{
		ID:    "post_info.actions.visitMarketplace",
		Other: "Visit the Marketplace",
	}
	msgTooltipActions = &i18n.Message{
		ID:    "post_info.tooltip.actions",
		Other: "Actions",
	}
	msgMenuAriaLabel = &i18n.Message{
		ID:    "post_info.menuAriaLabel",
		Other: "Post extra options",
	}
	msgTutorialTipTitle = &i18n.Message{
		ID:    "post_info.actions.tutorialTip.title",
		Other: "Actions for messages",
	}
	msgTutorialTip = &i18n.Message{
		ID:    "post_info.actions.tutorialTip",
		Other: "Message actions that are provided\nthrough apps, integrations or plugins\nhave moved to this menu item.",
	}
)

// PluginMenuItem is a menu item registered by a plugin.
type PluginMenuItem struct {
	ID      string
	Text    string
	SubMenu []PluginMenuItem

	// Filter, if set, decides whether the item is shown for a post.
	Filter func(postID string) bool
	Action func(postID string)
}

// MenuItem is one rendered entry of the menu.
type MenuItem struct {
	Kind ItemKind
	ID   string
	Key  string
	Text string
	Icon string

	// Detail is the secondary text of the visit marketplace tip.
	Detail string

	Binding *apps.Binding
	SubMenu []PluginMenuItem
	Action  func(postID string)
}

// TutorialTip is the localized tip shown on the menu button.
type TutorialTip struct {
	Title string
	Text  string
}

// Items returns the entries of the opened menu, in order: plugin items, app
// bindings, pluggables, then the marketplace for system admins. A menu with
// none of the first three only has the visit marketplace tip, and only for
// system admins. System messages have no menu.
func (m *Menu) Items() []MenuItem {
	post := m.props.Post
	if post == nil || post.IsSystemMessage() {
		return nil
	}
	loc := m.services.I18N.NewLocalizer(m.props.Locale)

	var pluginItems []MenuItem
	for _, pi := range m.props.PluginMenuItems {
		if pi.Filter != nil && !pi.Filter(post.Id) {
			continue
		}
		item := MenuItem{
			Kind:   ItemPlugin,
			ID:     pi.ID,
			Key:    pi.ID + "_pluginmenuitem",
			Text:   pi.Text,
			Action: pi.Action,
		}
		if len(pi.SubMenu) > 0 {
			item.Kind = ItemPluginSubMenu
			item.SubMenu = pi.SubMenu
		}
		pluginItems = append(pluginItems, item)
	}

	var bindingItems []MenuItem
	if m.props.AppsEnabled {
		bb, _ := m.Bindings()
		for i := range bb {
			b := bb[i]
			bindingItems = append(bindingItems, MenuItem{
				Kind:    ItemAppBinding,
				Key:     b.Key(),
				Text:    b.Label,
				Icon:    b.Icon,
				Binding: &b,
			})
		}
	}

	hasPluggables := m.props.PluggableCount > 0
	if len(pluginItems) == 0 && len(bindingItems) == 0 && !hasPluggables {
		if !m.props.IsSysAdmin {
			return nil
		}
		return []MenuItem{{
			Kind:   ItemVisitMarketplace,
			ID:     "marketPlaceButton",
			Key:    "visit-marketplace-permissions",
			Text:   m.services.I18N.LocalizeDefaultMessage(loc, msgVisitMarketplace),
			Detail: m.services.I18N.LocalizeDefaultMessage(loc, msgNoActions),
			Icon:   marketplaceIcon,
		}}
	}

	items := append(pluginItems, bindingItems...)
	if hasPluggables {
		items = append(items, MenuItem{
			Kind: ItemPluggable,
			Key:  PluggableComponent,
		})
	}
	if m.props.IsSysAdmin {
		items = append(items,
			MenuItem{
				Kind: ItemDivider,
				Key:  "divider",
			},
			MenuItem{
				Kind: ItemMarketplace,
				ID:   fmt.Sprintf("marketplace_icon_%s", post.Id),
				Key:  "marketplace",
				Text: m.services.I18N.LocalizeDefaultMessage(loc, msgMarketplace),
				Icon: marketplaceIcon,
			})
	}

	m.services.Log.Debugw("rendering post menu",
		"post_id", post.Id,
		"items", len(items),
		"show_tutorial_tip", m.props.ShowTutorialTip)
	return items
}

// ButtonID is the id of the menu's trigger button.
func (m *Menu) ButtonID() string {
	return fmt.Sprintf("%s_button_%s", m.props.Location, m.postID())
}

// DropdownID is the id of the menu's dropdown.
func (m *Menu) DropdownID() string {
	return fmt.Sprintf("%s_dropdown_%s", m.props.Location, m.postID())
}

// Tooltip and AriaLabel are the localized labels of the trigger button.
func (m *Menu) Tooltip() string {
	return m.services.I18N.LocalizeDefaultMessage(m.services.I18N.NewLocalizer(m.props.Locale), msgTooltipActions)
}

func (m *Menu) AriaLabel() string {
	return m.services.I18N.LocalizeDefaultMessage(m.services.I18N.NewLocalizer(m.props.Locale), msgMenuAriaLabel)
}

// TutorialTip returns the tip to show on the button, and false if the owner
// did not ask for it.
func (m *Menu) TutorialTip() (TutorialTip, bool) {
	if !m.props.ShowTutorialTip {
		return TutorialTip{}, false
	}
	loc := m.services.I18N.NewLocalizer(m.props.Locale)
	return TutorialTip{
		Title: m.services.I18N.LocalizeDefaultMessage(loc, msgTutorialTipTitle),
		Text:  m.services.I18N.LocalizeDefaultMessage(loc, msgTutorialTip),
	}, true
}

func (m *Menu) postID() string {
	if m.props.Post == nil {
		return ""
	}
	return m.props.Post.Id
}
