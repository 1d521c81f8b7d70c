// Copyright (c) 2022-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

// Package pricing has the starter plan disclaimer of the pricing modal, and
// the limits modal it opens.
package pricing

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-apps-actions/modal"
	"github.com/mattermost/mattermost-apps-actions/telemetry"
	"github.com/mattermost/mattermost-apps-actions/utils/i18nutils"
)

const (
	StarterMessagesLimit    = 10000
	StarterFileStorageLimit = 10 // GB
	StarterBoardsViewLimit  = 500
	StarterBoardCardsLimit  = 500
	StarterIntegrationLimit = 5

	StarterPlanName = "Cloud starter"

	Gigabyte = 1024 * 1024 * 1024
)

var (
	msgDisclaimer = &i18n.Message{
		ID:    "pricing_modal.planDisclaimer.starter",
		Other: "This plan has data restrictions.",
	}
	msgLimitsTitle = &i18n.Message{
		ID:    "workspace_limits.modals.informational.title",
		Other: "{{.PlanName}} limits",
	}
	msgStarterLimits = &i18n.Message{
		ID:    "workspace_limits.modals.informational.description.starterLimits",
		Other: "Cloud starter is restricted to {{.Messages}} message history, {{.Storage}}GB file storage, {{.Integrations}} apps, and {{.Boards}} board cards.",
	}
	msgViewPlans = &i18n.Message{
		ID:    "workspace_limits.modals.view_plans",
		Other: "View plans",
	}
	msgClose = &i18n.Message{
		ID:    "workspace_limits.modals.close",
		Other: "Close",
	}
)

// Limits are the usage limits of a plan.
type Limits struct {
	MessagesHistory    int64 `json:"messages_history"`
	FilesTotalStorage  int64 `json:"files_total_storage"`
	BoardsCards        int64 `json:"boards_cards"`
	BoardsViews        int64 `json:"boards_views"`
	IntegrationsEnable int64 `json:"integrations_enabled"`
}

var StarterLimits = Limits{
	MessagesHistory:    StarterMessagesLimit,
	FilesTotalStorage:  StarterFileStorageLimit * Gigabyte,
	BoardsCards:        StarterBoardCardsLimit,
	BoardsViews:        StarterBoardsViewLimit,
	IntegrationsEnable: StarterIntegrationLimit,
}

// Disclaimer is shown under the starter plan in the pricing modal.
type Disclaimer struct {
	Icon string
	Text string
}

// LimitsModal is the content of the limits modal.
type LimitsModal struct {
	Title           string
	Description     string
	PrimaryAction   string
	SecondaryAction string
	OwnLimits       Limits
	NeedsTheme      bool
}

// StarterDisclaimer opens and closes the pricing and limits modals.
type StarterDisclaimer struct {
	modals    modal.Service
	i18n      *i18nutils.Bundle
	localizer *i18n.Localizer
	telemetry *telemetry.Telemetry
}

func NewStarterDisclaimer(modals modal.Service, bundle *i18nutils.Bundle, locale string, t *telemetry.Telemetry) *StarterDisclaimer {
	if bundle == nil {
		bundle = i18nutils.MustNewBundle()
	}
	return &StarterDisclaimer{
		modals:    modals,
		i18n:      bundle,
		localizer: bundle.NewLocalizer(locale),
		telemetry: t,
	}
}

func (d *StarterDisclaimer) Disclaimer() Disclaimer {
	return Disclaimer{
		Icon: "icon-alert-outline",
		Text: d.i18n.LocalizeDefaultMessage(d.localizer, msgDisclaimer),
	}
}

// LimitsModal returns the localized content of the starter limits modal.
func (d *StarterDisclaimer) LimitsModal() LimitsModal {
	return LimitsModal{
		Title: d.i18n.LocalizeWithConfig(d.localizer, &i18n.LocalizeConfig{
			DefaultMessage: msgLimitsTitle,
			TemplateData: map[string]interface{}{
				"PlanName": StarterPlanName,
			},
		}),
		Description: d.i18n.LocalizeWithConfig(d.localizer, &i18n.LocalizeConfig{
			DefaultMessage: msgStarterLimits,
			TemplateData: map[string]interface{}{
				"Messages":     StarterMessagesLimit,
				"Storage":      StarterFileStorageLimit,
				"Integrations": StarterIntegrationLimit,
				"Boards":       StarterBoardCardsLimit,
			},
		}),
		PrimaryAction:   d.i18n.LocalizeDefaultMessage(d.localizer, msgViewPlans),
		SecondaryAction: d.i18n.LocalizeDefaultMessage(d.localizer, msgClose),
		OwnLimits:       StarterLimits,
		NeedsTheme:      true,
	}
}

// OpenLimits replaces the pricing modal with the limits modal.
func (d *StarterDisclaimer) OpenLimits(ctx context.Context) error {
	d.modals.Close(modal.PricingModal)
	_, err := d.modals.Open(ctx, modal.Descriptor{
		ID: modal.CloudLimits,
		Props: map[string]interface{}{
			"limits_modal": d.LimitsModal(),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to open the limits modal")
	}
	d.telemetry.TrackCategoryEvent(telemetry.CategoryPricing, "click_starter_disclaimer")
	return nil
}

// ViewPlans replaces the limits modal with the pricing modal.
func (d *StarterDisclaimer) ViewPlans(ctx context.Context) error {
	d.modals.Close(modal.CloudLimits)
	_, err := d.modals.Open(ctx, modal.Descriptor{
		ID: modal.PricingModal,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open the pricing modal")
	}
	return nil
}

// CloseLimits is the secondary action of the limits modal.
func (d *StarterDisclaimer) CloseLimits() {
	d.modals.Close(modal.CloudLimits)
}
