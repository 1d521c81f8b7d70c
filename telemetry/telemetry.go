// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package telemetry

//go:generate mockgen -destination=../mocks/mock_telemetry/mock_tracker.go -package=mock_telemetry github.com/mattermost/mattermost-apps-actions/telemetry Tracker

// Tracker is the telemetry sink, e.g. the Rudder client of the webapp.
type Tracker interface {
	TrackEvent(event string, properties map[string]interface{}) error
	TrackUserEvent(event string, userID string, properties map[string]interface{}) error
}

const (
	CategoryRequestBusinessEmail = "request_business_email"
	CategoryPricing              = "pricing"
)

// Telemetry reports user actions. A nil *Telemetry is valid and reports
// nothing.
type Telemetry struct {
	tracker Tracker
}

func NewTelemetry(tracker Tracker) *Telemetry {
	return &Telemetry{
		tracker: tracker,
	}
}

func (t *Telemetry) TrackCall(appID string, location string, actingUserID string) {
	if t == nil || t.tracker == nil {
		return
	}

	_ = t.tracker.TrackUserEvent("call", actingUserID, map[string]interface{}{
		"appID":    appID,
		"location": location,
	})
}

func (t *Telemetry) TrackOpenMarketplace(actingUserID string) {
	if t == nil || t.tracker == nil {
		return
	}

	_ = t.tracker.TrackUserEvent("open_marketplace", actingUserID, map[string]interface{}{
		"location": "post_menu",
	})
}

// TrackCategoryEvent reports a webapp-style categorized event.
func (t *Telemetry) TrackCategoryEvent(category, event string) {
	if t == nil || t.tracker == nil {
		return
	}

	_ = t.tracker.TrackEvent(event, map[string]interface{}{
		"category": category,
	})
}
