// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package actionsmenu

const (
	// MenuBottomMargin is reserved below the viewport.
	MenuBottomMargin = 80

	// ChannelHeaderHeight is the fixed header above the post list.
	ChannelHeaderHeight = 85

	// PostAreaHeight is the estimated height of the opened menu.
	PostAreaHeight = 116
)

// Rect is the bounding box of the menu trigger button. Either coordinate may
// be unknown.
type Rect struct {
	Y   *float64
	Top *float64
}

// NewRect returns a Rect with both Y and Top set to y.
func NewRect(y float64) Rect {
	return Rect{Y: &y, Top: &y}
}

// VerticalPosition is Y, or Top if Y is unknown, or 0.
func (r Rect) VerticalPosition() float64 {
	switch {
	case r.Y != nil:
		return *r.Y
	case r.Top != nil:
		return *r.Top
	default:
		return 0
	}
}

// DecidePlacement returns true if the menu should open upward: when there is
// more room between the header and the trigger than below the estimated
// menu.
func DecidePlacement(trigger Rect, viewportHeight float64) bool {
	y := trigger.VerticalPosition()

	totalSpace := viewportHeight - MenuBottomMargin
	spaceAbove := y - ChannelHeaderHeight
	spaceBelow := totalSpace - (spaceAbove + PostAreaHeight)

	return spaceAbove > spaceBelow
}
