// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

// Package modal describes modals opened by the post menu and the cloud
// flows. Stacking and rendering are the job of the modal Service.
package modal

import (
	"context"
	"sync"
)

// Identifier names a modal in the modal stack.
type Identifier string

const (
	PluginMarketplace    Identifier = "plugin_marketplace"
	PricingModal         Identifier = "pricing_modal"
	CloudLimits          Identifier = "cloud_limits"
	RequestBusinessEmail Identifier = "request_business_email_modal"
)

// Descriptor is what is needed to open a modal, Props are passed to the
// dialog.
type Descriptor struct {
	ID    Identifier
	Props map[string]interface{}
}

// Service opens and closes modals. Open returns true if the modal was shown.
type Service interface {
	Open(ctx context.Context, d Descriptor) (bool, error)
	Close(id Identifier)
}

// Stack is an in-memory Service that keeps the open modals in order.
type Stack struct {
	mu   sync.Mutex
	open []Descriptor
}

var _ Service = (*Stack)(nil)

func NewStack() *Stack {
	return &Stack{}
}

// Open pushes d on the stack. A modal that is already open is not opened
// again.
func (s *Stack) Open(_ context.Context, d Descriptor) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.open {
		if o.ID == d.ID {
			return false, nil
		}
	}
	s.open = append(s.open, d)
	return true, nil
}

func (s *Stack) Close(id Identifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.open {
		if o.ID == id {
			s.open = append(s.open[:i], s.open[i+1:]...)
			return
		}
	}
}

// Top returns the most recently opened modal.
func (s *Stack) Top() (Descriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.open) == 0 {
		return Descriptor{}, false
	}
	return s.open[len(s.open)-1], true
}

func (s *Stack) IsOpen(id Identifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.open {
		if o.ID == id {
			return true
		}
	}
	return false
}
