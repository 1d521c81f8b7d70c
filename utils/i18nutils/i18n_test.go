// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package i18nutils_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-apps-actions/utils/i18nutils"
)

var unknownType = &i18n.Message{
	ID:    "apps.error.responses.unknown_type",
	Other: "App response type not supported. Response type: {{.Type}}.",
}

func TestLocalize(t *testing.T) {
	b, err := i18nutils.NewBundle()
	require.NoError(t, err)

	for _, tc := range []struct {
		locale   string
		expected string
	}{
		{"", "App response type not supported. Response type: WEIRD."},
		{"en", "App response type not supported. Response type: WEIRD."},
		{"es", "Tipo de respuesta de la App no soportado. Tipo de respuesta: WEIRD."},
		{"fr", "App response type not supported. Response type: WEIRD."},
	} {
		t.Run(tc.locale, func(t *testing.T) {
			out := b.LocalizeWithConfig(b.NewLocalizer(tc.locale), &i18n.LocalizeConfig{
				DefaultMessage: unknownType,
				TemplateData:   map[string]string{"Type": "WEIRD"},
			})
			require.Equal(t, tc.expected, out)
		})
	}
}

func TestLocalizeDefaultMessage(t *testing.T) {
	b := i18nutils.MustNewBundle()

	out := b.LocalizeDefaultMessage(nil, &i18n.Message{
		ID:    "apps.error.unknown",
		Other: "ignored default",
	})
	require.Equal(t, "Unknown error occurred.", out)

	out = b.LocalizeDefaultMessage(b.NewLocalizer("es"), &i18n.Message{
		ID:    "not.translated.anywhere",
		Other: "Only the default",
	})
	require.Equal(t, "Only the default", out)
}
