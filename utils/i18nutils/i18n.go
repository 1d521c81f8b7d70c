// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package i18nutils

import (
	"embed"
	"encoding/json"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const translationsDir = "translations"

//go:embed translations
var translations embed.FS

// Bundle wraps an i18n.Bundle loaded with the embedded translations.
type Bundle struct {
	*i18n.Bundle
}

// NewBundle loads all embedded translation files, json or yaml, with
// English as the default language.
func NewBundle() (*Bundle, error) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := translations.ReadDir(translationsDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list translations")
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := path.Join(translationsDir, e.Name())
		data, err := translations.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		_, err = b.ParseMessageFileBytes(data, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", name)
		}
	}
	return &Bundle{Bundle: b}, nil
}

func MustNewBundle() *Bundle {
	b, err := NewBundle()
	if err != nil {
		panic(err.Error())
	}
	return b
}

// NewLocalizer returns a Localizer for the user's locale, an empty locale
// selects the default language.
func (b *Bundle) NewLocalizer(locale string) *i18n.Localizer {
	if locale == "" {
		return i18n.NewLocalizer(b.Bundle)
	}
	return i18n.NewLocalizer(b.Bundle, locale)
}

func (b *Bundle) LocalizeDefaultMessage(l *i18n.Localizer, m *i18n.Message) string {
	return b.LocalizeWithConfig(l, &i18n.LocalizeConfig{
		DefaultMessage: m,
	})
}

// LocalizeWithConfig never fails: if the message can not be localized the
// untranslated default message is returned.
func (b *Bundle) LocalizeWithConfig(l *i18n.Localizer, lc *i18n.LocalizeConfig) string {
	if l == nil {
		l = b.NewLocalizer("")
	}
	s, err := l.Localize(lc)
	if err != nil && s == "" && lc.DefaultMessage != nil {
		return lc.DefaultMessage.Other
	}
	return s
}
