// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

func IsValidHTTPURL(rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("URL schema must either be %q or %q", "http", "https")
	}

	if u.Host == "" {
		return errors.New("URL must contain a host")
	}

	return nil
}

// NormalizeSiteURL validates a Mattermost site URL and strips the trailing
// slashes.
func NormalizeSiteURL(siteURL string) (string, error) {
	if err := IsValidHTTPURL(siteURL); err != nil {
		return "", NewInvalidError("invalid site URL %q: %v", siteURL, err)
	}
	return strings.TrimRight(siteURL, "/"), nil
}
