// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package path

// Paths for the REST APIs exposed by the Apps Plugin itself

const (
	// PluginName is the ID of the Apps plugin, its routes are served under
	// {SiteURL}/plugins/{PluginName}.
	PluginName = "com.mattermost.apps"

	// API paths: {PluginURL}/api/v1/...
	API = "/api/v1"

	// User-agent ping
	Ping = "/ping"

	// Bindings for the user agent's current context.
	Bindings = "/bindings"

	// Invoke.
	Call = "/call"
)

// Mattermost REST API paths: {SiteURL}/api/v4/...
const (
	MattermostAPI = "/api/v4"

	ValidateBusinessEmail = "/cloud/validate-business-email"
)
