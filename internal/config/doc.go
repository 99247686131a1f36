// Package config handles loading and parsing docket configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/docket/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. A .env file in the working directory is loaded before the
//     environment is consulted
//  5. COURTLISTENER_API_TOKEN in the environment beats api_token
//     from the file
//
// # TOML Format
//
// Example config.toml:
//
//	api_token = "your-courtlistener-token"
//	api_base = "https://www.courtlistener.com/api/rest/v4"
//	page_size = 10
//
// All fields are optional. Tilde expansion is performed automatically on
// the config path.
//
// # Credentials
//
// Load itself never fails on a missing token, because some commands
// (--list-courts, --help) need no network access. Front-ends call
// Config.RequireToken before constructing an API client, so credential
// problems surface as a configuration error before any request is made.
//
// The config package is read-only and stateless: configuration is loaded
// once at startup and the resulting Config struct is immutable.
package config
