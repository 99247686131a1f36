// Package courtlistener provides a typed HTTP client for the CourtListener
// REST API (v4).
//
// The package is split across four files:
//
//   - query.go: SearchQuery construction and parameter encoding
//   - client.go: HTTP client, request handling, court name resolution
//   - types.go: data structures mirroring the API response schema
//   - errors.go: the error taxonomy callers branch on with errors.As
//
// All requests are single synchronous GETs with a fixed timeout. Only the
// first page of results is ever requested; pagination, retries, and
// rate-limit handling are deliberately out of scope.
package courtlistener
