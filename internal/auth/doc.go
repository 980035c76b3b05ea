// Package auth provides authentication middleware for vegliad.
//
// Middleware(mode, header, key) returns an http middleware that validates
// the API key sent in the named request header.
//
// When mode != "apikey" or key == "", all requests pass through (useful
// for local development with auth disabled). When the key is incorrect or
// absent, the middleware replies 401 immediately.
package auth
