// Package deeplink classifies inbound application URLs and forwards the
// auth-bearing ones to the backend client's token-extraction path.
//
// This package deliberately does not parse tokens: duplicating an ad-hoc
// token parser client-side is how credentials leak. It only recognizes the
// access_token/refresh_token markers in a URL's query or fragment and hands
// the whole URL off. The resulting session arrives later as a regular
// session-changed event from the exchanger.
package deeplink
