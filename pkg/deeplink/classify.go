package deeplink

import (
	"net/url"
	"strings"
)

// Token markers recognized in inbound URLs. Their presence means the URL is
// the callback leg of an email sign-in and must be handed to the backend
// client's token-extraction path.
const (
	markerAccessToken  = "access_token"
	markerRefreshToken = "refresh_token"
)

// CarriesAuthTokens reports whether a URL carries authentication tokens in
// its query or fragment. The tokens themselves are never parsed here: the
// backend client owns token extraction, this package only classifies.
func CarriesAuthTokens(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if hasTokenParam(u.Query()) {
		return true
	}

	// Token callbacks commonly put credentials in the fragment so they never
	// reach server logs; the fragment is itself query-encoded.
	fragment, err := url.ParseQuery(strings.TrimPrefix(u.Fragment, "?"))
	if err != nil {
		return false
	}
	return hasTokenParam(fragment)
}

func hasTokenParam(values url.Values) bool {
	return values.Has(markerAccessToken) || values.Has(markerRefreshToken)
}
