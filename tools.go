package eliqonline

import (
	"golang.org/x/oauth2"
)

// Tools holds the access token identifying the caller to the Eliq Online API.
// It is immutable after construction and safe for concurrent use.
type Tools struct {
	accessToken string
}

// Compile-time check to ensure Tools implements oauth2.TokenSource
var _ oauth2.TokenSource = (*Tools)(nil)

// NewTools creates Tools for the given access token. The token is stored
// verbatim; any string, including the empty string, is accepted.
func NewTools(accessToken string) *Tools {
	return &Tools{accessToken: accessToken}
}

// AccessToken returns the token exactly as passed to NewTools.
func (t *Tools) AccessToken() string {
	return t.accessToken
}

// Token returns the access token as a static, non-expiring oauth2.Token.
// Eliq tokens are long-lived and have no refresh token.
func (t *Tools) Token() (*oauth2.Token, error) {
	return &oauth2.Token{
		AccessToken: t.accessToken,
		// Zero Expiry means the token never expires
	}, nil
}
