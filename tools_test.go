package eliqonline_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/florianilch/eliqonline"
)

func TestToolsAccessToken(t *testing.T) {
	tokens := []string{
		"",
		"a1b2c3d4e5f6",
		"  padded token\n",
		"ünïcödé/+=&?",
	}

	for _, token := range tokens {
		tools := eliqonline.NewTools(token)
		require.Equal(t, token, tools.AccessToken())
		// Repeated reads never change the value
		require.Equal(t, tools.AccessToken(), tools.AccessToken())
	}
}

func TestToolsTokenSource(t *testing.T) {
	tools := eliqonline.NewTools("secret-token")

	tok, err := tools.Token()
	require.NoError(t, err)
	require.Equal(t, "secret-token", tok.AccessToken)
	require.Empty(t, tok.RefreshToken)
	require.True(t, tok.Valid())
	require.True(t, tok.Expiry.IsZero())
}

func TestToolsWithOAuth2Transport(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	client := &http.Client{
		Transport: &oauth2.Transport{Source: eliqonline.NewTools("secret-token")},
	}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Equal(t, "Bearer secret-token", gotAuth)
}
