package snapclient

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/snapchat-marketing-api/internal/snaptest"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
)

func tokenRoute(handler http.Handler) snaptest.Route {
	return snaptest.Route{
		Path:    snaptest.TokenPath,
		Method:  http.MethodPost,
		Handler: handler,
		Public:  true,
	}
}

func TestAuthorizationURL(t *testing.T) {
	_, client := newTestClient(t)

	raw, err := client.AuthorizationURL("xyz")
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/login/oauth2/authorize", parsed.Path)
	assert.Equal(t, "client-id", parsed.Query().Get("client_id"))
	assert.Equal(t, "https://example.com/callback", parsed.Query().Get("redirect_uri"))
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, "snapchat-marketing-api", parsed.Query().Get("scope"))
	assert.Equal(t, "xyz", parsed.Query().Get("state"))

	client.cfg.OAuth.ClientID = ""
	client.cfg.OAuth.RedirectURI = ""
	_, err = client.AuthorizationURL("")
	assertArgumentError(t, err, "The client ID is required", "The redirect URI is required")
}

func TestRefreshAccessToken(t *testing.T) {
	srv, client := newTestClient(t, tokenRoute(snaptest.JSON(http.StatusOK, map[string]any{
		"access_token":  "new-access",
		"refresh_token": "new-refresh",
		"token_type":    "Bearer",
		"expires_in":    1800,
		"scope":         "snapchat-marketing-api",
	})))

	token, err := client.RefreshAccessToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", token.AccessToken)
	assert.Equal(t, "new-refresh", token.RefreshToken)
	assert.EqualValues(t, 1800, token.ExpiresIn)

	hit := srv.Last()
	assert.Equal(t, "refresh_token", hit.Form["grant_type"])
	assert.Equal(t, "old-refresh", hit.Form["refresh_token"])
	assert.Equal(t, "client-id", hit.Form["client_id"])
	assert.Equal(t, "client-secret", hit.Form["client_secret"])
	assert.Empty(t, hit.Header.Get("Authorization"))
}

func TestExchangeCode(t *testing.T) {
	srv, client := newTestClient(t, tokenRoute(snaptest.JSON(http.StatusOK, map[string]any{
		"access_token": "access",
		"expires_in":   1800,
	})))

	token, err := client.ExchangeCode(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "access", token.AccessToken)

	hit := srv.Last()
	assert.Equal(t, "authorization_code", hit.Form["grant_type"])
	assert.Equal(t, "auth-code", hit.Form["code"])
	assert.Equal(t, "https://example.com/callback", hit.Form["redirect_uri"])
}

func TestTokenRequestFailures(t *testing.T) {
	srv, client := newTestClient(t, tokenRoute(snaptest.JSON(http.StatusBadRequest, map[string]any{
		"error":             "invalid_grant",
		"error_description": "Invalid refresh token",
	})))

	_, err := client.RefreshAccessToken(context.Background(), "expired")
	require.Error(t, err)
	assert.True(t, apiErrors.IsResponse(err))
	assert.Equal(t, "Bad Request", err.Error())
	assert.Equal(t, 1, srv.Count())

	client.cfg.OAuth.ClientSecret = ""
	_, err = client.RefreshAccessToken(context.Background(), "")
	assertArgumentError(t, err, "The refresh token is required", "The client secret is required")

	_, err = client.ExchangeCode(context.Background(), "")
	assertArgumentError(t, err, "The code is required", "The client secret is required")
	assert.Equal(t, 1, srv.Count())
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "30m", formatExpiry(1800))
	assert.Equal(t, "1h30m", formatExpiry(5400))
}
