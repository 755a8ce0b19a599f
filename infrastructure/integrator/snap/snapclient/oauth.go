package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
)

const (
	clientIDRequired     = "The client ID is required"
	clientSecretRequired = "The client secret is required"
)

// AuthorizationURL monta a URL para onde o usuário é enviado para autorizar a aplicação
func (c *SnapClient) AuthorizationURL(state string) (string, error) {
	var v violations
	v.require(present(c.cfg.OAuth.ClientID), clientIDRequired)
	v.require(present(c.cfg.OAuth.RedirectURI), "The redirect URI is required")
	if err := v.err(); err != nil {
		return "", err
	}

	authURL, err := url.Parse(c.cfg.OAuth.AuthURL)
	if err != nil {
		return "", apiErrors.NewExecutionError(err)
	}

	query := authURL.Query()
	query.Set("client_id", c.cfg.OAuth.ClientID)
	query.Set("redirect_uri", c.cfg.OAuth.RedirectURI)
	query.Set("response_type", "code")
	if len(c.cfg.OAuth.Scopes) > 0 {
		query.Set("scope", strings.Join(c.cfg.OAuth.Scopes, " "))
	}
	if state != "" {
		query.Set("state", state)
	}
	authURL.RawQuery = query.Encode()

	return authURL.String(), nil
}

// ExchangeCode troca o código de autorização por um par access/refresh token
func (c *SnapClient) ExchangeCode(ctx context.Context, code string) (*snapdomain.TokenResponse, error) {
	var v violations
	v.require(present(code), "The code is required")
	c.requireClientCredentials(&v)
	if err := v.err(); err != nil {
		return nil, err
	}

	return c.requestToken(ctx, map[string]string{
		"grant_type":   "authorization_code",
		"code":         code,
		"redirect_uri": c.cfg.OAuth.RedirectURI,
	})
}

// RefreshAccessToken obtém um novo access token a partir do refresh token.
// O cliente não renova tokens sozinho; cabe ao chamador decidir quando renovar.
func (c *SnapClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*snapdomain.TokenResponse, error) {
	var v violations
	v.require(present(refreshToken), "The refresh token is required")
	c.requireClientCredentials(&v)
	if err := v.err(); err != nil {
		return nil, err
	}

	return c.requestToken(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	})
}

func (c *SnapClient) requireClientCredentials(v *violations) {
	v.require(present(c.cfg.OAuth.ClientID), clientIDRequired)
	v.require(present(c.cfg.OAuth.ClientSecret), clientSecretRequired)
}

func (c *SnapClient) requestToken(ctx context.Context, form map[string]string) (*snapdomain.TokenResponse, error) {
	ctx, _ = log.WithCorrelationID(ctx)

	form["client_id"] = c.cfg.OAuth.ClientID
	form["client_secret"] = c.cfg.OAuth.ClientSecret

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(form).
		Execute(http.MethodPost, c.cfg.OAuth.TokenURL)
	if err != nil {
		return nil, apiErrors.NewExecutionError(err)
	}

	if resp.StatusCode() >= http.StatusMultipleChoices {
		var oauthErr snapdomain.ErrorResponse
		if json.Unmarshal(resp.Body(), &oauthErr) == nil && oauthErr.Error != "" {
			c.logger.WithContext(ctx).Warnf("snap: token request rejected: %s %s", oauthErr.Error, oauthErr.ErrorDescription)
		}
		return nil, apiErrors.FromStatus(resp.StatusCode(), resp.Body())
	}

	var token snapdomain.TokenResponse
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return nil, apiErrors.NewExecutionError(fmt.Errorf("decoding token response: %w", err))
	}
	if token.AccessToken == "" {
		return nil, apiErrors.NewResponseError("The token returned by the API is empty")
	}

	c.logger.WithContext(ctx).Infof("snap: access token obtained, expires in %s", formatExpiry(token.ExpiresIn))
	return &token, nil
}

// formatExpiry formata a validade em segundos de forma legível
func formatExpiry(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	hours := duration / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	if hours > 0 {
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
