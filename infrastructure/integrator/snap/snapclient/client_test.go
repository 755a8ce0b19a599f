package snapclient

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
	"github.com/vfg2006/snapchat-marketing-api/internal/snaptest"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
)

const token = "meowmeowmeow"

func newTestClient(t *testing.T, routes ...snaptest.Route) (*snaptest.Server, *SnapClient) {
	t.Helper()

	srv := snaptest.New(t, routes...)
	client := newSnapClient(srv.Config(t), WithLogger(log.Discard()))
	return srv, client
}

func fixture(t *testing.T, name string) string {
	t.Helper()

	content, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(content)
}

func TestGetSpecificAd(t *testing.T) {
	srv, client := newTestClient(t, snaptest.Route{
		Path:    "/v1/ads/:id",
		Method:  http.MethodGet,
		Handler: snaptest.Raw(http.StatusOK, fixture(t, "ad.json")),
	})

	ad, err := client.GetSpecificAd(context.Background(), token, "e8d6217f-32ab-400f-9e54-39a86a7963e4")
	require.NoError(t, err)

	assert.Equal(t, "e8d6217f-32ab-400f-9e54-39a86a7963e4", ad.ID)
	assert.Equal(t, "Ad One", ad.Name)
	assert.Equal(t, snapdomain.AdStatusActive, ad.Status)
	assert.Equal(t, "23995202-bfbc-45a0-9702-dd6841af52fe", ad.AdSquadID)
	require.NotNil(t, ad.CreatedAt)
	assert.Equal(t, 2016, ad.CreatedAt.Year())

	hit := srv.Last()
	assert.Equal(t, "/v1/ads/e8d6217f-32ab-400f-9e54-39a86a7963e4", hit.Path)
	assert.Equal(t, "Bearer "+token, hit.Header.Get("Authorization"))
	assert.Equal(t, "application/json", hit.Header.Get("Accept"))
}

func TestStatusCodesAreTranslated(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "Bad Request"},
		{http.StatusUnauthorized, "Unauthorized - Check your API key"},
		{http.StatusForbidden, "Access Forbidden"},
		{http.StatusNotFound, "Not Found"},
		{http.StatusMethodNotAllowed, "Method Not Allowed"},
		{http.StatusNotAcceptable, "Not Acceptable"},
		{http.StatusGone, "Gone"},
		{http.StatusTeapot, "I'm a teapot"},
		{http.StatusTooManyRequests, "Too Many Requests / Rate limit reached"},
		{http.StatusInternalServerError, "Internal Server Error"},
		{http.StatusServiceUnavailable, "Service Unavailable"},
		{http.StatusFound, "Error 302"},
		{http.StatusBadGateway, "Error 502"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, client := newTestClient(t, snaptest.Route{
				Path:    "/v1/campaigns/:id",
				Method:  http.MethodGet,
				Handler: snaptest.Status(tt.status),
			})

			_, err := client.GetSpecificCampaign(context.Background(), token, "campaign-1")
			require.Error(t, err)
			assert.True(t, apiErrors.IsResponse(err))
			assert.Equal(t, tt.want, err.Error())

			var apiErr *apiErrors.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestMissingTokenNeverReachesServer(t *testing.T) {
	srv, client := newTestClient(t)
	ctx := context.Background()

	calls := map[string]func(string) error{
		"GetAllOrganizations": func(tk string) error {
			_, err := client.GetAllOrganizations(ctx, tk, true)
			return err
		},
		"GetSpecificOrganization": func(tk string) error {
			_, err := client.GetSpecificOrganization(ctx, tk, "org")
			return err
		},
		"GetAllFundingSources": func(tk string) error {
			_, err := client.GetAllFundingSources(ctx, tk, "org")
			return err
		},
		"GetAllBillingCenters": func(tk string) error {
			_, err := client.GetAllBillingCenters(ctx, tk, "org")
			return err
		},
		"GetAllMembers": func(tk string) error {
			_, err := client.GetAllMembers(ctx, tk, "org")
			return err
		},
		"GetAllAdAccounts": func(tk string) error {
			_, err := client.GetAllAdAccounts(ctx, tk, "org")
			return err
		},
		"UpdateAdAccount": func(tk string) error {
			_, err := client.UpdateAdAccount(ctx, tk, &snapdomain.AdAccount{})
			return err
		},
		"CreateCampaign": func(tk string) error {
			_, err := client.CreateCampaign(ctx, tk, &snapdomain.Campaign{})
			return err
		},
		"DeleteCampaign": func(tk string) error {
			err := client.DeleteCampaign(ctx, tk, "campaign")
			return err
		},
		"CreateAdSquad": func(tk string) error {
			_, err := client.CreateAdSquad(ctx, tk, &snapdomain.AdSquad{})
			return err
		},
		"GetAllAdSquadsFromCampaign": func(tk string) error {
			_, err := client.GetAllAdSquadsFromCampaign(ctx, tk, "campaign")
			return err
		},
		"CreateAd": func(tk string) error {
			_, err := client.CreateAd(ctx, tk, &snapdomain.Ad{})
			return err
		},
		"GetSpecificAd": func(tk string) error {
			_, err := client.GetSpecificAd(ctx, tk, "ad")
			return err
		},
		"DeleteAd": func(tk string) error {
			err := client.DeleteAd(ctx, tk, "ad")
			return err
		},
		"CreateCreative": func(tk string) error {
			_, err := client.CreateCreative(ctx, tk, &snapdomain.Creative{})
			return err
		},
		"CreateMedia": func(tk string) error {
			_, err := client.CreateMedia(ctx, tk, &snapdomain.Media{})
			return err
		},
		"GetMediaPreview": func(tk string) error {
			_, err := client.GetMediaPreview(ctx, tk, "media")
			return err
		},
		"UploadMediaVideo": func(tk string) error {
			_, err := client.UploadMediaVideo(ctx, tk, "media", "video.mp4")
			return err
		},
		"UploadMediaImage": func(tk string) error {
			_, err := client.UploadMediaImage(ctx, tk, "media", "image.png")
			return err
		},
		"UploadLargeMedia": func(tk string) error {
			_, err := client.UploadLargeMedia(ctx, tk, "media", "video.mp4", []string{"part1"})
			return err
		},
		"GetPixelFromAdAccount": func(tk string) error {
			_, err := client.GetPixelFromAdAccount(ctx, tk, "account")
			return err
		},
		"UpdatePixel": func(tk string) error {
			_, err := client.UpdatePixel(ctx, tk, &snapdomain.Pixel{})
			return err
		},
		"GetAuditLogs": func(tk string) error {
			_, err := client.GetAuditLogs(ctx, tk, snapdomain.AuditEntityCampaign, "campaign")
			return err
		},
	}

	for name, call := range calls {
		for _, tk := range []string{"", "   "} {
			err := call(tk)
			require.Error(t, err, name)
			assert.True(t, apiErrors.IsAuthentication(err), name)
			assert.Equal(t, "The OAuthAccessToken is required", err.Error(), name)
		}
	}

	assert.Zero(t, srv.Count())
}

func TestEnvelopeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "display message",
			body: `{"request_status":"ERROR","request_id":"1","debug_message":"debug","display_message":"Campaign is archived"}`,
			want: "Campaign is archived",
		},
		{
			name: "debug message",
			body: `{"request_status":"error","request_id":"1","debug_message":"Invalid campaign id"}`,
			want: "Invalid campaign id",
		},
		{
			name: "no message",
			body: `{"request_status":"ERROR","request_id":"1"}`,
			want: "Request failed",
		},
		{
			name: "empty list",
			body: `{"request_status":"SUCCESS","request_id":"1","campaigns":[]}`,
			want: "No campaign found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestClient(t, snaptest.Route{
				Path:    "/v1/campaigns/:id",
				Method:  http.MethodGet,
				Handler: snaptest.Raw(http.StatusOK, tt.body),
			})

			_, err := client.GetSpecificCampaign(context.Background(), token, "campaign-1")
			require.Error(t, err)
			assert.True(t, apiErrors.IsResponse(err))
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestEmptyBodyIsNotAnError(t *testing.T) {
	_, client := newTestClient(t,
		snaptest.Route{Path: "/v1/campaigns/:id", Method: http.MethodGet, Handler: snaptest.Status(http.StatusOK)},
		snaptest.Route{Path: "/v1/campaigns/:id", Method: http.MethodDelete, Handler: snaptest.Status(http.StatusNoContent)},
	)

	campaign, err := client.GetSpecificCampaign(context.Background(), token, "campaign-1")
	assert.NoError(t, err)
	assert.Nil(t, campaign)

	assert.NoError(t, client.DeleteCampaign(context.Background(), token, "campaign-1"))
}

func TestMalformedBodyIsExecutionError(t *testing.T) {
	_, client := newTestClient(t, snaptest.Route{
		Path:    "/v1/campaigns/:id",
		Method:  http.MethodGet,
		Handler: snaptest.Raw(http.StatusOK, `{"request_status": "SUCCESS", "campaigns": [`),
	})

	_, err := client.GetSpecificCampaign(context.Background(), token, "campaign-1")
	require.Error(t, err)
	assert.True(t, apiErrors.IsExecution(err))
}

func TestUnreachableServerIsExecutionError(t *testing.T) {
	srv, client := newTestClient(t)
	srv.Close()

	_, err := client.GetSpecificAd(context.Background(), token, "ad-1")
	require.Error(t, err)
	assert.True(t, apiErrors.IsExecution(err))
	assert.NotEmpty(t, err.Error())
}

func TestListFollowsNextLink(t *testing.T) {
	var srv *snaptest.Server
	srv, client := newTestClient(t, snaptest.Route{
		Path:   "/v1/adaccounts/:id/campaigns",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("cursor") {
			case "":
				next := srv.URL + r.URL.Path + "?cursor=2"
				snaptest.JSON(http.StatusOK, snaptest.Page(next, "campaigns", "campaign",
					map[string]any{"id": "c1", "name": "First"},
					map[string]any{"id": "c2", "name": "Second"},
				)).ServeHTTP(w, r)
			case "2":
				next := srv.URL + r.URL.Path + "?cursor=3"
				snaptest.JSON(http.StatusOK, snaptest.Page(next, "campaigns", "campaign",
					map[string]any{"id": "c3", "name": "Third"},
				)).ServeHTTP(w, r)
			default:
				snaptest.JSON(http.StatusOK, snaptest.Page("", "campaigns", "campaign")).ServeHTTP(w, r)
			}
		}),
	})
	client.cfg.Snap.PageSize = 50

	campaigns, err := client.GetAllCampaigns(context.Background(), token, "account-1")
	require.NoError(t, err)

	require.Len(t, campaigns, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"}, []string{campaigns[0].ID, campaigns[1].ID, campaigns[2].ID})

	hits := srv.Hits()
	require.Len(t, hits, 3)
	assert.Equal(t, "50", hits[0].Query["limit"])
	assert.Equal(t, "2", hits[1].Query["cursor"])
	assert.Equal(t, "3", hits[2].Query["cursor"])

	// todas as páginas compartilham o mesmo correlation id
	assert.Equal(t, hits[0].Header.Get("X-Correlation-ID"), hits[2].Header.Get("X-Correlation-ID"))
}

func TestListStopsOnNextLinkCycle(t *testing.T) {
	var srv *snaptest.Server
	srv, client := newTestClient(t, snaptest.Route{
		Path:   "/v1/adaccounts/:id/campaigns",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next := srv.URL + r.URL.Path + "?cursor=b"
			if r.URL.Query().Get("cursor") == "b" {
				next = srv.URL + r.URL.Path + "?cursor=a"
			}
			snaptest.JSON(http.StatusOK, snaptest.Page(next, "campaigns", "campaign",
				map[string]any{"id": "c-" + r.URL.Query().Get("cursor")},
			)).ServeHTTP(w, r)
		}),
	})

	campaigns, err := client.GetAllCampaigns(context.Background(), token, "account-1")
	require.NoError(t, err)

	// primeira página, cursor=b, cursor=a; o próximo link (cursor=b) já foi visitado
	assert.Equal(t, 3, srv.Count())
	require.Len(t, campaigns, 3)
	assert.Equal(t, "c-a", campaigns[2].ID)
}

func TestListRejectsNextLinkToAnotherHost(t *testing.T) {
	srv, client := newTestClient(t, snaptest.Route{
		Path:   "/v1/adaccounts/:id/campaigns",
		Method: http.MethodGet,
		Handler: snaptest.JSON(http.StatusOK, snaptest.Page("https://attacker.example.net/v1/steal", "campaigns", "campaign",
			map[string]any{"id": "c1"},
		)),
	})

	_, err := client.GetAllCampaigns(context.Background(), token, "account-1")
	require.Error(t, err)

	assert.True(t, apiErrors.IsExecution(err))
	assert.Equal(t, 1, srv.Count())
}

func TestListFollowsRelativeNextLink(t *testing.T) {
	srv, client := newTestClient(t, snaptest.Route{
		Path:   "/v1/adaccounts/:id/campaigns",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next := ""
			if r.URL.Query().Get("cursor") == "" {
				next = r.URL.Path + "?cursor=2"
			}
			snaptest.JSON(http.StatusOK, snaptest.Page(next, "campaigns", "campaign",
				map[string]any{"id": "c-" + r.URL.Query().Get("cursor")},
			)).ServeHTTP(w, r)
		}),
	})

	campaigns, err := client.GetAllCampaigns(context.Background(), token, "account-1")
	require.NoError(t, err)

	require.Len(t, campaigns, 2)
	assert.Equal(t, "2", srv.Last().Query["cursor"])
}

func TestUnknownEndpointIsConfigError(t *testing.T) {
	srv, client := newTestClient(t)
	delete(client.cfg.Endpoints, config.OpAdsGet)

	_, err := client.GetSpecificAd(context.Background(), token, "ad-1")
	require.Error(t, err)

	_, isKind := apiErrors.KindOf(err)
	assert.False(t, isKind)
	assert.True(t, errors.Is(err, config.ErrEndpointNotConfigured))
	assert.Zero(t, srv.Count())
}

func TestUnresolvedPlaceholderIsConfigError(t *testing.T) {
	srv, client := newTestClient(t)
	client.cfg.Endpoints[config.OpAdsGet] = "/ads/{ad_id}/{version}"

	_, err := client.GetSpecificAd(context.Background(), token, "ad-1")
	require.Error(t, err)

	_, isKind := apiErrors.KindOf(err)
	assert.False(t, isKind)
	assert.True(t, errors.Is(err, config.ErrMissingPathParam))
	assert.Zero(t, srv.Count())
}

func TestGetAllOrganizationsWithAdAccounts(t *testing.T) {
	srv, client := newTestClient(t, snaptest.Route{
		Path:   "/v1/me/organizations",
		Method: http.MethodGet,
		Handler: snaptest.JSON(http.StatusOK, snaptest.Envelope("organizations", "organization",
			map[string]any{
				"id":   "org-1",
				"name": "Hooli",
				"ad_accounts": []map[string]any{
					{"id": "acc-1", "name": "Hooli Ads", "type": "PARTNER"},
				},
			},
		)),
	})

	organizations, err := client.GetAllOrganizations(context.Background(), token, true)
	require.NoError(t, err)

	require.Len(t, organizations, 1)
	require.Len(t, organizations[0].AdAccounts, 1)
	assert.Equal(t, snapdomain.AdAccountTypePartner, organizations[0].AdAccounts[0].Type)
	assert.Equal(t, "true", srv.Last().Query["with_ad_accounts"])
}

func TestEndpointOverride(t *testing.T) {
	srv, client := newTestClient(t, snaptest.Route{
		Path:    "/v1/custom/ads/:id",
		Method:  http.MethodGet,
		Handler: snaptest.Raw(http.StatusOK, fixture(t, "ad.json")),
	})
	client.cfg.Endpoints[config.OpAdsGet] = "/custom/ads/{ad_id}"

	_, err := client.GetSpecificAd(context.Background(), token, "ad-1")
	require.NoError(t, err)
	assert.Equal(t, "/v1/custom/ads/ad-1", srv.Last().Path)
}
