package snapclient

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
	"github.com/vfg2006/snapchat-marketing-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAllOrganizations(ctx context.Context, oauthAccessToken string, withAdAccounts bool) ([]snapdomain.Organization, error)
	GetSpecificOrganization(ctx context.Context, oauthAccessToken, organizationID string) (*snapdomain.Organization, error)

	GetAllFundingSources(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.FundingSource, error)
	GetSpecificFundingSource(ctx context.Context, oauthAccessToken, fundingSourceID string) (*snapdomain.FundingSource, error)
	GetAllBillingCenters(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.BillingCenter, error)
	GetSpecificBillingCenter(ctx context.Context, oauthAccessToken, billingCenterID string) (*snapdomain.BillingCenter, error)
	GetAllMembers(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.Member, error)

	GetAllAdAccounts(ctx context.Context, oauthAccessToken, organizationID string) ([]snapdomain.AdAccount, error)
	GetSpecificAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) (*snapdomain.AdAccount, error)
	UpdateAdAccount(ctx context.Context, oauthAccessToken string, adAccount *snapdomain.AdAccount) (*snapdomain.AdAccount, error)

	CreateCampaign(ctx context.Context, oauthAccessToken string, campaign *snapdomain.Campaign) (*snapdomain.Campaign, error)
	UpdateCampaign(ctx context.Context, oauthAccessToken string, campaign *snapdomain.Campaign) (*snapdomain.Campaign, error)
	GetAllCampaigns(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Campaign, error)
	GetSpecificCampaign(ctx context.Context, oauthAccessToken, campaignID string) (*snapdomain.Campaign, error)
	DeleteCampaign(ctx context.Context, oauthAccessToken, campaignID string) error

	CreateAdSquad(ctx context.Context, oauthAccessToken string, adSquad *snapdomain.AdSquad) (*snapdomain.AdSquad, error)
	UpdateAdSquad(ctx context.Context, oauthAccessToken string, adSquad *snapdomain.AdSquad) (*snapdomain.AdSquad, error)
	GetAllAdSquadsFromCampaign(ctx context.Context, oauthAccessToken, campaignID string) ([]snapdomain.AdSquad, error)
	GetAllAdSquadsFromAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.AdSquad, error)
	GetSpecificAdSquad(ctx context.Context, oauthAccessToken, adSquadID string) (*snapdomain.AdSquad, error)
	DeleteAdSquad(ctx context.Context, oauthAccessToken, adSquadID string) error

	CreateAd(ctx context.Context, oauthAccessToken string, ad *snapdomain.Ad) (*snapdomain.Ad, error)
	UpdateAd(ctx context.Context, oauthAccessToken string, ad *snapdomain.Ad) (*snapdomain.Ad, error)
	GetAllAdsFromAdSquad(ctx context.Context, oauthAccessToken, adSquadID string) ([]snapdomain.Ad, error)
	GetAllAdsFromAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Ad, error)
	GetSpecificAd(ctx context.Context, oauthAccessToken, adID string) (*snapdomain.Ad, error)
	DeleteAd(ctx context.Context, oauthAccessToken, adID string) error

	CreateCreative(ctx context.Context, oauthAccessToken string, creative *snapdomain.Creative) (*snapdomain.Creative, error)
	UpdateCreative(ctx context.Context, oauthAccessToken string, creative *snapdomain.Creative) (*snapdomain.Creative, error)
	GetAllCreatives(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Creative, error)
	GetSpecificCreative(ctx context.Context, oauthAccessToken, creativeID string) (*snapdomain.Creative, error)

	CreateMedia(ctx context.Context, oauthAccessToken string, media *snapdomain.Media) (*snapdomain.Media, error)
	GetAllMedia(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Media, error)
	GetSpecificMedia(ctx context.Context, oauthAccessToken, mediaID string) (*snapdomain.Media, error)
	GetMediaPreview(ctx context.Context, oauthAccessToken, mediaID string) (*snapdomain.MediaPreview, error)
	UploadMediaVideo(ctx context.Context, oauthAccessToken, mediaID, filePath string) (*snapdomain.MediaFile, error)
	UploadMediaImage(ctx context.Context, oauthAccessToken, mediaID, filePath string) (*snapdomain.MediaFile, error)
	CheckUploadLargeMedia(oauthAccessToken, mediaID, fileName string, chunks []string) error
	UploadLargeMedia(ctx context.Context, oauthAccessToken, mediaID, fileName string, chunks []string) (string, error)

	GetPixelFromAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) (*snapdomain.Pixel, error)
	GetSpecificPixel(ctx context.Context, oauthAccessToken, pixelID string) (*snapdomain.Pixel, error)
	UpdatePixel(ctx context.Context, oauthAccessToken string, pixel *snapdomain.Pixel) (*snapdomain.Pixel, error)

	GetAuditLogs(ctx context.Context, oauthAccessToken string, entityType snapdomain.AuditEntityType, entityID string) ([]snapdomain.AuditLog, error)

	AuthorizationURL(state string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*snapdomain.TokenResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*snapdomain.TokenResponse, error)
}

type SnapClient struct {
	cfg    *config.Config
	http   *resty.Client
	logger log.Logger
}

type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     log.Logger
}

// WithHTTPClient substitui o *http.Client usado pelo transporte (pool, proxy, testes)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func NewClient(cfg *config.Config, opts ...Option) Client {
	return newSnapClient(cfg, opts...)
}

func newSnapClient(cfg *config.Config, opts ...Option) *SnapClient {
	o := &options{logger: log.L}
	for _, opt := range opts {
		opt(o)
	}

	var restyClient *resty.Client
	if o.httpClient != nil {
		restyClient = resty.NewWithClient(o.httpClient)
	} else {
		restyClient = resty.New()
	}

	restyClient.
		SetTimeout(cfg.Snap.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.Snap.UserAgent).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	middleware.LoggingMiddleware(restyClient, o.logger)

	return &SnapClient{
		cfg:    cfg,
		http:   restyClient,
		logger: o.logger,
	}
}
