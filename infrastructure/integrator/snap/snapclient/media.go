package snapclient

import (
	"context"
	"net/http"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const mediaIDRequired = "The media ID is required"

// CreateMedia registra a mídia (ainda sem arquivo); o upload é feito depois pelo ID retornado
func (c *SnapClient) CreateMedia(ctx context.Context, oauthAccessToken string, media *snapdomain.Media) (*snapdomain.Media, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validateMedia(media); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPost, config.OpMediaCreate,
		params{"ad_account_id": media.AdAccountID}, media, snapdomain.MediaResource)
}

func (c *SnapClient) GetAllMedia(ctx context.Context, oauthAccessToken, adAccountID string) ([]snapdomain.Media, error) {
	if err := requireID(oauthAccessToken, adAccountID, adAccountIDRequired); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.Media](ctx, c, oauthAccessToken, config.OpMediaList,
		params{"ad_account_id": adAccountID}, nil, snapdomain.MediaResource)
}

func (c *SnapClient) GetSpecificMedia(ctx context.Context, oauthAccessToken, mediaID string) (*snapdomain.Media, error) {
	if err := requireID(oauthAccessToken, mediaID, mediaIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.Media](ctx, c, oauthAccessToken, config.OpMediaGet,
		params{"media_id": mediaID}, snapdomain.MediaResource)
}

// GetMediaPreview retorna um link temporário para visualizar a mídia
func (c *SnapClient) GetMediaPreview(ctx context.Context, oauthAccessToken, mediaID string) (*snapdomain.MediaPreview, error) {
	if err := requireID(oauthAccessToken, mediaID, mediaIDRequired); err != nil {
		return nil, err
	}

	endpoint, err := c.resolve(config.OpMediaPreview, params{"media_id": mediaID})
	if err != nil {
		return nil, err
	}

	body, err := c.execute(c.newRequest(ctx, oauthAccessToken), http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	return decodeBody[snapdomain.MediaPreview](body)
}

func validateMedia(media *snapdomain.Media) error {
	if media == nil {
		media = &snapdomain.Media{}
	}

	var v violations
	v.require(present(media.AdAccountID), adAccountIDRequired)
	v.require(present(media.Name), "The name is required")
	v.require(present(string(media.Type)), "The type is required")
	return v.err()
}
