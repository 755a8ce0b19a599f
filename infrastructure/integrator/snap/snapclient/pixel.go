package snapclient

import (
	"context"
	"net/http"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

const pixelIDRequired = "The pixel ID is required"

// GetPixelFromAdAccount retorna o pixel associado à conta (cada conta tem no máximo um)
func (c *SnapClient) GetPixelFromAdAccount(ctx context.Context, oauthAccessToken, adAccountID string) (*snapdomain.Pixel, error) {
	if err := requireID(oauthAccessToken, adAccountID, adAccountIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.Pixel](ctx, c, oauthAccessToken, config.OpPixelsByAdAccount,
		params{"ad_account_id": adAccountID}, snapdomain.PixelResource)
}

func (c *SnapClient) GetSpecificPixel(ctx context.Context, oauthAccessToken, pixelID string) (*snapdomain.Pixel, error) {
	if err := requireID(oauthAccessToken, pixelID, pixelIDRequired); err != nil {
		return nil, err
	}

	return fetchOne[snapdomain.Pixel](ctx, c, oauthAccessToken, config.OpPixelsGet,
		params{"pixel_id": pixelID}, snapdomain.PixelResource)
}

func (c *SnapClient) UpdatePixel(ctx context.Context, oauthAccessToken string, pixel *snapdomain.Pixel) (*snapdomain.Pixel, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}
	if err := validatePixel(pixel); err != nil {
		return nil, err
	}

	return mutate(ctx, c, oauthAccessToken, http.MethodPut, config.OpPixelsUpdate,
		params{"ad_account_id": pixel.AdAccountID}, pixel, snapdomain.PixelResource)
}

func validatePixel(pixel *snapdomain.Pixel) error {
	if pixel == nil {
		pixel = &snapdomain.Pixel{}
	}

	var v violations
	v.require(present(pixel.AdAccountID), adAccountIDRequired)
	v.require(present(pixel.ID), pixelIDRequired)
	v.require(present(pixel.Name), "The name is required")
	return v.err()
}
