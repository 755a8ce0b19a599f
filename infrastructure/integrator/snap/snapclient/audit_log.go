package snapclient

import (
	"context"
	"fmt"

	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

// GetAuditLogs lista o histórico de alterações de uma campanha, ad squad, anúncio ou criativo
func (c *SnapClient) GetAuditLogs(ctx context.Context, oauthAccessToken string, entityType snapdomain.AuditEntityType, entityID string) ([]snapdomain.AuditLog, error) {
	if err := checkToken(oauthAccessToken); err != nil {
		return nil, err
	}

	var v violations
	switch {
	case !present(string(entityType)):
		v.add("The entity type is required")
	case entityType.Path() == "":
		v.add(fmt.Sprintf("The entity type %s isn't supported", entityType))
	}
	v.require(present(entityID), "The entity ID is required")
	if err := v.err(); err != nil {
		return nil, err
	}

	return fetchAll[snapdomain.AuditLog](ctx, c, oauthAccessToken, config.OpAuditLogsList,
		params{"entity_path": entityType.Path(), "entity_id": entityID}, nil, snapdomain.AuditLogResource)
}
