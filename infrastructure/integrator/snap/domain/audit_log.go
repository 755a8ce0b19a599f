package snapdomain

import (
	"strings"
	"time"
)

type AuditEntityType string

const (
	AuditEntityCampaign AuditEntityType = "CAMPAIGN"
	AuditEntityAdSquad  AuditEntityType = "ADSQUAD"
	AuditEntityAd       AuditEntityType = "AD"
	AuditEntityCreative AuditEntityType = "CREATIVE"
)

var auditEntityPaths = map[AuditEntityType]string{
	AuditEntityCampaign: "campaigns",
	AuditEntityAdSquad:  "adsquads",
	AuditEntityAd:       "ads",
	AuditEntityCreative: "creatives",
}

// Path retorna o segmento de URL da entidade; vazio quando não suportada
func (e AuditEntityType) Path() string {
	return auditEntityPaths[AuditEntityType(strings.ToUpper(string(e)))]
}

type ChangedProperty struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value,omitempty"`
	NewValue any    `json:"new_value,omitempty"`
}

// AuditLog é um registro imutável de alteração de uma entidade
type AuditLog struct {
	ID                string            `json:"id,omitempty"`
	EntityID          string            `json:"entity_id,omitempty"`
	EntityType        AuditEntityType   `json:"entity_type,omitempty"`
	Method            string            `json:"method,omitempty"`
	ChangedBy         string            `json:"changed_by,omitempty"`
	ChangedProperties []ChangedProperty `json:"changed_properties,omitempty"`
	CreatedAt         *time.Time        `json:"created_at,omitempty"`
	UpdatedAt         *time.Time        `json:"updated_at,omitempty"`
}
