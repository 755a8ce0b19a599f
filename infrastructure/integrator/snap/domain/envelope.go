package snapdomain

import "strings"

// Resource descreve como uma família de recursos é nomeada dentro do envelope
type Resource struct {
	Plural   string
	Singular string
}

var (
	OrganizationResource  = Resource{Plural: "organizations", Singular: "organization"}
	FundingSourceResource = Resource{Plural: "fundingsources", Singular: "fundingsource"}
	BillingCenterResource = Resource{Plural: "billingcenters", Singular: "billingcenter"}
	MemberResource        = Resource{Plural: "members", Singular: "member"}
	AdAccountResource     = Resource{Plural: "adaccounts", Singular: "adaccount"}
	CampaignResource      = Resource{Plural: "campaigns", Singular: "campaign"}
	AdSquadResource       = Resource{Plural: "adsquads", Singular: "adsquad"}
	AdResource            = Resource{Plural: "ads", Singular: "ad"}
	CreativeResource      = Resource{Plural: "creatives", Singular: "creative"}
	MediaResource         = Resource{Plural: "media", Singular: "media"}
	PixelResource         = Resource{Plural: "pixels", Singular: "pixel"}
	AuditLogResource      = Resource{Plural: "changelogs", Singular: "changelog"}
)

type Paging struct {
	NextLink string `json:"next_link,omitempty"`
	PrevLink string `json:"prev_link,omitempty"`
}

// EnvelopeHeader são os campos comuns a toda resposta da API
type EnvelopeHeader struct {
	RequestStatus  string  `json:"request_status"`
	RequestID      string  `json:"request_id"`
	DebugMessage   string  `json:"debug_message,omitempty"`
	DisplayMessage string  `json:"display_message,omitempty"`
	Paging         *Paging `json:"paging,omitempty"`
}

func (h EnvelopeHeader) IsSuccess() bool {
	return strings.EqualFold(h.RequestStatus, "success")
}

func (h EnvelopeHeader) IsError() bool {
	return strings.EqualFold(h.RequestStatus, "error")
}

func (h EnvelopeHeader) NextLink() string {
	if h.Paging == nil {
		return ""
	}
	return h.Paging.NextLink
}

type Item[T any] struct {
	SubRequestStatus string
	SubRequestReason string
	Entity           T
}

// Envelope é a resposta já desembrulhada: cabeçalho + elementos do recurso
type Envelope[T any] struct {
	EnvelopeHeader
	Items []Item[T]
}

func (e *Envelope[T]) Entities() []T {
	entities := make([]T, 0, len(e.Items))
	for _, item := range e.Items {
		entities = append(entities, item.Entity)
	}
	return entities
}
