package snapclient

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
)

const requestFailedMessage = "Request failed"

// decodeEnvelope desembrulha o envelope do recurso. O nome do array e o nome
// do objeto dentro de cada item vêm do Resource.
func decodeEnvelope[T any](body []byte, resource snapdomain.Resource) (*snapdomain.Envelope[T], error) {
	envelope := &snapdomain.Envelope[T]{}
	if len(bytes.TrimSpace(body)) == 0 {
		return envelope, nil
	}

	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apiErrors.NewExecutionError(fmt.Errorf("decoding %s envelope: %w", resource.Plural, err))
	}
	if err := json.Unmarshal(body, &envelope.EnvelopeHeader); err != nil {
		return nil, apiErrors.NewExecutionError(fmt.Errorf("decoding %s envelope: %w", resource.Plural, err))
	}

	if err := envelopeError(envelope.EnvelopeHeader); err != nil {
		return nil, err
	}

	rawItems, ok := raw[resource.Plural]
	if !ok || isNull(rawItems) {
		return envelope, nil
	}

	var items []map[string]jsoniter.RawMessage
	if err := json.Unmarshal(rawItems, &items); err != nil {
		return nil, apiErrors.NewExecutionError(fmt.Errorf("decoding %s items: %w", resource.Plural, err))
	}

	for _, item := range items {
		rawEntity, ok := item[resource.Singular]
		if !ok || isNull(rawEntity) {
			continue
		}

		decoded := snapdomain.Item[T]{}
		if err := json.Unmarshal(rawEntity, &decoded.Entity); err != nil {
			return nil, apiErrors.NewExecutionError(fmt.Errorf("decoding %s: %w", resource.Singular, err))
		}
		if status, ok := item["sub_request_status"]; ok {
			_ = json.Unmarshal(status, &decoded.SubRequestStatus)
		}
		if reason, ok := item["sub_request_reason"]; ok {
			_ = json.Unmarshal(reason, &decoded.SubRequestReason)
		}

		envelope.Items = append(envelope.Items, decoded)
	}

	return envelope, nil
}

// decodeBody é usado pelas respostas que não seguem o envelope de recursos
// (preview, upload, upload em partes)
func decodeBody[T any](body []byte) (*T, error) {
	out := new(T)
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}

	var header snapdomain.EnvelopeHeader
	if err := json.Unmarshal(body, &header); err != nil {
		return nil, apiErrors.NewExecutionError(fmt.Errorf("decoding response: %w", err))
	}
	if err := envelopeError(header); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return nil, apiErrors.NewExecutionError(fmt.Errorf("decoding response: %w", err))
	}
	return out, nil
}

// envelopeError trata o caso de status 2xx com request_status ERROR
func envelopeError(header snapdomain.EnvelopeHeader) error {
	if !header.IsError() {
		return nil
	}

	switch {
	case header.DisplayMessage != "":
		return apiErrors.NewResponseError(header.DisplayMessage)
	case header.DebugMessage != "":
		return apiErrors.NewResponseError(header.DebugMessage)
	default:
		return apiErrors.NewResponseError(requestFailedMessage)
	}
}

func first[T any](entities []T, resource snapdomain.Resource) (*T, error) {
	if len(entities) == 0 {
		return nil, apiErrors.NewResponseError(fmt.Sprintf("No %s found", resource.Singular))
	}
	return &entities[0], nil
}

func isNull(raw jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
