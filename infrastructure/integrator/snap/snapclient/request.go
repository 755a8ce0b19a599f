package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	snapdomain "github.com/vfg2006/snapchat-marketing-api/infrastructure/integrator/snap/domain"
	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
	"github.com/vfg2006/snapchat-marketing-api/pkg/log"
)

type params map[string]string

const correlationHeader = "X-Correlation-ID"

// resolve monta a URL absoluta da operação a partir do template configurado.
// Erros de configuração voltam como estão (config.ErrEndpointNotConfigured,
// config.ErrMissingPathParam), fora dos tipos de apiErrors.
func (c *SnapClient) resolve(operation string, p params) (string, error) {
	return c.cfg.Endpoints.Resolve(c.cfg.Snap.BaseURL, operation, p)
}

func (c *SnapClient) newRequest(ctx context.Context, oauthAccessToken string) *resty.Request {
	ctx, correlationID := log.WithCorrelationID(ctx)

	return c.http.R().
		SetContext(ctx).
		SetAuthToken(oauthAccessToken).
		SetHeader("Accept", "application/json").
		SetHeader(correlationHeader, correlationID)
}

// execute envia a requisição e traduz status >= 300 para erro de resposta.
// Falhas de I/O viram erro de execução com a mensagem original.
func (c *SnapClient) execute(req *resty.Request, method, endpoint string) ([]byte, error) {
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return nil, apiErrors.NewExecutionError(err)
	}

	if resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, apiErrors.FromStatus(resp.StatusCode(), resp.Body())
	}

	return resp.Body(), nil
}

func fetchOne[T any](ctx context.Context, c *SnapClient, oauthAccessToken, operation string, p params, resource snapdomain.Resource) (*T, error) {
	endpoint, err := c.resolve(operation, p)
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

	envelope, err := decodeEnvelope[T](body, resource)
	if err != nil {
		return nil, err
	}

	return first(envelope.Entities(), resource)
}

// fetchAll segue paging.next_link até a última página, concatenando os elementos
func fetchAll[T any](ctx context.Context, c *SnapClient, oauthAccessToken, operation string, p params, query map[string]string, resource snapdomain.Resource) ([]T, error) {
	endpoint, err := c.resolve(operation, p)
	if err != nil {
		return nil, err
	}

	ctx, _ = log.WithCorrelationID(ctx)

	entities := make([]T, 0)
	visited := map[string]struct{}{}
	firstPage := true
	for endpoint != "" {
		visited[endpoint] = struct{}{}
		req := c.newRequest(ctx, oauthAccessToken)
		if firstPage {
			req.SetQueryParams(query)
			if c.cfg.Snap.PageSize > 0 {
				req.SetQueryParam("limit", strconv.Itoa(c.cfg.Snap.PageSize))
			}
		}

		body, err := c.execute(req, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}

		envelope, err := decodeEnvelope[T](body, resource)
		if err != nil {
			return nil, err
		}
		entities = append(entities, envelope.Entities()...)

		next, err := c.nextPage(envelope.NextLink())
		if err != nil {
			return nil, err
		}
		if _, seen := visited[next]; seen {
			c.logger.WithContext(ctx).Warnf("snap: next_link repeats an already fetched page for %s", resource.Plural)
			break
		}
		endpoint = next
		firstPage = false
	}

	return entities, nil
}

// nextPage resolve o next_link contra a URL base; links para outro host são
// recusados para não enviar o token a terceiros
func (c *SnapClient) nextPage(link string) (string, error) {
	if link == "" {
		return "", nil
	}

	next, err := c.absoluteURL(link)
	if err != nil {
		return "", err
	}

	nextURL, err := url.Parse(next)
	if err != nil {
		return "", apiErrors.NewExecutionError(err)
	}
	baseURL, err := url.Parse(c.cfg.Snap.BaseURL)
	if err != nil {
		return "", apiErrors.NewExecutionError(err)
	}
	if !strings.EqualFold(nextURL.Host, baseURL.Host) || !strings.EqualFold(nextURL.Scheme, baseURL.Scheme) {
		return "", apiErrors.NewExecutionError(fmt.Errorf("next_link %s points outside %s", next, baseURL.Host))
	}

	return next, nil
}

// mutate envia {<plural>: [entity]} e devolve o primeiro elemento da resposta
func mutate[T any](ctx context.Context, c *SnapClient, oauthAccessToken, method, operation string, p params, entity *T, resource snapdomain.Resource) (*T, error) {
	endpoint, err := c.resolve(operation, p)
	if err != nil {
		return nil, err
	}

	payload := map[string][]*T{resource.Plural: {entity}}
	req := c.newRequest(ctx, oauthAccessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)

	body, err := c.execute(req, method, endpoint)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	envelope, err := decodeEnvelope[T](body, resource)
	if err != nil {
		return nil, err
	}

	return first(envelope.Entities(), resource)
}

func remove(ctx context.Context, c *SnapClient, oauthAccessToken, operation string, p params) error {
	endpoint, err := c.resolve(operation, p)
	if err != nil {
		return err
	}

	body, err := c.execute(c.newRequest(ctx, oauthAccessToken), http.MethodDelete, endpoint)
	if err != nil {
		return err
	}

	_, err = decodeBody[snapdomain.EnvelopeHeader](body)
	return err
}
