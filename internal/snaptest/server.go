// Package snaptest fornece um servidor fake da API de Marketing para os testes
// do cliente: rotas httprouter, bearer obrigatório e registro de cada chamada.
package snaptest

import (
	"net/http/httptest"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/spf13/viper"
	"github.com/vfg2006/snapchat-marketing-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	APIPrefix = "/v1"
	TokenPath = "/login/oauth2/access_token"
)

type Server struct {
	*httptest.Server

	mu   sync.Mutex
	hits []Hit
}

// New sobe o servidor com as rotas informadas e o encerra no fim do teste
func New(t testing.TB, routes ...Route) *Server {
	t.Helper()

	s := &Server{}
	rt := NewRouter(WithRoutes(routes...))
	s.Server = httptest.NewServer(alice.New(s.recordHits).Then(rt))
	t.Cleanup(s.Close)

	return s
}

// Config devolve a configuração padrão apontando para o servidor fake
func (s *Server) Config(t testing.TB) *config.Config {
	t.Helper()

	cfg, err := config.Load(viper.New())
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	cfg.Snap.BaseURL = s.URL + APIPrefix
	cfg.OAuth.AuthURL = s.URL + "/login/oauth2/authorize"
	cfg.OAuth.TokenURL = s.URL + TokenPath
	cfg.OAuth.ClientID = "client-id"
	cfg.OAuth.ClientSecret = "client-secret"
	cfg.OAuth.RedirectURI = "https://example.com/callback"

	return cfg
}

func (s *Server) Hits() []Hit {
	s.mu.Lock()
	defer s.mu.Unlock()

	hits := make([]Hit, len(s.hits))
	copy(hits, s.hits)
	return hits
}

func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hits)
}

func (s *Server) Last() Hit {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.hits) == 0 {
		return Hit{}
	}
	return s.hits[len(s.hits)-1]
}
