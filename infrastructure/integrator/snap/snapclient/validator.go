package snapclient

import (
	"strings"

	"github.com/vfg2006/snapchat-marketing-api/pkg/apiErrors"
)

const tokenRequiredMessage = "The OAuthAccessToken is required"

// checkToken roda antes de qualquer outra validação e antes de qualquer I/O
func checkToken(oauthAccessToken string) error {
	if strings.TrimSpace(oauthAccessToken) == "" {
		return apiErrors.NewAuthenticationError(tokenRequiredMessage)
	}
	return nil
}

// violations acumula as cláusulas violadas na ordem em que são verificadas
type violations []string

func (v *violations) require(ok bool, message string) {
	if !ok {
		v.add(message)
	}
}

func (v *violations) add(message string) {
	for _, existing := range *v {
		if existing == message {
			return
		}
	}
	*v = append(*v, message)
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return apiErrors.NewArgumentError(strings.Join(v, ","))
}

func present(value string) bool {
	return strings.TrimSpace(value) != ""
}

// requireID valida os métodos que recebem apenas um identificador
func requireID(oauthAccessToken, id, message string) error {
	if err := checkToken(oauthAccessToken); err != nil {
		return err
	}
	var v violations
	v.require(present(id), message)
	return v.err()
}
