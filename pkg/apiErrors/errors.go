package apiErrors

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// Kind identifica a categoria de um erro retornado pelo cliente
type Kind string

const (
	KindArgument       Kind = "ARGUMENT"       // Dados inválidos, detectados localmente
	KindAuthentication Kind = "AUTHENTICATION" // Token ausente, detectado localmente
	KindResponse       Kind = "RESPONSE"       // A API respondeu com falha
	KindExecution      Kind = "EXECUTION"      // A chamada não pôde ser concluída
)

// Sentinelas usadas com errors.Is
var (
	ErrArgument       = errors.New("argument error")
	ErrAuthentication = errors.New("authentication error")
	ErrResponse       = errors.New("response error")
	ErrExecution      = errors.New("execution error")
)

var kindSentinels = map[Kind]error{
	KindArgument:       ErrArgument,
	KindAuthentication: ErrAuthentication,
	KindResponse:       ErrResponse,
	KindExecution:      ErrExecution,
}

// Mapeamento de status HTTP para a mensagem pública do erro
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized - Check your API key",
	http.StatusForbidden:           "Access Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusNotAcceptable:       "Not Acceptable",
	http.StatusGone:                "Gone",
	http.StatusTeapot:              "I'm a teapot",
	http.StatusTooManyRequests:     "Too Many Requests / Rate limit reached",
	http.StatusInternalServerError: "Internal Server Error",
	http.StatusServiceUnavailable:  "Service Unavailable",
}

// APIError representa qualquer falha devolvida pelo cliente
type APIError struct {
	Kind       Kind   // Categoria do erro
	StatusCode int    // Status HTTP (somente KindResponse vindo do servidor)
	Message    string // Mensagem pública
	Body       []byte // Corpo da resposta, para diagnóstico
	Err        error  // Causa (somente KindExecution)
}

func (e *APIError) Error() string {
	if e.Kind == KindExecution && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrArgument) e afins
func (e *APIError) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// StatusMessage retorna a mensagem pública para um status HTTP
func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("Error %d", code)
}

func NewArgumentError(message string) *APIError {
	return &APIError{Kind: KindArgument, Message: message}
}

func NewAuthenticationError(message string) *APIError {
	return &APIError{Kind: KindAuthentication, Message: message}
}

func NewResponseError(message string) *APIError {
	return &APIError{Kind: KindResponse, Message: message}
}

// FromStatus cria um erro de resposta a partir do status HTTP
func FromStatus(code int, body []byte) *APIError {
	return &APIError{
		Kind:       KindResponse,
		StatusCode: code,
		Message:    StatusMessage(code),
		Body:       body,
	}
}

// NewExecutionError envolve uma falha de I/O sem alterar a mensagem original
func NewExecutionError(cause error) *APIError {
	return &APIError{
		Kind: KindExecution,
		Err:  pkgerrors.WithStack(cause),
	}
}

func KindOf(err error) (Kind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return "", false
}

func IsArgument(err error) bool       { return errors.Is(err, ErrArgument) }
func IsAuthentication(err error) bool { return errors.Is(err, ErrAuthentication) }
func IsResponse(err error) bool       { return errors.Is(err, ErrResponse) }
func IsExecution(err error) bool      { return errors.Is(err, ErrExecution) }
