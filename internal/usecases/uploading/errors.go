package uploading

import (
	"errors"
	"fmt"
)

// Códigos de erro do fluxo de upload
const (
	CodeUnsupportedMedia = "UPL_001"
	CodeCreateMedia      = "UPL_002"
	CodeUploadMedia      = "UPL_003"
	CodeSplitFile        = "UPL_004"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrCreateMedia          = errors.New("error creating media")
	ErrUploadMedia          = errors.New("error uploading media")
	ErrSplitFile            = errors.New("error splitting file into chunks")
)

// UploadError é um erro com contexto adicional para o upload
type UploadError struct {
	Err      error  // Erro base
	Code     string // Código de erro
	FilePath string // Arquivo envolvido
	Details  string // Detalhes adicionais
	Cause    error  // Erro original do cliente, quando houver
}

func (e *UploadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap expõe o erro base e a causa para errors.Is/As
func (e *UploadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewUploadError(err error, code, filePath string, cause error) *UploadError {
	uploadErr := &UploadError{
		Err:      err,
		Code:     code,
		FilePath: filePath,
		Cause:    cause,
	}
	if cause != nil {
		uploadErr.Details = cause.Error()
	}
	return uploadErr
}
