package snaptest

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// Hit é uma requisição recebida pelo servidor fake
type Hit struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   []byte
	Form   map[string]string // Campos de formulário (multipart ou urlencoded)
	Files  map[string][]byte // Conteúdo das partes de arquivo do multipart
	At     time.Time
}

// RequireBearer responde 401 quando o header Authorization não traz um bearer token
func RequireBearer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" || token == r.Header.Get("Authorization") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// recordHits guarda uma cópia de cada requisição antes de repassá-la
func (s *Server) recordHits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		hit := Hit{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  map[string]string{},
			Header: r.Header.Clone(),
			Body:   body,
			Form:   map[string]string{},
			Files:  map[string][]byte{},
			At:     time.Now(),
		}
		for key := range r.URL.Query() {
			hit.Query[key] = r.URL.Query().Get(key)
		}
		parseForm(&hit, r, body)

		s.mu.Lock()
		s.hits = append(s.hits, hit)
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func parseForm(hit *Hit, r *http.Request, body []byte) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return
	}

	clone := r.Clone(r.Context())
	clone.Body = io.NopCloser(bytes.NewReader(body))

	switch {
	case strings.HasPrefix(mediaType, "multipart/"):
		if err := clone.ParseMultipartForm(64 << 20); err != nil {
			return
		}
		for key, values := range clone.MultipartForm.Value {
			hit.Form[key] = values[0]
		}
		for key, headers := range clone.MultipartForm.File {
			file, err := headers[0].Open()
			if err != nil {
				continue
			}
			content, _ := io.ReadAll(file)
			_ = file.Close()
			hit.Files[key] = content
		}
	case mediaType == "application/x-www-form-urlencoded":
		if err := clone.ParseForm(); err != nil {
			return
		}
		for key := range clone.PostForm {
			hit.Form[key] = clone.PostForm.Get(key)
		}
	}
}
