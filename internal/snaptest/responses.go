package snaptest

import (
	"net/http"
)

// JSON responde com o status e o corpo serializado
func JSON(status int, body any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

// Raw responde com o corpo exatamente como informado
func Raw(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func Status(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

// Envelope monta a resposta padrão {request_status, <plural>: [{<singular>: ...}]}
func Envelope(plural, singular string, entities ...any) map[string]any {
	items := make([]map[string]any, 0, len(entities))
	for _, entity := range entities {
		items = append(items, map[string]any{
			"sub_request_status": "SUCCESS",
			singular:             entity,
		})
	}

	return map[string]any{
		"request_status": "SUCCESS",
		"request_id":     "5f1b2c3d4e5f",
		plural:           items,
	}
}

// Page é um Envelope com paging.next_link apontando para a próxima página
func Page(next string, plural, singular string, entities ...any) map[string]any {
	envelope := Envelope(plural, singular, entities...)
	if next != "" {
		envelope["paging"] = map[string]any{"next_link": next}
	}
	return envelope
}

// Echo devolve o corpo recebido trocando request_status para SUCCESS; simula
// criação/atualização que ecoa a entidade enviada
func Echo(plural, singular string, overrides map[string]any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request map[string][]map[string]any
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		entities := make([]any, 0, len(request[plural]))
		for _, entity := range request[plural] {
			for key, value := range overrides {
				entity[key] = value
			}
			entities = append(entities, entity)
		}

		JSON(http.StatusOK, Envelope(plural, singular, entities...)).ServeHTTP(w, r)
	})
}
