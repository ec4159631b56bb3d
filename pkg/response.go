package pkg

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
)

// APIResponse, envelope kullanan endpoint'lerin standart formatı.
// Hata yanıtları her endpoint'te bu formatla döner.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON, başarılı bir yanıtı envelope içinde gönderir.
func JSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
	})
}

// List, envelope olmadan çıplak bir JSON array gönderir.
// Sunucu listesi endpoint'i client'lara doğrudan array döner.
// nil slice "null" yerine "[]" olarak yazılır.
func List[T any](w http.ResponseWriter, status int, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, status, items)
}

// Error, hata yanıtı gönderir.
// Domain error'ları otomatik olarak uygun HTTP status code'a çevrilir.
// 500 durumunda iç hata mesajı client'a sızdırılmaz; asıl sebep request
// logger'ına (zerolog.Ctx) yazılır.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		message = ErrInternal.Error()
	}

	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

// ErrorWithMessage, özel mesajlı hata yanıtı gönderir.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

// StatusOf, bir error'ın hangi HTTP status code'a karşılık geldiğini döner.
func StatusOf(err error) int {
	return mapErrorToStatus(err)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
// errors.Is wrap edilmiş error'ları da zincir boyunca kontrol eder.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
