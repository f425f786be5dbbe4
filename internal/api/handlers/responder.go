package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Коды ошибок в теле ответа
const (
	CodeMissingParams = "missing_params"
	CodeInvalidSlot   = "invalid_slotISO"
	CodeInvalidConfig = "invalid_config"
	CodeInvalidBody   = "invalid_body"
	CodeInternal      = "internal_error"
	CodeRateLimited   = "rate_limited"
)

const maxBodyBytes = 1 << 20

// ErrorResponse тело ответа при ошибке
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RespondJSON пишет JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с кодом и человекочитаемым сообщением
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{OK: false, Error: code, Message: message})
}

// RespondBadRequest ошибка входных данных (400)
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondInternalError внутренняя ошибка (500)
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, "внутренняя ошибка сервера")
}

// DecodeJSON читает тело запроса в v, не более 1 МБ
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
