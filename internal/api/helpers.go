package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const errInternalRuText = "Внутренняя ошибка"

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SendErr writes a JSON error body. Message is the user-facing text, the
// wrapped error goes to the log and into the body for operators.
func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, "request failed", "error", err, "code", code, "message", msg)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	encErr := json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if encErr != nil {
		slog.ErrorContext(ctx, "encode error response", "error", encErr)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
