// internal/app/system/webjson/webjson.go
//
// JSON response plumbing shared by every feature handler. Error kinds
// are mapped to HTTP status codes here and nowhere else.
package webjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/impacthub/internal/app/system/apperr"
	"github.com/dalemusser/impacthub/internal/app/system/paging"
	"go.uber.org/zap"
)

// maxBodyBytes bounds admin payloads; entity payloads are small.
const maxBodyBytes = 1 << 20

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, v any) { Write(w, http.StatusOK, v) }

// Created writes a 201 response.
func Created(w http.ResponseWriter, v any) { Write(w, http.StatusCreated, v) }

// NoContent writes a 204 response.
func NoContent(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }

// listEnvelope is the uniform listing contract:
// { items: [...], pagination: { page, limit, total, totalPages } }.
type listEnvelope struct {
	Items      any            `json:"items"`
	Pagination paginationMeta `json:"pagination"`
}

type paginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// List writes a page in the uniform listing envelope.
func List[T any](w http.ResponseWriter, page paging.Page[T]) {
	Write(w, http.StatusOK, listEnvelope{
		Items: page.Items,
		Pagination: paginationMeta{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

// Decode reads a JSON request body into dst. Malformed bodies become
// validation errors so the handler can surface them as 400s.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.Validation, "request body is required")
		}
		return apperr.Newf(apperr.Validation, "malformed JSON body: %v", err)
	}
	return nil
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorWriter translates typed errors into HTTP responses and logs
// store failures. One instance is shared by all handlers.
type ErrorWriter struct {
	log *zap.Logger
}

// NewErrorWriter builds an ErrorWriter on the app logger.
func NewErrorWriter(log *zap.Logger) *ErrorWriter {
	return &ErrorWriter{log: log}
}

// WriteError maps the error's kind to a status code. DataAccess errors
// are logged with the request path and surfaced as a generic 500; the
// caller never sees backing-store details.
func (ew *ErrorWriter) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Wrap("internal error", err)
	}

	status := http.StatusInternalServerError
	msg := ae.Message
	switch ae.Kind {
	case apperr.Validation, apperr.ReferentialIntegrity:
		status = http.StatusBadRequest
	case apperr.Conflict:
		status = http.StatusConflict
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.DataAccess:
		ew.log.Error("data access failure",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		msg = "internal error"
	}

	Write(w, status, errorBody{Error: errorDetail{
		Code:    ae.Kind.String(),
		Message: msg,
		Field:   ae.Field,
	}})
}
