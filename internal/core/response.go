// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Message writes a human-readable message body. Used for "empty result"
// outcomes that are part of the API contract rather than failures.
func Message(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Message: msg})
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = InternalError(err)
	}

	writeJSON(w, appErr.Status, errorEnvelope{
		Success: false,
		Error: errorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, ValidationError(message))
}

func Conflict(w http.ResponseWriter, message string) {
	JSONError(w, NewAppError(http.StatusConflict, "DUPLICATE", message))
}

func NotFound(w http.ResponseWriter, resource string) {
	JSONError(w, NotFoundError(resource))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	JSONError(w, InternalError(err))
}

type PaginatedResponse struct {
	Items      any `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func Paginated(w http.ResponseWriter, items any, page, pageSize, total int) {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	writeJSON(w, http.StatusOK, PaginatedResponse{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	})
}

// FormatValidationError reports every failed field, not just the first one.
func FormatValidationError(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return "invalid request"
	}

	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email", field))
		case "gt":
			msgs = append(
				msgs,
				fmt.Sprintf("%s must be greater than %s", field, fe.Param()),
			)
		case "min":
			msgs = append(
				msgs,
				fmt.Sprintf("%s must be at least %s characters", field, fe.Param()),
			)
		case "max":
			msgs = append(
				msgs,
				fmt.Sprintf("%s must be at most %s characters", field, fe.Param()),
			)
		case "oneof":
			msgs = append(
				msgs,
				fmt.Sprintf("%s must be one of: %s", field, fe.Param()),
			)
		case "datetime":
			msgs = append(
				msgs,
				fmt.Sprintf("%s must be a date in format %s", field, fe.Param()),
			)
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}

	return strings.Join(msgs, "; ")
}
