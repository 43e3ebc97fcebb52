package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/convodocs/convodocs-api/internal/domain"
)

const (
	codeInternal       = "INTERNAL_ERROR"
	codeCanceled       = "REQUEST_CANCELED"
	codeRequestTimeout = "REQUEST_TIMEOUT"

	// statusClientClosedRequest - нестандартный код nginx для запроса, брошенного клиентом.
	statusClientClosedRequest = 499
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		h.logger.Warnw("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", domainErr.Code,
			"status", statusCode,
			"error", domainErr.Message,
		)
		writeError(w, statusCode, domainErr.Code, domainErr.Message)
		return
	}

	if code, statusCode, ok := contextErrorStatus(err); ok {
		h.logger.Warnw("request aborted",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code,
			"status", statusCode,
			"error", err,
		)
		writeError(w, statusCode, code, err.Error())
		return
	}

	h.logger.Errorw("unexpected error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
}

func contextErrorStatus(err error) (string, int, bool) {
	switch {
	case errors.Is(err, context.Canceled):
		return codeCanceled, statusClientClosedRequest, true
	case errors.Is(err, context.DeadlineExceeded):
		return codeRequestTimeout, http.StatusGatewayTimeout, true
	default:
		return "", 0, false
	}
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeAlreadyPublished:
		return http.StatusConflict
	case domain.CodeValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Status:  statusCode,
		},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// NotFound и MethodNotAllowed отдают ту же форму ошибки, что и обработчики.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, domain.CodeNotFound, "route "+r.URL.Path+" not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method "+r.Method+" is not allowed on "+r.URL.Path)
}
