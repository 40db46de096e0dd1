package httpadapter

import (
	"errors"
	"net/http"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// writeError answers with an error body and notes its kind for the access log.
func writeError(w http.ResponseWriter, r *http.Request, status int, resp errorResponse) {
	if info := requestInfoFromContext(r.Context()); info != nil {
		info.errorKind = resp.Kind
	}
	writeJSON(w, status, resp)
}

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput),
		domain.IsKind(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case domain.IsKind(err, domain.ErrUpstreamAuth):
		return http.StatusUnauthorized
	case domain.IsKind(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case domain.IsKind(err, domain.ErrGatewayNotConfigured):
		return http.StatusNotImplemented
	case domain.IsKind(err, domain.ErrUnreachable):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage drops the pipeline stage prefix; the stage is logged instead.
func errorMessage(err error) string {
	var stageErr *usecase.StageError
	if errors.As(err, &stageErr) {
		err = stageErr.Err
	}
	return err.Error()
}

func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, mapErrorToHTTPStatus(err), errorResponse{
		Error: errorMessage(err),
		Kind:  domain.KindOf(err),
	})
}
