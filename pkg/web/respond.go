package web

import (
	"encoding/json"
	"net/http"

	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/logger"
	"github.com/bizstack/backoffice/pkg/pagination"
)

// DataResponse is the envelope for single-entity responses
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ListResponse is the envelope for paginated list responses
type ListResponse struct {
	Data interface{}     `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// RespondJSON writes a JSON response with the given status
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondData writes a {data} envelope
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	RespondJSON(w, status, DataResponse{Data: data})
}

// RespondList writes a {data, meta} envelope
func RespondList(w http.ResponseWriter, data interface{}, meta pagination.Meta) {
	RespondJSON(w, http.StatusOK, ListResponse{Data: data, Meta: meta})
}

// RespondError writes a {code, message} body. Unclassified errors are
// genericized to a 500 and the original error is logged server-side only.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apperrors.From(err)
	if apiErr == nil {
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Unhandled error")
		apiErr = apperrors.Internal()
	}
	RespondJSON(w, apiErr.Status, apiErr)
}
