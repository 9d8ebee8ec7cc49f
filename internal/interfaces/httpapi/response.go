package httpapi

import (
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/dragonworlds/results-sync/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "results-sync"
)

// Responses use the Google JSON-C envelope: apiVersion on every reply,
// then exactly one of data or error.
type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalMapped = mappedError{
	HTTPStatus: http.StatusInternalServerError,
	Reason:     "internalError",
	Status:     "INTERNAL",
}

// errorMappings is matched in order. ErrDependencyUnavailable outranks
// ErrFetchFailed because the service wraps both when a refresh is
// rejected by an open circuit.
var errorMappings = []struct {
	target error
	mapped mappedError
}{
	{
		target: usecase.ErrInvalidInput,
		mapped: mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"},
	},
	{
		target: usecase.ErrNotFound,
		mapped: mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"},
	},
	{
		target: usecase.ErrDependencyUnavailable,
		mapped: mappedError{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"},
	},
	{
		target: usecase.ErrFetchFailed,
		mapped: mappedError{HTTPStatus: http.StatusBadGateway, Reason: "fetchFailed", Status: "UNAVAILABLE"},
	},
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(w, mapped.HTTPStatus, errorEnvelope(mapped, err.Error()))
}

// writeInternalError hides the cause from the client; use it on panic and
// other paths where err.Error() could leak internals.
func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, internalMapped.HTTPStatus, errorEnvelope(internalMapped, "internal server error"))
}

func errorEnvelope(mapped mappedError, message string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors: []googleErrorItem{{
				Domain:  errorDomain,
				Reason:  mapped.Reason,
				Message: message,
			}},
		},
	}
}

func mapError(err error) mappedError {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.mapped
		}
	}
	return internalMapped
}
