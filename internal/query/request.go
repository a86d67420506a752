package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	v1 "github.com/emis-lab/aggregate-query/internal/api/v1"
	httperr "github.com/emis-lab/aggregate-query/internal/core/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	envelopeKey = "aggregate_query"

	msgReadBodyFailed  = "Failed to read request body"
	msgMissingBody     = "Request body is required"
	msgInvalidJSON     = "Invalid JSON body"
	msgBodyTooLarge    = "Request body exceeds maximum allowed size"
	msgInvalidID       = "Aggregate query id must be an integer"
	msgInvalidRef      = "Path segment must be an aggregate query id or a user id"
	msgMissingEnvelope = "Request body must contain an aggregate_query object"
)

// requestError carries the HTTP error shape from a helper back to the handler.
// Helpers return this instead of writing to gin.Context directly.
type requestError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *requestError) Error() string {
	return e.message
}

func badRequest(errorType, message string) *requestError {
	return &requestError{statusCode: http.StatusBadRequest, errorType: errorType, message: message}
}

func unprocessable(message string) *requestError {
	return &requestError{
		statusCode: http.StatusUnprocessableEntity,
		errorType:  httperr.HttpUnprocessableError,
		message:    message,
	}
}

// readBody reads at most maxBodySizeBytes of the request body.
// An absent or blank body is a bad request.
func (s *Service) readBody(c *gin.Context) ([]byte, *requestError) {
	if c.Request.Body == nil {
		return nil, badRequest(httperr.HttpInvalidJsonError, msgMissingBody)
	}

	maxBytes := int64(s.maxBodySizeBytes)
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, &requestError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, &requestError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    msgBodyTooLarge,
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil, badRequest(httperr.HttpInvalidJsonError, msgMissingBody)
	}
	return bodyBytes, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeCreateRequest parses {"aggregate_query": {"user": ..., "model": ...}}.
//
// A body that is not JSON, or that lacks the envelope or a required field,
// is a bad request. Fields that are present but of the wrong kind are
// unprocessable.
func decodeCreateRequest(body []byte) (*v1.CreateRequest, *requestError) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, badRequest(httperr.HttpInvalidJsonError, msgInvalidJSON)
	}

	raw, ok := envelope[envelopeKey]
	if !ok || isNull(raw) {
		return nil, badRequest(httperr.HttpInvalidJsonError, msgMissingEnvelope)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, unprocessable("aggregate_query must be a JSON object")
	}

	rawUser, rawModel := fields["user"], fields["model"]
	if isNull(rawUser) {
		return nil, badRequest(httperr.HttpInvalidJsonError, "user is required")
	}
	if isNull(rawModel) {
		return nil, badRequest(httperr.HttpInvalidJsonError, "model is required")
	}

	var userStr string
	if err := json.Unmarshal(rawUser, &userStr); err != nil {
		return nil, unprocessable("user must be a string")
	}
	user, err := uuid.Parse(userStr)
	if err != nil || user == uuid.Nil {
		return nil, unprocessable(fmt.Sprintf("user must be a UUID (got %q)", userStr))
	}

	model, err := v1.DecodeModel(rawModel)
	if err != nil {
		return nil, unprocessable("model must be a JSON object")
	}

	req := &v1.CreateRequest{User: user, Model: model}
	if err := req.Validate(); err != nil {
		return nil, unprocessable(err.Error())
	}
	return req, nil
}

// decodeStatusPatch reads edit_status and execute_status from a JSON object.
// Every other key is ignored; server-controlled fields cannot be patched.
func decodeStatusPatch(body []byte) (v1.StatusPatch, *requestError) {
	var patch v1.StatusPatch

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return patch, badRequest(httperr.HttpInvalidJsonError, msgInvalidJSON)
	}

	if raw := fields["edit_status"]; !isNull(raw) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return patch, unprocessable("edit_status must be a string")
		}
		status, err := v1.ParseEditStatus(s)
		if err != nil {
			return patch, unprocessable(err.Error())
		}
		patch.EditStatus = &status
	}

	if raw := fields["execute_status"]; !isNull(raw) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return patch, unprocessable("execute_status must be a string")
		}
		status, err := v1.ParseExecuteStatus(s)
		if err != nil {
			return patch, unprocessable(err.Error())
		}
		patch.ExecuteStatus = &status
	}

	return patch, nil
}

// pathRef is the decoded :ref segment: either an id or an owner.
type pathRef struct {
	id   int64
	user uuid.UUID
	isID bool
}

func parseRef(ref string) (pathRef, *requestError) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return pathRef{id: id, isID: true}, nil
	}
	if user, err := uuid.Parse(ref); err == nil {
		return pathRef{user: user}, nil
	}
	return pathRef{}, badRequest(httperr.HttpInvalidIdentifierError, msgInvalidRef)
}

// parseID accepts only the id form of :ref.
func parseID(ref string) (int64, *requestError) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, badRequest(httperr.HttpInvalidIdentifierError, msgInvalidID)
	}
	return id, nil
}
