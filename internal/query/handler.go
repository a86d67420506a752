package query

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	httperr "github.com/emis-lab/aggregate-query/internal/core/errors"
	"github.com/emis-lab/aggregate-query/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgCreateFailed = "Failed to create aggregate query"
	msgListFailed   = "Failed to list aggregate queries"
	msgGetFailed    = "Failed to load aggregate query"
	msgPatchFailed  = "Failed to update aggregate query"
	msgDeleteFailed = "Failed to delete aggregate query"
)

// CreateHandler handles POST /aggregate_queries.
func (s *Service) CreateHandler(c *gin.Context) {
	body, reqErr := s.readBody(c)
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	req, reqErr := decodeCreateRequest(body)
	if reqErr != nil {
		slog.Warn("Rejected aggregate query", "error", reqErr.message, "status", reqErr.statusCode)
		writeError(c, reqErr)
		return
	}

	q, err := s.store.Create(c.Request.Context(), req.User, req.Model)
	if err != nil {
		writeError(c, storeError(err, 0, msgCreateFailed))
		return
	}

	slog.Info("Created aggregate query", "query_id", q.ID, "user", q.User)
	c.JSON(http.StatusCreated, s.item(q))
}

// ListHandler handles GET /aggregate_queries.
func (s *Service) ListHandler(c *gin.Context) {
	queries, err := s.store.List(c.Request.Context())
	if err != nil {
		writeError(c, storeError(err, 0, msgListFailed))
		return
	}
	c.JSON(http.StatusOK, s.collection(queries))
}

// GetHandler handles GET /aggregate_queries/:ref, where ref is either a
// query id or the id of the user whose queries to list.
func (s *Service) GetHandler(c *gin.Context) {
	ref, reqErr := parseRef(c.Param("ref"))
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	if !ref.isID {
		queries, err := s.store.ListByUser(c.Request.Context(), ref.user)
		if err != nil {
			writeError(c, storeError(err, 0, msgListFailed))
			return
		}
		c.JSON(http.StatusOK, s.collection(queries))
		return
	}

	q, err := s.store.Get(c.Request.Context(), ref.id)
	if err != nil {
		writeError(c, storeError(err, ref.id, msgGetFailed))
		return
	}
	c.JSON(http.StatusOK, s.item(q))
}

// PatchHandler handles PATCH /aggregate_queries/:id.
func (s *Service) PatchHandler(c *gin.Context) {
	id, reqErr := parseID(c.Param("ref"))
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	body, reqErr := s.readBody(c)
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	patch, reqErr := decodeStatusPatch(body)
	if reqErr != nil {
		slog.Warn("Rejected aggregate query patch", "query_id", id, "error", reqErr.message)
		writeError(c, reqErr)
		return
	}

	q, err := s.store.UpdateStatus(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, storeError(err, id, msgPatchFailed))
		return
	}

	slog.Info("Patched aggregate query",
		"query_id", q.ID,
		"edit_status", q.EditStatus,
		"execute_status", q.ExecuteStatus)
	c.JSON(http.StatusOK, s.item(q))
}

// DeleteHandler handles DELETE /aggregate_queries/:id and returns the
// query as it was before deletion.
func (s *Service) DeleteHandler(c *gin.Context) {
	id, reqErr := parseID(c.Param("ref"))
	if reqErr != nil {
		writeError(c, reqErr)
		return
	}

	q, err := s.store.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, storeError(err, id, msgDeleteFailed))
		return
	}

	slog.Info("Deleted aggregate query", "query_id", q.ID, "user", q.User)
	c.JSON(http.StatusOK, s.item(q))
}

// storeError maps a store failure to its HTTP shape. Unknown ids are a
// client error and are reported with 400, as the API has always done.
func storeError(err error, id int64, failMsg string) *requestError {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return &requestError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpNotFoundError,
			message:    fmt.Sprintf("Aggregate query %d does not exist", id),
		}
	case errors.Is(err, storage.ErrInvalidStatus):
		return unprocessable(err.Error())
	default:
		slog.Error(failMsg, "error", err, "query_id", id)
		return &requestError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    failMsg,
		}
	}
}

// writeError serializes a requestError as the JSON HTTP response.
func writeError(c *gin.Context, err *requestError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
