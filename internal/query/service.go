package query

import (
	"github.com/emis-lab/aggregate-query/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// Service exposes aggregate queries over HTTP. It keeps no state between
// requests; everything lives in the store.
type Service struct {
	store            storage.AggregateQueryStore
	baseURL          string
	maxBodySizeBytes int
}

// NewService builds the service. baseURL prefixes every link in responses
// and may be empty for host-relative links.
func NewService(store storage.AggregateQueryStore, baseURL string, maxBodySizeMB int) *Service {
	if store == nil {
		panic("query: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            store,
		baseURL:          baseURL,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the collection and item routes.
//
// The item segment is shared: an integer selects one query by id, a UUID
// on GET lists the queries owned by that user.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	queries := r.Group(CollectionPath)
	{
		queries.POST("", s.CreateHandler)
		queries.GET("", s.ListHandler)
		queries.GET("/:ref", s.GetHandler)
		queries.PATCH("/:ref", s.PatchHandler)
		queries.DELETE("/:ref", s.DeleteHandler)
	}
}
