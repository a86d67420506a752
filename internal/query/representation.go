package query

import (
	v1 "github.com/emis-lab/aggregate-query/internal/api/v1"
)

// Representation is an aggregate query as returned to clients.
type Representation struct {
	*v1.AggregateQuery
	Links Links `json:"_links"`
}

// ItemEnvelope wraps a single query.
type ItemEnvelope struct {
	AggregateQuery Representation `json:"aggregate_query"`
}

// CollectionEnvelope wraps a list of queries. AggregateQueries is never
// null; an empty result is an empty array.
type CollectionEnvelope struct {
	AggregateQueries []Representation `json:"aggregate_queries"`
}

func (s *Service) represent(q *v1.AggregateQuery) Representation {
	return Representation{
		AggregateQuery: q,
		Links:          LinksFor(s.baseURL, q.ID),
	}
}

func (s *Service) item(q *v1.AggregateQuery) ItemEnvelope {
	return ItemEnvelope{AggregateQuery: s.represent(q)}
}

func (s *Service) collection(queries []*v1.AggregateQuery) CollectionEnvelope {
	out := make([]Representation, 0, len(queries))
	for _, q := range queries {
		out = append(out, s.represent(q))
	}
	return CollectionEnvelope{AggregateQueries: out}
}
