package query

import (
	"strconv"
	"strings"
)

// CollectionPath is the route of the aggregate query collection.
const CollectionPath = "/aggregate_queries"

// Links are the hyperlinks attached to every returned aggregate query.
type Links struct {
	Self       string `json:"self"`
	Collection string `json:"collection"`
}

// CollectionURL returns the collection URI under baseURL.
// An empty baseURL yields a host-relative path.
func CollectionURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + CollectionPath
}

// ItemURL returns the canonical URI of the query with the given id.
func ItemURL(baseURL string, id int64) string {
	return CollectionURL(baseURL) + "/" + strconv.FormatInt(id, 10)
}

// LinksFor builds the links of one query. It depends on nothing but its
// arguments, so it can be used without a router.
func LinksFor(baseURL string, id int64) Links {
	return Links{
		Self:       ItemURL(baseURL, id),
		Collection: CollectionURL(baseURL),
	}
}
