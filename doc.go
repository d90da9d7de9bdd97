// Package searchd provides an embedded Go client for the searchd faceted
// service-search core backed by Redis or Valkey.
//
// The client wires the catalog repository and search services directly over
// a database connection, without going through the HTTP API. For a client
// that talks to a running searchd server over HTTP, use pkg/sdk instead.
//
// Usage:
//
//	client, _ := searchd.New(ctx, searchd.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	page, _ := client.Search(ctx, searchd.SearchQuery{
//	    Query: "wedding photography",
//	    Filters: &searchd.Filters{
//	        Categories:   []string{"photo"},
//	        VerifiedOnly: true,
//	    },
//	    SortBy: "price",
//	})
//
// Facet counts in the result follow the facets-minus-self rule: each
// dimension's counts are computed with every active filter applied except
// that dimension's own.
package searchd
