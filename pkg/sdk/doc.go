// Package searchd provides an HTTP client for the searchd search API.
//
// The client talks to a running searchd server over its REST endpoints.
// For embedding the search core directly over a database connection, use
// the root module package instead.
//
//	client, _ := searchd.New("http://localhost:8080",
//	    searchd.WithAPIKey("secret"),
//	)
//
//	resp, _ := client.Search(ctx, searchd.SearchRequest{
//	    Query: "wedding photography",
//	    Filters: &searchd.Filters{
//	        Categories:   []string{"photo"},
//	        VerifiedOnly: true,
//	    },
//	    SortBy: "price",
//	})
//
// API errors unwrap to package sentinels, so
// errors.Is(err, searchd.ErrNotFound) works across the wire.
package searchd
