// Package catalog fetches the books document and provides the list
// transforms applied to it.
//
// # Fetching
//
// Use the Fetcher to retrieve books from the configured source:
//
//	f := catalog.NewFetcher(client, catalog.DefaultSourceURL, catalog.DefaultImageBaseURL, logger)
//	books, err := f.Fetch(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Relative imageUrl values are resolved with ResolveImagePath while
// decoding, so every returned book carries an absolute cover URL (or none).
//
// # Transforms
//
// SortByYear and FilterClassics never modify their input:
//
//	sorted := catalog.SortByYear(books)      // stable, ascending PublishYear
//	classics := catalog.FilterClassics(books) // PublishYear < 1960
package catalog
