// Package controller implements the three user actions of the catalog
// viewer: load, sort and filter.
//
// # Controller
//
// The Controller owns no globals. Its held list lives in an injected State,
// its output goes to an injected render.Renderer, and status messages are
// reported through a callback:
//
//	state := controller.NewState()
//	ctrl := controller.New(state, fetcher, renderer, func(ev controller.StatusEvent) {
//	    fmt.Println(ev.Message)
//	})
//
//	_ = ctrl.Load(ctx)   // "Loaded 12 books successfully!"
//	_ = ctrl.Sort(ctx)   // "Books sorted by publication year!"
//	_ = ctrl.Filter(ctx) // "Found 4 classic books!"
//
// # Held list
//
// Only Load replaces the held list. Sort and Filter render new lists
// computed from it and leave it untouched, so Filter after Sort still
// filters the loaded order.
//
// # Overlapping loads
//
// Load calls made while another Load is outstanding are coalesced: one
// fetch is issued and every caller receives its result.
package controller
