// Package docent is a headless engine for guided product tours: a
// linear sequence of steps, each anchored to a target on a host
// surface (a DOM bridge, a terminal layout, a scene graph, a test
// stub).
//
// The engine owns the tour lifecycle (idle, active, paused,
// completed), the step-change protocol with awaited lifecycle hooks,
// target resolution and measurement, and auto-advance scheduling. It
// never draws. Renderers consume immutable State snapshots through
// observers or the Headless extension point, and the overlay
// subpackage turns a target rectangle into an SVG cutout path.
//
// A minimal tour:
//
//	tour, err := docent.New(surface, []docent.Step{
//		{ID: "search", Target: docent.Query("#search"), Title: "Search"},
//		{ID: "filters", Target: docent.Query("#filters"), Title: "Filters"},
//	}, docent.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	tour.AddObserver(renderer)
//	if err := tour.Start(context.Background()); err != nil {
//		log.Fatal(err)
//	}
package docent
