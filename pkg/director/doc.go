// Package director is the generator's top-level entry point: it picks a
// cave profile for a requested depth, runs that profile's builder against a
// freshly cleared level, repairs connectivity, populates the result, and
// retries on any transient failure up to a configured attempt budget.
package director
