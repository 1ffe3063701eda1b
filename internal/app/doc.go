// Package app wires the CLI surface to the search pipeline. The entry point
// returns an exit code instead of calling os.Exit so the whole application is
// testable against in-memory writers.
package app
