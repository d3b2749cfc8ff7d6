// Package ioutils provides file system helpers for writing catalog output.
//
// # File Operations
//
//	// Write rendered cards, creating parent directories as needed
//	err := ioutils.WriteFile(ctx, "out/catalog.html", page)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("out/reports")
//
// WriteFile never leaves a half-written file behind: data goes to a
// temporary file in the same directory which is then renamed into place.
package ioutils
