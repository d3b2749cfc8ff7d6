package catalog

import "strings"

// DefaultImageBaseURL is prepended to relative cover references.
const DefaultImageBaseURL = "https://jas2485.github.io/assignment-4/"

// ResolveImagePath maps a possibly-relative image reference to an absolute URL.
//
// References that already start with http:// or https:// are returned as is;
// anything else is appended to base. The result is not checked for
// reachability.
//
// Example:
//
//	ResolveImagePath("https://cdn.example/", "a.jpg")          // "https://cdn.example/a.jpg"
//	ResolveImagePath("https://cdn.example/", "https://x/b.jpg") // "https://x/b.jpg"
func ResolveImagePath(base, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return base + ref
}
