package npm

import "strings"

// ValidName reports whether s is syntactically a valid npm package name:
// either a bare name ("react") or a scoped name with exactly two segments
// ("@acme/ui"). This is a deliberate syntactic filter, not the full registry
// name spec: its job is to reject filesystem paths and glob patterns supplied
// where a package name was expected, before resolution produces a confusing
// failure downstream.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, ".\\") {
		return false
	}
	switch strings.Count(s, "/") {
	case 0:
		return true
	case 1:
		return strings.HasPrefix(s, "@")
	default:
		return false
	}
}
