package protocol

import "strings"

// ParsedURL is the canonical form of a request path: the two-segment
// resource path plus an optional trailing identifier.
type ParsedURL struct {
	// Path is the separator-joined first two segments with a leading "/",
	// e.g. "/api/products".
	Path string

	// HasID reports whether a trailing identifier segment was present.
	HasID bool

	// ID is the trailing segment, kept as text. Identifier format is
	// resource-defined and not validated here.
	ID string
}

// ParseURL converts a raw path into its canonical (path, id) form.
//
// Leading and trailing separators are stripped and the rest is split on "/".
// A valid path needs at least a root segment plus a resource-name segment
// ("api/orders"); anything shorter fails. Empty segments between separators
// still count as segments.
func ParseURL(url string) (ParsedURL, bool) {
	if url == "" {
		return ParsedURL{}, false
	}

	parts := strings.Split(strings.Trim(url, "/"), "/")
	if len(parts) < 2 {
		return ParsedURL{}, false
	}

	parsed := ParsedURL{
		Path: "/" + strings.Join(parts[:2], "/"),
	}

	if len(parts) > 2 {
		parsed.HasID = true
		parsed.ID = parts[len(parts)-1]
	}

	return parsed, true
}
