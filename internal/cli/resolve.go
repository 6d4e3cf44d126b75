package cli

import (
	"fmt"
	"strings"
)

// resolveID expands ref, a full identifier or a unique prefix or suffix of
// one, into the full identifier.
func resolveID[T any](items []T, idOf func(T) string, ref string, notFound error) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", usageError("an id is required")
	}
	var matches []string
	for _, item := range items {
		id := idOf(item)
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) || strings.HasSuffix(id, ref) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", notFound
	case 1:
		return matches[0], nil
	}
	return "", usageError(fmt.Sprintf("id %q is ambiguous: matches %s", ref, strings.Join(matches, ", ")))
}
