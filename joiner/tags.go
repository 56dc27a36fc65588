package joiner

import (
	"fmt"

	"github.com/erraggy/routedoc/internal/maputil"
)

// MergeTags appends the tags in incoming to existing, skipping any tag whose
// name is already present. incoming may be a single tag object or a list of
// them. existing is not modified; appended tags are deep copies.
func MergeTags(existing []any, incoming any) ([]any, JoinWarnings) {
	var candidates []any
	switch t := incoming.(type) {
	case nil:
		return existing, nil
	case map[string]any:
		candidates = []any{t}
	case []any:
		candidates = t
	default:
		return existing, JoinWarnings{{
			Category: WarnTagShape,
			Key:      "tags",
			Message:  fmt.Sprintf("tags must be a tag object or a list, got %v", t),
		}}
	}

	// Build a set of existing tag names
	names := make(map[string]bool, len(existing)+len(candidates))
	for _, tag := range existing {
		if m, ok := tag.(map[string]any); ok {
			names[tagKey(m)] = true
		}
	}

	result := make([]any, len(existing), len(existing)+len(candidates))
	copy(result, existing)

	var warnings JoinWarnings
	for _, tag := range candidates {
		m, ok := tag.(map[string]any)
		if !ok {
			warnings = append(warnings, JoinWarning{
				Category: WarnTagShape,
				Key:      "tags",
				Message:  fmt.Sprintf("ignoring tag entry %v: not a tag object", tag),
			})
			continue
		}
		key := tagKey(m)
		if names[key] {
			continue
		}
		names[key] = true
		result = append(result, maputil.DeepCopy(m))
	}
	return result, warnings
}

// tagKey identifies a tag by its name. Tags without a name share one key.
func tagKey(tag map[string]any) string {
	return fmt.Sprintf("%#v", tag["name"])
}
