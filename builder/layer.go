package builder

import (
	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/erraggy/routedoc/joiner"
)

// Layer returns a copy of definition with the aggregate merged underneath
// it: on any conflicting leaf the definition's value wins. paths is always
// present in the result. Other sections are layered only when the aggregate
// has something in them, and tags are de-duplicated by name with the
// definition's tags first.
func Layer(definition map[string]any, agg *joiner.Aggregate) map[string]any {
	out, _ := maputil.DeepCopy(definition).(map[string]any)
	if out == nil {
		out = make(map[string]any)
	}

	out["paths"] = joiner.DeepMerge(agg.Paths(), definition["paths"])

	for _, name := range joiner.StructuralSections() {
		if name == "paths" {
			continue
		}
		section := agg.Section(name)
		if empty(section) {
			continue
		}
		out[name] = joiner.DeepMerge(section, definition[name])
	}

	if webhooks := agg.Webhooks(); len(webhooks) > 0 {
		out[joiner.WebhooksKey] = joiner.DeepMerge(webhooks, definition[joiner.WebhooksKey])
	}

	if tags := agg.Tags(); len(tags) > 0 {
		base, _ := maputil.DeepCopy(definition["tags"]).([]any)
		merged, _ := joiner.MergeTags(base, tags)
		out["tags"] = merged
	}
	return out
}

func empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
