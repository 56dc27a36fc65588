package joiner

import "github.com/erraggy/routedoc/internal/maputil"

// DeepMerge merges second onto first and returns the result. Neither
// argument is modified and the result shares no maps or slices with them.
//
// Mappings merge key by key, recursively. For any other value the second
// argument wins, except that a nil in second never replaces a value in
// first: a nil only lands where first has no entry at all. Lists are leaves
// and are replaced, not merged element-wise.
func DeepMerge(first, second any) any {
	if second == nil {
		return maputil.DeepCopy(first)
	}
	sm, ok := second.(map[string]any)
	if !ok {
		return maputil.DeepCopy(second)
	}
	fm, ok := first.(map[string]any)
	if !ok {
		fm = nil
	}

	out := make(map[string]any, len(fm)+len(sm))
	for k, v := range fm {
		out[k] = maputil.DeepCopy(v)
	}
	for k, v := range sm {
		if v == nil {
			if _, exists := out[k]; !exists {
				out[k] = nil
			}
			continue
		}
		out[k] = DeepMerge(out[k], v)
	}
	return out
}
