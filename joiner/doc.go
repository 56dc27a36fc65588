// Package joiner merges validated @route fragments into one aggregate
// specification.
//
// Import path: github.com/erraggy/routedoc/joiner
//
// # Overview
//
// Each top-level key of a fragment is classified with [Classify] and merged
// into an [Aggregate] accordingly:
//
//   - x-webhooks is deep-merged at the root
//   - any other x- key is not merged
//   - structural sections (components, definitions, paths, ...) merge entry
//     by entry, so a fragment never clobbers entries it does not mention
//   - tags are appended unless a tag with the same name already exists
//   - anything else is a route path and is deep-merged into paths
//
// Deep merges follow [DeepMerge]: the second value wins, except that a null
// never erases an existing value. Several fragments describing different
// methods of the same route therefore combine into one path item.
//
// # Usage
//
//	agg := joiner.NewAggregate()
//	for _, doc := range docs {
//	    agg.AddDocument(doc)
//	}
//	paths := agg.Paths()
//
// An Aggregate is owned by one goroutine. Parse fragments concurrently if
// you like, but merge them from a single goroutine.
package joiner
