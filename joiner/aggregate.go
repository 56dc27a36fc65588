package joiner

import (
	"fmt"

	"github.com/erraggy/routedoc/internal/maputil"
	"github.com/erraggy/routedoc/parser"
)

// Aggregate is the specification tree accumulated across the fragments of
// one generation run.
//
// An Aggregate is not safe for concurrent use. It is meant to be owned by a
// single goroutine for its whole life.
type Aggregate struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger parser.Logger

	doc      map[string]any
	warnings JoinWarnings
}

// NewAggregate returns an Aggregate with every structural section, the tags
// list and x-webhooks initialized and empty.
func NewAggregate() *Aggregate {
	doc := make(map[string]any, len(structuralSections)+2)
	for _, name := range structuralSections {
		doc[name] = emptySection(name)
	}
	doc["tags"] = []any{}
	doc[WebhooksKey] = map[string]any{}
	return &Aggregate{doc: doc}
}

// Wrap returns an Aggregate that organizes directly into doc. Missing
// sections are created on first use.
func Wrap(doc map[string]any) *Aggregate {
	if doc == nil {
		doc = make(map[string]any)
	}
	return &Aggregate{doc: doc}
}

// emptySection returns the zero value of a structural section. consumes and
// produces are lists of media types; the others are mappings.
func emptySection(name string) any {
	switch name {
	case "consumes", "produces":
		return []any{}
	default:
		return map[string]any{}
	}
}

func (a *Aggregate) log() parser.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return parser.NopLogger{}
}

// Map returns the underlying tree. The caller must not use it concurrently
// with further merges.
func (a *Aggregate) Map() map[string]any {
	return a.doc
}

// Section returns the value stored under a top-level key.
func (a *Aggregate) Section(name string) any {
	return a.doc[name]
}

// Paths returns the paths section, creating it if necessary.
func (a *Aggregate) Paths() map[string]any {
	return a.mapSection("paths")
}

// Webhooks returns the x-webhooks section, or nil if nothing was merged there.
func (a *Aggregate) Webhooks() map[string]any {
	m, _ := a.doc[WebhooksKey].(map[string]any)
	return m
}

// Tags returns the de-duplicated tag list.
func (a *Aggregate) Tags() []any {
	tags, _ := a.doc["tags"].([]any)
	return tags
}

// Warnings returns the non-fatal issues recorded so far.
func (a *Aggregate) Warnings() JoinWarnings {
	return a.warnings
}

func (a *Aggregate) mapSection(name string) map[string]any {
	m, ok := a.doc[name].(map[string]any)
	if !ok {
		m = make(map[string]any)
		a.doc[name] = m
	}
	return m
}

func (a *Aggregate) warn(category WarningCategory, key, format string, args ...any) {
	w := JoinWarning{Category: category, Key: key, Message: fmt.Sprintf(format, args...)}
	a.warnings = append(a.warnings, w)
	a.log().Warn("joiner: "+w.Message, "key", key, "category", string(category))
}

// Organize merges fragment[key] into the aggregate according to
// Classify(key). A key absent from fragment is a no-op.
func (a *Aggregate) Organize(fragment map[string]any, key string) {
	value, ok := fragment[key]
	if !ok {
		return
	}
	a.organize(key, value)
}

// OrganizeAll organizes every key of fragment, in sorted key order.
func (a *Aggregate) OrganizeAll(fragment map[string]any) {
	for _, key := range maputil.SortedKeys(fragment) {
		a.organize(key, fragment[key])
	}
}

// AddDocument merges every contribution of a parsed fragment.
func (a *Aggregate) AddDocument(doc *parser.Document) {
	for _, c := range doc.Contributions() {
		a.organize(c.Key, c.Value)
	}
}

func (a *Aggregate) organize(key string, value any) {
	switch Classify(key) {
	case SectionWebhooks:
		a.doc[WebhooksKey] = DeepMerge(a.doc[WebhooksKey], value)
	case SectionVendorExtension:
		a.log().Debug("joiner: vendor extension not merged", "key", key)
	case SectionStructural:
		a.organizeStructural(key, value)
	case SectionTags:
		tags, warnings := MergeTags(a.Tags(), value)
		a.doc["tags"] = tags
		for _, w := range warnings {
			a.warn(w.Category, key, "%s", w.Message)
		}
	case SectionRoute:
		paths := a.Paths()
		paths[key] = mergeEntry(paths[key], value)
	}
}

// organizeStructural merges each named entry of value into the section of
// the same name, leaving sibling entries untouched. List sections merge
// position by position.
func (a *Aggregate) organizeStructural(key string, value any) {
	switch entries := value.(type) {
	case nil:
		return
	case map[string]any:
		existing := a.doc[key]
		if existing != nil {
			if _, ok := existing.(map[string]any); !ok {
				a.warn(WarnSectionShape, key, "cannot merge a mapping into a %s section", shape(existing))
				return
			}
		}
		section := a.mapSection(key)
		for name, v := range entries {
			section[name] = mergeEntry(section[name], v)
		}
	case []any:
		existing := a.doc[key]
		list, ok := existing.([]any)
		if existing != nil && !ok {
			a.warn(WarnSectionShape, key, "cannot merge a list into a %s section", shape(existing))
			return
		}
		for i, v := range entries {
			if i < len(list) {
				list[i] = DeepMerge(list[i], v)
			} else {
				list = append(list, DeepMerge(nil, v))
			}
		}
		a.doc[key] = list
	default:
		a.warn(WarnSectionShape, key, "section is a %s, not a mapping", shape(value))
	}
}

// mergeEntry merges value into a named entry of a section. An entry that
// is null on both sides becomes an empty mapping.
func mergeEntry(existing, value any) any {
	if merged := DeepMerge(existing, value); merged != nil {
		return merged
	}
	return map[string]any{}
}

// Organize merges fragment[key] into agg. See [Aggregate.Organize].
func Organize(agg *Aggregate, fragment map[string]any, key string) {
	agg.Organize(fragment, key)
}

// OrganizeAll merges every key of fragment into agg.
func OrganizeAll(agg *Aggregate, fragment map[string]any) {
	agg.OrganizeAll(fragment)
}

func shape(v any) string {
	switch v.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	default:
		return "scalar"
	}
}
