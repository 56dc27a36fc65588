package joiner

import "strings"

// Section is the merge treatment a top-level fragment key receives.
type Section int

const (
	// SectionWebhooks is the reserved x-webhooks root section, deep-merged as is.
	SectionWebhooks Section = iota + 1
	// SectionVendorExtension is any other x- key. It is not merged.
	SectionVendorExtension
	// SectionStructural is a shared section merged entry by entry.
	SectionStructural
	// SectionTags is the tags list, de-duplicated by name.
	SectionTags
	// SectionRoute is a bare route path, deep-merged into paths.
	SectionRoute
)

func (s Section) String() string {
	switch s {
	case SectionWebhooks:
		return "webhooks"
	case SectionVendorExtension:
		return "vendor-extension"
	case SectionStructural:
		return "structural"
	case SectionTags:
		return "tags"
	case SectionRoute:
		return "route"
	default:
		return "unknown"
	}
}

// WebhooksKey is the vendor-extension key that is merged at the root.
const WebhooksKey = "x-webhooks"

var structuralSections = []string{
	"components",
	"consumes",
	"produces",
	"paths",
	"schemas",
	"securityDefinitions",
	"responses",
	"parameters",
	"definitions",
	"channels",
}

var structuralSet = func() map[string]bool {
	m := make(map[string]bool, len(structuralSections))
	for _, s := range structuralSections {
		m[s] = true
	}
	return m
}()

// StructuralSections returns the names of the sections merged entry by entry.
func StructuralSections() []string {
	out := make([]string, len(structuralSections))
	copy(out, structuralSections)
	return out
}

// IsStructural reports whether key names a structural section.
func IsStructural(key string) bool {
	return structuralSet[key]
}

// Classify decides how a top-level key is merged. The rules apply in order:
// x-webhooks, other x- keys, the structural sections, tags, and finally
// anything else as a route path.
func Classify(key string) Section {
	switch {
	case key == WebhooksKey:
		return SectionWebhooks
	case strings.HasPrefix(key, "x-"):
		return SectionVendorExtension
	case structuralSet[key]:
		return SectionStructural
	case key == "tags":
		return SectionTags
	default:
		return SectionRoute
	}
}
