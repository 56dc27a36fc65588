package joiner

import "fmt"

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnSectionShape indicates a structural section that was neither a
	// mapping nor a list and was ignored.
	WarnSectionShape WarningCategory = "section_shape"
	// WarnTagShape indicates a tags entry that was not a tag object.
	WarnTagShape WarningCategory = "tag_shape"
)

// JoinWarning is a non-fatal issue encountered while organizing a fragment.
type JoinWarning struct {
	Category WarningCategory
	// Key is the top-level key being organized
	Key     string
	Message string
}

func (w JoinWarning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.Category, w.Key, w.Message)
}

// JoinWarnings is a list of warnings.
type JoinWarnings []JoinWarning

// Strings renders every warning.
func (ws JoinWarnings) Strings() []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

// ByCategory returns the warnings of one category.
func (ws JoinWarnings) ByCategory(c WarningCategory) JoinWarnings {
	var out JoinWarnings
	for _, w := range ws {
		if w.Category == c {
			out = append(out, w)
		}
	}
	return out
}
