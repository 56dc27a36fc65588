package builder

import "github.com/erraggy/routedoc/parser"

// FragmentReport describes one @route fragment of a checked file.
type FragmentReport struct {
	Source     string   `json:"source"     yaml:"source"`
	Line       int      `json:"line"       yaml:"line"`
	Route      string   `json:"route"      yaml:"route"`
	Family     string   `json:"family,omitempty"     yaml:"family,omitempty"`
	Version    string   `json:"version,omitempty"    yaml:"version,omitempty"`
	Operations []string `json:"operations,omitempty" yaml:"operations,omitempty"`
	Error      string   `json:"error,omitempty"      yaml:"error,omitempty"`

	// Err is the parse or validation error behind Error
	Err error `json:"-" yaml:"-"`
}

// Valid reports whether the fragment parsed and validated.
func (r FragmentReport) Valid() bool {
	return r.Err == nil
}

// Check extracts and validates every fragment of one Go file without
// merging anything. Invalid fragments are reported, not returned as an
// error; the error is non-nil only when the file is not valid Go.
//
// src follows go/parser conventions: nil reads filename from disk.
func (b *Builder) Check(filename string, src any, route string) ([]FragmentReport, error) {
	frags, err := b.extractor.ExtractSource(filename, src, route)
	if err != nil {
		return nil, err
	}

	reports := make([]FragmentReport, 0, len(frags))
	for _, f := range frags {
		r := FragmentReport{Source: f.Source(), Line: f.Line, Route: route}
		doc, err := b.parser.Parse(route, f.Source(), f.Text)
		if err != nil {
			r.Err = err
			r.Error = err.Error()
		} else {
			r.Family = doc.Family.String()
			r.Version = doc.Version
			for _, m := range parser.HTTPMethods() {
				if _, ok := doc.Operations[m]; ok {
					r.Operations = append(r.Operations, m)
				}
			}
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Check runs Builder.Check with a Builder configured by opts.
func Check(filename string, src any, route string, opts ...Option) ([]FragmentReport, error) {
	return New(opts...).Check(filename, src, route)
}
