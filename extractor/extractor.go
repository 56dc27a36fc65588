package extractor

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"slices"
	"strings"

	"github.com/erraggy/routedoc/oaserrors"
	"github.com/erraggy/routedoc/parser"
	"golang.org/x/tools/go/ast/inspector"
)

// RouteTag is the comment tag that carries a fragment.
const RouteTag = "route"

// Fragment is the raw payload of one @route comment.
type Fragment struct {
	// Route is the route path of the file the comment was found in
	Route string
	// File is the source file name as given to the extractor
	File string
	// Line is the 1-based line the comment starts on
	Line int
	// Text is the YAML payload of the @route tag
	Text string

	pos token.Pos
}

// Source returns "file:line", used to identify the fragment in errors.
func (f Fragment) Source() string {
	if f.File == "" {
		return fmt.Sprintf("line %d", f.Line)
	}
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

// Extractor finds @route fragments in Go syntax trees.
type Extractor struct {
	// Tag is the tag title to look for. Defaults to RouteTag.
	Tag string
	// Logger receives a debug entry for every skipped block comment
	Logger parser.Logger
}

// New creates an Extractor looking for @route tags.
func New() *Extractor {
	return &Extractor{Tag: RouteTag}
}

func (e *Extractor) log() parser.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return parser.NopLogger{}
}

func (e *Extractor) tag() string {
	if e.Tag != "" {
		return e.Tag
	}
	return RouteTag
}

// Extract returns the fragments of every block comment attached to a node
// of file, in source order. A comment qualifies when it is a /* */ comment
// associated with a node (as its doc, line or inner comment) and carries a
// non-empty tag. Other comments are skipped without error.
func (e *Extractor) Extract(fset *token.FileSet, file *ast.File, routePath string) []Fragment {
	cmap := ast.NewCommentMap(fset, file, file.Comments)
	insp := inspector.New([]*ast.File{file})
	filename := fset.Position(file.Pos()).Filename

	seen := make(map[*ast.CommentGroup]bool)
	var out []Fragment
	insp.Preorder(nil, func(n ast.Node) {
		for _, group := range cmap[n] {
			if seen[group] {
				continue
			}
			seen[group] = true
			for _, c := range group.List {
				if !strings.HasPrefix(c.Text, "/*") {
					continue
				}
				line := fset.Position(c.Slash).Line
				tag, ok := FindTag(ParseTags(c.Text), e.tag())
				if !ok {
					e.log().Debug("extractor: block comment without tag", "file", filename, "line", line, "tag", e.tag())
					continue
				}
				if strings.TrimSpace(tag.Description) == "" {
					e.log().Debug("extractor: empty tag skipped", "file", filename, "line", line, "tag", e.tag())
					continue
				}
				out = append(out, Fragment{
					Route: routePath,
					File:  filename,
					Line:  line,
					Text:  tag.Description,
					pos:   c.Slash,
				})
			}
		}
	})

	slices.SortStableFunc(out, func(a, b Fragment) int {
		return int(a.pos) - int(b.pos)
	})
	return out
}

// ExtractSource parses Go source and extracts its fragments. src may be
// nil, in which case filename is read from disk. A file that does not parse
// yields an *oaserrors.ParseError.
func (e *Extractor) ExtractSource(filename string, src any, routePath string) ([]Fragment, error) {
	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, filename, src, goparser.ParseComments|goparser.SkipObjectResolution)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Source:  filename,
			Route:   routePath,
			Message: "source is not valid Go",
			Cause:   err,
		}
	}
	return e.Extract(fset, file, routePath), nil
}

// Extract runs a default Extractor over file.
func Extract(fset *token.FileSet, file *ast.File, routePath string) []Fragment {
	return New().Extract(fset, file, routePath)
}

// ExtractSource runs a default Extractor over Go source.
func ExtractSource(filename string, src any, routePath string) ([]Fragment, error) {
	return New().ExtractSource(filename, src, routePath)
}
