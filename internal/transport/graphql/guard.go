package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

// guard rejects queries that are too deep or that introspect the schema
// when introspection is off. Unparseable queries pass through so the
// executor reports the syntax error.
type guard struct {
	maxDepth      int
	introspection bool
}

func (g guard) check(query string) *gqlerror.Error {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return nil
	}

	for _, op := range doc.Operations {
		w := walker{doc: doc, visiting: map[string]bool{}}
		depth := w.depth(op.SelectionSet)
		if !g.introspection && w.introspects {
			return rejection("introspection is disabled")
		}
		if g.maxDepth > 0 && depth > g.maxDepth {
			return rejection(fmt.Sprintf("query depth %d exceeds the limit of %d", depth, g.maxDepth))
		}
	}
	return nil
}

func rejection(msg string) *gqlerror.Error {
	return &gqlerror.Error{
		Message:    msg,
		Extensions: map[string]interface{}{"code": CodeValidation},
	}
}

type walker struct {
	doc         *ast.QueryDocument
	visiting    map[string]bool
	introspects bool
}

// depth returns the deepest field nesting under set, following fragment
// spreads. A fragment that spreads itself counts once.
func (w *walker) depth(set ast.SelectionSet) int {
	deepest := 0
	for _, sel := range set {
		var d int
		switch s := sel.(type) {
		case *ast.Field:
			if s.Name == "__schema" || s.Name == "__type" {
				w.introspects = true
			}
			d = 1 + w.depth(s.SelectionSet)
		case *ast.InlineFragment:
			d = w.depth(s.SelectionSet)
		case *ast.FragmentSpread:
			frag := w.doc.Fragments.ForName(s.Name)
			if frag == nil || w.visiting[s.Name] {
				continue
			}
			w.visiting[s.Name] = true
			d = w.depth(frag.SelectionSet)
			delete(w.visiting, s.Name)
		}
		deepest = max(deepest, d)
	}
	return deepest
}
