package graphql

import (
	"bytes"
	"net/http"
	"slices"
	"strings"

	gql "github.com/graphql-go/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

var builtinScalars = map[string]bool{
	"String": true, "Int": true, "Float": true, "Boolean": true, "ID": true,
}

// PrintSchema renders the schema in SDL. Types and fields are sorted by
// name, with Query first.
func PrintSchema(s gql.Schema) string {
	doc := &ast.SchemaDocument{}

	names := make([]string, 0, len(s.TypeMap()))
	for name := range s.TypeMap() {
		if strings.HasPrefix(name, "__") || builtinScalars[name] {
			continue
		}
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == "Query":
			return -1
		case b == "Query":
			return 1
		}
		return strings.Compare(a, b)
	})

	for _, name := range names {
		switch t := s.TypeMap()[name].(type) {
		case *gql.Object:
			doc.Definitions = append(doc.Definitions, objectDefinition(t))
		case *gql.Scalar:
			doc.Definitions = append(doc.Definitions, &ast.Definition{
				Kind:        ast.Scalar,
				Name:        t.Name(),
				Description: t.Description(),
			})
		}
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.String()
}

func objectDefinition(t *gql.Object) *ast.Definition {
	def := &ast.Definition{Kind: ast.Object, Name: t.Name(), Description: t.Description()}

	fields := t.Fields()
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		f := fields[name]
		fd := &ast.FieldDefinition{Name: f.Name, Description: f.Description, Type: astType(f.Type)}
		args := slices.Clone(f.Args)
		slices.SortFunc(args, func(a, b *gql.Argument) int { return strings.Compare(a.Name(), b.Name()) })
		for _, a := range args {
			fd.Arguments = append(fd.Arguments, &ast.ArgumentDefinition{
				Name:        a.Name(),
				Description: a.Description(),
				Type:        astType(a.Type),
			})
		}
		def.Fields = append(def.Fields, fd)
	}
	return def
}

func astType(t gql.Type) *ast.Type {
	switch t := t.(type) {
	case *gql.NonNull:
		inner := astType(t.OfType)
		inner.NonNull = true
		return inner
	case *gql.List:
		return ast.ListType(astType(t.OfType), nil)
	default:
		return ast.NamedType(t.Name(), nil)
	}
}

// SDLHandler serves the schema in SDL.
func SDLHandler(s gql.Schema) http.HandlerFunc {
	sdl := PrintSchema(s)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sdl))
	}
}
