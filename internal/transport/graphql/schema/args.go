package schema

import (
	"strings"

	"github.com/heartmarshall/swsgraph/internal/domain"
)

func argString(args map[string]any, name string) *string {
	if v, ok := args[name].(string); ok {
		return &v
	}
	return nil
}

func argInt(args map[string]any, name string) *int {
	if v, ok := args[name].(int); ok {
		return &v
	}
	return nil
}

func argBool(args map[string]any, name string) *bool {
	if v, ok := args[name].(bool); ok {
		return &v
	}
	return nil
}

// argQuarter normalizes an optional quarter argument.
func argQuarter(args map[string]any, name string) (*string, error) {
	s := argString(args, name)
	if s == nil {
		return nil, nil
	}
	q, err := domain.NormalizeQuarter(*s)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// argRequired returns a non-blank string argument.
func argRequired(args map[string]any, name string) (string, error) {
	s := argString(args, name)
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", domain.NewValidationError(name, "required")
	}
	return strings.TrimSpace(*s), nil
}

// termArgs validates the Year and Quarter arguments.
func termArgs(args map[string]any) (domain.TermKey, error) {
	year, _ := args["Year"].(int)
	quarter, _ := args["Quarter"].(string)
	return domain.NewTermKey(year, quarter)
}
