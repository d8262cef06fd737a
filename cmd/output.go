package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/s0up4200/rightnow/filter"
	"github.com/s0up4200/rightnow/rightnow"
)

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// attributeList flattens entities for output. Nil entries stay null.
func attributeList[T filter.Subject](items []T) ([]map[string]any, error) {
	out := make([]map[string]any, len(items))
	for i, item := range items {
		if isNil(item) {
			continue
		}
		attrs, err := item.Attributes()
		if err != nil {
			return nil, err
		}
		out[i] = attrs
	}
	return out, nil
}

// isNil reports whether item is the zero value, a nil pointer for entities
func isNil[T filter.Subject](item T) bool {
	var zero T
	return any(item) == any(zero)
}

// selectFilter resolves --filter and --preset into a compiled filter, or nil
func selectFilter(expression, preset string) (filter.CompiledFilter, error) {
	switch {
	case expression != "" && preset != "":
		return nil, fmt.Errorf("--filter and --preset are mutually exclusive")
	case expression != "":
		return filters.Compile(expression)
	case preset != "":
		f, ok := filters.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		return f, nil
	}
	return nil, nil
}

// applyFilter keeps the items matching f, skipping nil entries
func applyFilter[T filter.Subject](ctx context.Context, f filter.CompiledFilter, items []T) ([]T, error) {
	if f == nil {
		return items, nil
	}

	present := make([]T, 0, len(items))
	for _, item := range items {
		if !isNil(item) {
			present = append(present, item)
		}
	}

	matches, err := filter.Apply(ctx, filters.Evaluator(), f, present)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("filter", f.Expression()).
		Int("total", len(items)).
		Int("matched", len(matches)).
		Msg("Applied filter")

	return matches, nil
}

// parseParams turns key=value arguments into request parameters
func parseParams(args []string) (rightnow.Params, error) {
	params := make(rightnow.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		params[key] = value
	}
	return params, nil
}
