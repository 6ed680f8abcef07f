package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
)

// Query evaluates a jq expression against the catalog's entries. The input
// is an array of objects with the keys category, filename, width, height,
// color and label.
func Query(ctx context.Context, c Catalog, expr string) ([]any, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing query: %w", err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}

	entries := c.Entries()
	input := make([]any, len(entries))
	for i, e := range entries {
		input[i] = map[string]any{
			"category": e.Category,
			"filename": e.Filename,
			"width":    e.Width,
			"height":   e.Height,
			"color":    e.Color,
			"label":    e.Label(),
		}
	}

	var results []any
	iter := code.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return nil, fmt.Errorf("running query: %w", err)
		}
		results = append(results, v)
	}
	return results, nil
}
