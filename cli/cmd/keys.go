package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/subst/conf"
	"github.com/ardnew/subst/log"
)

// Keys lists the flattened document keys, optionally filtered by a fuzzy
// match pattern.
type Keys struct {
	Source  string `arg:"" help:"Source document file or '-' for stdin" name:"source" default:"-"`
	Pattern string `arg:"" help:"Fuzzy filter pattern"                  name:"pattern" optional:""`
}

// Run executes the keys command.
func (c *Keys) Run(ctx context.Context) error {
	data, err := readSource(c.Source)
	if err != nil {
		return err
	}

	flat, err := conf.FlattenJSON(data)
	if err != nil {
		return conf.WrapError(err).
			With(slog.String("command", "keys"))
	}

	keys := flat.Keys()
	if c.Pattern != "" {
		matches := fuzzy.Find(c.Pattern, keys)

		keys = keys[:0]
		for _, match := range matches {
			keys = append(keys, match.Str)
		}
	}

	log.DebugContext(ctx, "listing keys",
		slog.String("source", c.Source),
		slog.String("pattern", c.Pattern),
		slog.Int("count", len(keys)),
	)

	for _, key := range keys {
		fmt.Println(key)
	}

	return nil
}
