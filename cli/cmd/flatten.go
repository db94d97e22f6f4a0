package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/subst/conf"
	"github.com/ardnew/subst/log"
)

// Flatten prints the flattened path map of a source document without
// resolving any placeholders.
type Flatten struct {
	Source string `arg:"" help:"Source document file or '-' for stdin" name:"source" default:"-"`

	Output string `help:"Output document format" default:"json" enum:"json,yaml" short:"o"`
	Indent int    `help:"Indent width for JSON output" default:"2" short:"i"`
}

// Run executes the flatten command.
func (c *Flatten) Run(ctx context.Context) error {
	data, err := readSource(c.Source)
	if err != nil {
		return err
	}

	flat, err := conf.FlattenJSON(data)
	if err != nil {
		return conf.WrapError(err).
			With(slog.String("command", "flatten"))
	}

	log.DebugContext(ctx, "flattened document",
		slog.String("source", c.Source),
		slog.Int("paths", len(flat)),
	)

	return writeDocument(os.Stdout, map[string]any(flat), c.Output, c.Indent)
}
