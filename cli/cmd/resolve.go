package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/subst/conf"
	"github.com/ardnew/subst/log"
)

// Resolve resolves all placeholders in a source document and writes the
// resolved document to standard output.
type Resolve struct {
	Source string `arg:"" help:"Source document file or '-' for stdin" name:"source" default:"-"`

	Output     string `help:"Output document format"                                  default:"json" enum:"json,yaml" short:"o"`
	Indent     int    `help:"Indent width for JSON output"                            default:"2"    short:"i"`
	MaxDepth   int    `help:"Maximum reference resolution depth"                      default:"100"`
	FirstMatch bool   `help:"Use the first match when a shorthand key is ambiguous."  negatable:""`
}

// Run executes the resolve command.
func (c *Resolve) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	data, err := readSource(c.Source)
	if err != nil {
		return err
	}

	flat, err := conf.FlattenJSON(data)
	if err != nil {
		return conf.WrapError(err).
			With(slog.String("command", "resolve"))
	}

	log.DebugContext(ctx, "flattened document",
		slog.String("source", c.Source),
		slog.Int("paths", len(flat)),
		slog.Int("pending", len(flat.Pending())),
	)

	resolver := conf.NewResolver(flat,
		conf.WithUniqueMatch(!c.FirstMatch),
		conf.WithMaxDepth(c.MaxDepth),
		conf.WithLogger(log.Default().Logger),
	)

	doc, err := resolver.Document(ctx)
	if err != nil {
		return conf.WrapError(err).
			With(slog.String("command", "resolve"))
	}

	return writeDocument(os.Stdout, doc, c.Output, c.Indent)
}
