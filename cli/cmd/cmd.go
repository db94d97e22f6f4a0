package cmd

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// readSource reads the entire source document from the named file,
// or from standard input when name is "-".
func readSource(name string) ([]byte, error) {
	var file *os.File
	if name == "-" {
		file = os.Stdin
	} else {
		var err error

		file, err = os.Open(name)
		if err != nil {
			return nil, ErrReadSource.Wrap(err).
				With(slog.String("source", name))
		}
		defer file.Close()
	}

	data, err := io.ReadAll(bufio.NewReader(file))
	if err != nil {
		return nil, ErrReadSource.Wrap(err).
			With(slog.String("source", name))
	}

	return data, nil
}

// writeDocument marshals doc in the given format ("json" or "yaml") and
// writes it to w followed by a trailing newline.
func writeDocument(w io.Writer, doc any, format string, indent int) error {
	var (
		out []byte
		err error
	)

	switch format {
	case "yaml":
		out, err = yaml.Marshal(doc)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

	default:
		out, err = json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}
	}

	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	_, err = w.Write(out)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
