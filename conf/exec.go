package conf

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ShellRunner executes a command line and returns its captured standard
// output. The engine treats it as an opaque side-effecting collaborator: it
// does not sandbox or validate the command, and a non-zero exit must surface
// as an error.
type ShellRunner func(ctx context.Context, command string) (string, error)

// EnvLookup reports the value of an environment variable and whether it is
// set. Injectable so tests run against a fixed environment.
type EnvLookup func(name string) (string, bool)

// shellPath returns the shell used for command substitution: $SHELL when set,
// /bin/sh otherwise.
func shellPath() string {
	if shell, ok := os.LookupEnv("SHELL"); ok && shell != "" {
		return shell
	}

	return "/bin/sh"
}

// runShell is the default ShellRunner. The command's trailing newlines are
// trimmed from the captured output, matching shell command substitution.
func runShell(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, shellPath(), "-c", command)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", ErrShellCommand.Wrap(err).
			With(
				slog.String("command", command),
				slog.String("stderr", strings.TrimSpace(stderr.String())),
			)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}
