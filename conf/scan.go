package conf

import "regexp"

// Kind tags the grammar that recognized a placeholder.
type Kind int

const (
	// KindJSONRef is an internal reference to another key: ${path.expr}.
	// The payload ends at the first closing brace.
	KindJSONRef Kind = iota

	// KindShellCommand is an external command substitution: $(cmd). The
	// payload is handed verbatim to the shell runner; its captured stdout
	// becomes the replacement text.
	KindShellCommand

	// KindEnvVar is an environment variable reference: $NAME, where NAME
	// matches [A-Za-z_][A-Za-z0-9_]*.
	KindEnvVar
)

// String returns a string representation of the placeholder kind.
func (k Kind) String() string {
	switch k {
	case KindJSONRef:
		return "JsonRef"
	case KindShellCommand:
		return "ShellCommand"
	case KindEnvVar:
		return "EnvVar"
	default:
		return "Unknown"
	}
}

// Placeholder is a recognized substring of a scalar value awaiting
// substitution. Start and End delimit the whole placeholder (including its
// sigils) within the scanned string; Payload is the inner text.
type Placeholder struct {
	Kind    Kind
	Payload string
	Start   int
	End     int
}

// Splice replaces the placeholder's span within s with repl.
func (p Placeholder) Splice(s, repl string) string {
	return s[:p.Start] + repl + s[p.End:]
}

// The three placeholder grammars. All are regular: ${...} and $(...) payloads
// end at the first closing delimiter, so nesting is expressed by repeated
// substitution passes rather than by the grammar itself.
var (
	jsonRefPattern      = regexp.MustCompile(`\$\{([^}]*)\}`)
	shellCommandPattern = regexp.MustCompile(`\$\(([^)]*)\)`)
	envVarPattern       = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// scanOrder fixes the priority JsonRef > ShellCommand > EnvVar tested at each
// scan step.
var scanOrder = []struct {
	kind    Kind
	pattern *regexp.Regexp
}{
	{KindJSONRef, jsonRefPattern},
	{KindShellCommand, shellCommandPattern},
	{KindEnvVar, envVarPattern},
}

// Find returns the leftmost match of the highest-priority grammar matching
// anywhere in s. Grammar priority outranks position: an EnvVar earlier in the
// string does not shadow a ShellCommand later in it.
func Find(s string) (Placeholder, bool) {
	for _, g := range scanOrder {
		if p, ok := findKind(s, g.kind, g.pattern); ok {
			return p, true
		}
	}

	return Placeholder{}, false
}

// FindKind returns the leftmost match of the single grammar identified by
// kind, for callers that phase substitution by grammar.
func FindKind(s string, kind Kind) (Placeholder, bool) {
	for _, g := range scanOrder {
		if g.kind == kind {
			return findKind(s, kind, g.pattern)
		}
	}

	return Placeholder{}, false
}

func findKind(s string, kind Kind, pattern *regexp.Regexp) (Placeholder, bool) {
	loc := pattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return Placeholder{}, false
	}

	return Placeholder{
		Kind:    kind,
		Payload: s[loc[2]:loc[3]],
		Start:   loc[0],
		End:     loc[1],
	}, true
}

// HasPlaceholder reports whether s contains at least one recognizable
// placeholder. A value is resolved iff this returns false.
func HasPlaceholder(s string) bool {
	_, ok := Find(s)

	return ok
}
