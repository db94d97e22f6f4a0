package conf

import "testing"

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    Kind
		payload string
		none    bool
	}{
		{name: "json ref", input: "a ${x.y} b", kind: KindJSONRef, payload: "x.y"},
		{name: "shell command", input: "a $(uname -s) b", kind: KindShellCommand, payload: "uname -s"},
		{name: "env var", input: "a $HOME b", kind: KindEnvVar, payload: "HOME"},
		{name: "payload ends at first brace", input: "${a.b}${c}", kind: KindJSONRef, payload: "a.b"},
		{name: "empty ref payload", input: "${}", kind: KindJSONRef, payload: ""},
		{name: "empty command payload", input: "$()", kind: KindShellCommand, payload: ""},
		{name: "underscore env name", input: "$_X9", kind: KindEnvVar, payload: "_X9"},
		{name: "ref outranks earlier env", input: "$USER and ${key}", kind: KindJSONRef, payload: "key"},
		{name: "command outranks earlier env", input: "$USER and $(id -u)", kind: KindShellCommand, payload: "id -u"},
		{name: "bare dollar", input: "cost is $5", none: true},
		{name: "no placeholders", input: "plain text", none: true},
		{name: "dollar at end", input: "trailing $", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Find(tt.input)
			if tt.none {
				if ok {
					t.Fatalf("expected no placeholder, found %+v", p)
				}

				return
			}

			if !ok {
				t.Fatal("expected a placeholder, found none")
			}

			if p.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", p.Kind, tt.kind)
			}

			if p.Payload != tt.payload {
				t.Errorf("payload = %q, want %q", p.Payload, tt.payload)
			}
		})
	}
}

func TestFindKind(t *testing.T) {
	input := "$USER ${ref} $(cmd)"

	p, ok := FindKind(input, KindJSONRef)
	if !ok || p.Payload != "ref" {
		t.Errorf("FindKind(JsonRef) = %+v, %v; want payload %q", p, ok, "ref")
	}

	p, ok = FindKind(input, KindShellCommand)
	if !ok || p.Payload != "cmd" {
		t.Errorf("FindKind(ShellCommand) = %+v, %v; want payload %q", p, ok, "cmd")
	}

	// The env grammar also matches the sigil-prefixed ref name, so the
	// leftmost env match here is $USER.
	p, ok = FindKind(input, KindEnvVar)
	if !ok || p.Payload != "USER" {
		t.Errorf("FindKind(EnvVar) = %+v, %v; want payload %q", p, ok, "USER")
	}

	if _, ok := FindKind("plain", KindJSONRef); ok {
		t.Error("expected no match in plain text")
	}
}

func TestSplice(t *testing.T) {
	s := "img:${tag}-final"

	p, ok := Find(s)
	if !ok {
		t.Fatal("expected a placeholder")
	}

	if got := p.Splice(s, "v2"); got != "img:v2-final" {
		t.Errorf("Splice = %q, want %q", got, "img:v2-final")
	}
}

func TestHasPlaceholder(t *testing.T) {
	if !HasPlaceholder("${a}") {
		t.Error("expected placeholder in ${a}")
	}

	if HasPlaceholder("resolved text") {
		t.Error("expected no placeholder in plain text")
	}
}
