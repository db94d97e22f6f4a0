package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	value, err := r.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return value
}

func TestLoadConfig(t *testing.T) {
	config := `
log_level: debug
log_format: text
log_pretty: true
indent: 4
`

	r, err := loadConfig(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if got := resolveFlag(t, r, "log_level"); got != "debug" {
		t.Errorf("log_level = %v, want debug", got)
	}

	// Hyphenated flag names map to underscore config keys.
	if got := resolveFlag(t, r, "log-format"); got != "text" {
		t.Errorf("log-format = %v, want text", got)
	}

	if got := resolveFlag(t, r, "log_pretty"); got != true {
		t.Errorf("log_pretty = %v, want true", got)
	}

	// Numbers are converted to strings for Kong's parser.
	if got := resolveFlag(t, r, "indent"); got != "4" {
		t.Errorf("indent = %v (%T), want \"4\"", got, got)
	}
}

func TestLoadConfig_MissingKey(t *testing.T) {
	r, err := loadConfig(strings.NewReader(`log_level: info`))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if got := resolveFlag(t, r, "absent"); got != nil {
		t.Errorf("expected nil for missing key, got %v", got)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	// A malformed config falls back to flag defaults rather than failing
	// startup.
	r, err := loadConfig(strings.NewReader(`: [ not yaml`))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if got := resolveFlag(t, r, "log_level"); got != nil {
		t.Errorf("expected empty config, got %v", got)
	}
}

func TestLoadConfig_Validate(t *testing.T) {
	r, err := loadConfig(strings.NewReader(`log_level: info`))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}
