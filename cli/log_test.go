package cli

import "testing"

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "assigned values",
			args: []string{"--log-level=debug", "--log-format=text"},
			want: logConfig{Level: "debug", Format: "text"},
		},
		{
			name: "separated values",
			args: []string{"--log-level", "warn", "resolve", "doc.json"},
			want: logConfig{Level: "warn"},
		},
		{
			name: "boolean flags bare",
			args: []string{"--log-pretty", "--log-caller"},
			want: logConfig{Pretty: true, Caller: true},
		},
		{
			name: "boolean flags negated",
			args: []string{"--no-log-pretty", "--no-log-caller"},
			want: logConfig{Pretty: false, Caller: false},
		},
		{
			name: "boolean flags assigned",
			args: []string{"--log-pretty=false", "--log-caller=true"},
			want: logConfig{Pretty: false, Caller: true},
		},
		{
			name: "negated boolean assigned",
			args: []string{"--no-log-pretty=false"},
			want: logConfig{Pretty: true},
		},
		{
			name: "unrelated flags ignored",
			args: []string{"--output=yaml", "resolve", "-"},
			want: logConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg logConfig

			cfg.scan(tt.args)

			if cfg.Level != tt.want.Level {
				t.Errorf("Level = %q, want %q", cfg.Level, tt.want.Level)
			}

			if cfg.Format != tt.want.Format {
				t.Errorf("Format = %q, want %q", cfg.Format, tt.want.Format)
			}

			if cfg.Pretty != tt.want.Pretty {
				t.Errorf("Pretty = %v, want %v", cfg.Pretty, tt.want.Pretty)
			}

			if cfg.Caller != tt.want.Caller {
				t.Errorf("Caller = %v, want %v", cfg.Caller, tt.want.Caller)
			}
		})
	}
}
