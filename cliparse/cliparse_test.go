package cliparse

import (
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags",
			args: []string{"-p", "9000", "-d", "postgres://x", "-driver", "postgres", "-jwt-secret", "s", "-token-ttl", "1h"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 9000 {
					t.Errorf("Port = %d, want 9000", cfg.Port)
				}
				if cfg.TokenTTL != time.Hour {
					t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
				}
			},
		},
		{
			name: "defaults applied",
			args: []string{"-d", "file:test.db", "-driver", "sqlite", "-jwt-secret", "s"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 {
					t.Errorf("Port = %d, want default 8080", cfg.Port)
				}
				if cfg.TokenTTL != 24*time.Hour {
					t.Errorf("TokenTTL = %v, want default 24h", cfg.TokenTTL)
				}
			},
		},
		{
			name:    "missing database URL",
			args:    []string{"-jwt-secret", "s"},
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			args:    []string{"-d", "postgres://x"},
			wantErr: true,
		},
		{
			name:    "bad driver",
			args:    []string{"-d", "x", "-driver", "mysql", "-jwt-secret", "s"},
			wantErr: true,
		},
		{
			name:    "bad ttl",
			args:    []string{"-d", "x", "-jwt-secret", "s", "-token-ttl", "soon"},
			wantErr: true,
		},
		{
			name:    "negative ttl",
			args:    []string{"-d", "x", "-jwt-secret", "s", "-token-ttl", "-1h"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags failed: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
