package logger

import "testing"

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format 'console', got %q", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "debug", Format: "json"}, false},
		{"valid console", Config{Level: "info", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGetCachesLoggers(t *testing.T) {
	Reset()
	a := Get("feature.factory")
	b := Get("feature.factory")
	if a != b {
		t.Error("expected Get to return the same instance for the same name")
	}
	c := Get("feature.remote")
	if a == c {
		t.Error("expected distinct loggers for distinct names")
	}
}

func TestFields(t *testing.T) {
	m := Fields(FieldFeature, "beta-ui", FieldEnabled, true)
	if m[FieldFeature] != "beta-ui" {
		t.Errorf("expected feature field, got %v", m[FieldFeature])
	}
	if m[FieldEnabled] != true {
		t.Errorf("expected enabled field, got %v", m[FieldEnabled])
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields(FieldFeature, "beta-ui", FieldEnabled)
	if len(m) != 1 {
		t.Errorf("expected trailing key without value to be dropped, got %v", m)
	}
}
