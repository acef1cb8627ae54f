package logger

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"console_default", Config{}, false},
		{"json_debug", Config{Level: "debug", Format: "json"}, false},
		{"bad_level", Config{Level: "loud"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lg, err := New(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			lg.Debug("test message")
		})
	}
	Nop().Info("discarded")
}
