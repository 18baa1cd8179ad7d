package logger

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		wantErr       bool
	}{
		{"info", "json", false},
		{"debug", "console", false},
		{"loud", "json", true},
	}
	for _, tt := range tests {
		log, err := New(tt.level, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			continue
		}
		if log != nil {
			_ = log.Sync()
		}
	}
}
