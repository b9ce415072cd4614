package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"trace", zerolog.TraceLevel},
		{"warn", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		for _, format := range []string{"text", "json"} {
			log := Setup(format, tt.level)
			if got := log.GetLevel(); got != tt.want {
				t.Errorf("Setup(%q, %q) level = %v, want %v", format, tt.level, got, tt.want)
			}
		}
	}
}
