package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
	}{
		{"default", options.Flags{}},
		{"debug", options.Flags{Debug: true}},
		{"trace", options.Flags{Trace: true}},
		{"quiet", options.Flags{Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.flags))
		})
	}
}
