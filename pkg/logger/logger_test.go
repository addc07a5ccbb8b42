//go:build !integration

package logger

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	err := errors.New("boom")

	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{"empty", nil, nil},
		{"pairs untouched", []any{"k", 1}, []any{"k", 1}},
		{"lone error", []any{err}, []any{"error", err}},
		{"pairs then error", []any{"k", 1, err}, []any{"k", 1, "error", err}},
		{"odd non-error", []any{"k"}, []any{"k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
