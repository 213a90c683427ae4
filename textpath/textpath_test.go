package textpath

import (
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
)

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want di.Direction
	}{
		{"latin", "hello", di.DirectionLTR},
		{"hebrew", "שלום", di.DirectionRTL},
		{"arabic", "مرحبا", di.DirectionRTL},
		{"digits only", "1234", di.DirectionLTR},
		{"empty", "", di.DirectionLTR},
		{"newline only", "\n", di.DirectionLTR},
		{"spaces only", "   ", di.DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := baseDirection(tt.text); got != tt.want {
				t.Errorf("baseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectScript(t *testing.T) {
	if got := detectScript([]rune("  hello")); got != language.LookupScript('h') {
		t.Errorf("leading spaces should be skipped, got %v", got)
	}
	if got := detectScript([]rune("   ")); got != language.Latin {
		t.Errorf("all-space input should default to Latin, got %v", got)
	}
}

func TestFixedToFloat(t *testing.T) {
	if got := fixedToFloat(64); got != 1.0 {
		t.Errorf("fixedToFloat(64) = %v, want 1", got)
	}
	if got := fixedToFloat(96); got != 1.5 {
		t.Errorf("fixedToFloat(96) = %v, want 1.5", got)
	}
}

func TestNew_RejectsGarbage(t *testing.T) {
	if _, err := New([]byte("not a font")); err == nil {
		t.Error("parsing garbage should fail")
	}
}
