package task

import (
	"errors"
	"testing"
)

func TestParseImportance(t *testing.T) {
	tests := []struct {
		input string
		want  Importance
	}{
		{"h", ImportanceHigh},
		{"H", ImportanceHigh},
		{"high", ImportanceHigh},
		{"HIGH", ImportanceHigh},
		{"m", ImportanceMedium},
		{"med", ImportanceMedium},
		{"Medium", ImportanceMedium},
		{"l", ImportanceLow},
		{"low", ImportanceLow},
		{"  low  ", ImportanceLow},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseImportance(tt.input)
			if err != nil {
				t.Fatalf("ParseImportance(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseImportance(%q): got %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseImportanceRejectsJunk(t *testing.T) {
	for _, input := range []string{"", "x", "urgent", "hm", "1", "hilow"} {
		_, err := ParseImportance(input)
		if err == nil {
			t.Errorf("ParseImportance(%q) succeeded, want error", input)
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("ParseImportance(%q) error type: got %T, want *ValidationError", input, err)
		}
	}
}

func TestImportanceRank(t *testing.T) {
	if !(ImportanceHigh.Rank() < ImportanceMedium.Rank() && ImportanceMedium.Rank() < ImportanceLow.Rank()) {
		t.Errorf("rank ordering wrong: HIGH=%d MEDIUM=%d LOW=%d",
			ImportanceHigh.Rank(), ImportanceMedium.Rank(), ImportanceLow.Rank())
	}
}

func TestImportanceValid(t *testing.T) {
	for _, i := range []Importance{ImportanceHigh, ImportanceMedium, ImportanceLow} {
		if !i.Valid() {
			t.Errorf("%s.Valid() = false, want true", i)
		}
	}
	for _, i := range []Importance{"", "high", "URGENT"} {
		if i.Valid() {
			t.Errorf("%q.Valid() = true, want false", i)
		}
	}
}
