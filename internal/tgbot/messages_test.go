package tgbot

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"exact", "0123456789", 10, []string{"0123456789"}},
		{"on newlines", "aaaa\nbbbb\ncccc", 10, []string{"aaaa\nbbbb", "cccc"}},
		{"long line", "abcdefghij\nxy", 4, []string{"abcd", "efgh", "ij", "xy"}},
		{"runes not bytes", "⚽⚽⚽\n⚽⚽", 4, []string{"⚽⚽⚽", "⚽⚽"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitMessage(tt.text, tt.limit)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("splitMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitMessage_Limit(t *testing.T) {
	text := strings.Repeat("🗓 3rd Monday | 7 PM–8 PM | 5v5\n", 300)
	for i, chunk := range splitMessage(text, maxMessageLen) {
		if n := utf8.RuneCountInString(chunk); n > maxMessageLen {
			t.Errorf("chunk %d has %d characters", i, n)
		}
	}
}

func TestErrorsText(t *testing.T) {
	got := errorsText([]string{
		"Row 2: Missing value in column 'venueName'",
		"Row 4: 'endTime' must be after 'startTime'",
	})
	lines := strings.Split(got, "\n")
	if lines[0] != "❌ Validation errors found" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "- Row 2: Missing value in column 'venueName'" || lines[2] != "- Row 4: 'endTime' must be after 'startTime'" {
		t.Errorf("error lines = %q", lines[1:3])
	}
	if !strings.HasSuffix(got, "• Make sure all required fields have values") {
		t.Errorf("errorsText() should end with the tips, got %q", got)
	}
}

func TestHelpText(t *testing.T) {
	if strings.Contains(helpText(false), "/sheet") {
		t.Error("helpText(false) should not mention /sheet")
	}
	if !strings.Contains(helpText(true), "/sheet") {
		t.Error("helpText(true) should mention /sheet")
	}
	if !strings.Contains(helpText(false), "/template") {
		t.Error("helpText() should mention /template")
	}
}

func TestColumnsText(t *testing.T) {
	got := columnsText()
	for _, col := range []string{"cityName", "venueName", "matchTypeName", "startTime", "endTime", "playerCapacity", "slotPrice", "offerPrice"} {
		if !strings.Contains(got, "• "+col+"\n") {
			t.Errorf("columnsText() is missing %s", col)
		}
	}
}
