package tgbot

import (
	"strings"
	"unicode/utf8"

	"github.com/Rag3karn/HOF-Scheduler/internal/models"
)

// Telegram rejects messages over 4096 characters.
const maxMessageLen = 4096

func helpText(sheetEnabled bool) string {
	var b strings.Builder
	b.WriteString("⚽ HOF Scheduler\n\n")
	b.WriteString("Send the week's match schedule as an .xlsx file and I will reply with the announcement.\n")
	b.WriteString("Add the caption \"all\" to list the first problem of every bad row instead of stopping at the first one.\n\n")
	b.WriteString("/columns - required columns\n")
	b.WriteString("/template - blank schedule workbook with an example row\n")
	if sheetEnabled {
		b.WriteString("/sheet - build the announcement from the configured Google Sheet (/sheet all to list every bad row)\n")
	}
	return b.String()
}

func columnsText() string {
	var b strings.Builder
	b.WriteString("Required columns (exact names, any order):\n")
	for _, col := range models.RequiredColumns {
		b.WriteString("• " + col + "\n")
	}
	b.WriteString("\nExample row:\nPune | Turf A | Football | 2024-06-03 19:00 | 2024-06-03 20:00 | 10 | 1000 | 800")
	return b.String()
}

func errorsText(errs []string) string {
	var b strings.Builder
	b.WriteString("❌ Validation errors found\n")
	for _, e := range errs {
		b.WriteString("- " + e + "\n")
	}
	b.WriteString("\n💡 Tips:\n")
	b.WriteString("• Check that all required columns are present and spelled correctly\n")
	b.WriteString("• Ensure dates and times are in the correct format\n")
	b.WriteString("• Verify that playerCapacity is an even number\n")
	b.WriteString("• Make sure all required fields have values")
	return b.String()
}

// splitMessage cuts text into chunks of at most limit characters, breaking
// on newlines where possible.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		cur    strings.Builder
		curLen int
	)
	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		n := utf8.RuneCountInString(line)
		if curLen+n > limit {
			flush()
		}
		for n > limit {
			head := string([]rune(line)[:limit])
			chunks = append(chunks, head)
			line = string([]rune(line)[limit:])
			n -= limit
		}
		cur.WriteString(line)
		curLen += n
	}
	flush()

	for i, c := range chunks {
		chunks[i] = strings.TrimRight(c, "\n")
	}
	return chunks
}
