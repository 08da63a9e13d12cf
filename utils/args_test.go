package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTokenizeHonoursQuotes(t *testing.T) {
	words, err := Tokenize(`submit "Paper X" 'Dept of CS' 7 paper.txt`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	want := []string{"submit", "Paper X", "Dept of CS", "7", "paper.txt"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %d (%q)", len(want), len(words), words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("word %d: expected %q, got %q", i, want[i], words[i])
		}
	}
}

func TestTokenizeRejectsUnterminatedQuote(t *testing.T) {
	if _, err := Tokenize(`submit "Paper X`); err == nil {
		t.Fatalf("expected error for unterminated quote")
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 42 "); err != nil || id != 42 {
		t.Fatalf("expected 42, got %d (%v)", id, err)
	}
	for _, raw := range []string{"0", "-3", "abc", ""} {
		if _, err := ParseID(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseIntsStopsAtFirstNonNumber(t *testing.T) {
	got, err := ParseInts([]string{"1", "2", "3"})
	if err != nil || len(got) != 3 || got[2] != 3 {
		t.Fatalf("unexpected result %v (%v)", got, err)
	}
	if _, err := ParseInts([]string{"1", "x"}); err == nil || !strings.Contains(err.Error(), `"x"`) {
		t.Fatalf("expected error naming the bad value, got %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("jane@x.edu") {
		t.Fatalf("expected jane@x.edu to be valid")
	}
	if ValidateEmail("jane@") {
		t.Fatalf("expected jane@ to be invalid")
	}
}

func TestWriteTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, []string{"ID", "Title"}, [][]string{{"1", "A"}, {"10", "B"}}); err != nil {
		t.Fatalf("WriteTable returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", buf.String())
	}
	if strings.Index(lines[1], "A") != strings.Index(lines[2], "B") {
		t.Fatalf("columns not aligned:\n%s", buf.String())
	}
}

func TestFormatDate(t *testing.T) {
	if FormatDate(nil) != "-" {
		t.Fatalf("expected dash for nil")
	}
	ts := time.Date(2022, 10, 29, 9, 5, 0, 0, time.UTC)
	if got := FormatDate(&ts); got != "2022-10-29 09:05" {
		t.Fatalf("unexpected format %q", got)
	}
}
