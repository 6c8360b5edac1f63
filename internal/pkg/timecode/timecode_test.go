package timecode

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"9:05", 545, true},
		{"12:30", 750, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:5", 0, false},
		{"0900", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
		{"09:00 ", 0, false},
	}

	for _, c := range cases {
		got, err := Parse(c.input)
		if c.ok {
			if err != nil {
				t.Errorf("Parse(%q) unexpected error: %v", c.input, err)
			}
			if got != c.want {
				t.Errorf("Parse(%q) = %d, want %d", c.input, got, c.want)
			}
		} else {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %d", c.input, got)
			}
			if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidTimeFormat", c.input, err)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{545, "09:05"},
		{1439, "23:59"},
	}

	for _, c := range cases {
		if got := Format(c.minutes); got != c.want {
			t.Errorf("Format(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestDuration(t *testing.T) {
	got, err := Duration("09:00", "12:00")
	if err != nil {
		t.Fatalf("Duration returned error: %v", err)
	}
	if got != 180 {
		t.Errorf("Duration(09:00, 12:00) = %d, want 180", got)
	}
}

// An end time before the start time yields a negative duration.
// Current behavior: the raw difference is returned, not clamped and
// not wrapped across midnight.
func TestDurationNegative(t *testing.T) {
	got, err := Duration("22:00", "02:00")
	if err != nil {
		t.Fatalf("Duration returned error: %v", err)
	}
	if got != -1200 {
		t.Errorf("Duration(22:00, 02:00) = %d, want -1200", got)
	}
}

func TestDurationInvalidInput(t *testing.T) {
	if _, err := Duration("25:00", "12:00"); err == nil {
		t.Error("Duration with invalid from expected error")
	}
	if _, err := Duration("09:00", "12:99"); err == nil {
		t.Error("Duration with invalid to expected error")
	}
}
