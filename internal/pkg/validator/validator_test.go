package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-15", "1999-12-31"}
	invalid := []string{"2024-13-01", "15-01-2024", "2024/01/15", "", "yesterday"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Completed", "In Progress", "Pending"}
	if !IsInSlice("Pending", slice) {
		t.Error("IsInSlice(Pending) = false, want true")
	}
	if IsInSlice("Done", slice) {
		t.Error("IsInSlice(Done) = true, want false")
	}
}

func TestExceedsMaxLen(t *testing.T) {
	if ExceedsMaxLen("abc", 3) {
		t.Error("ExceedsMaxLen(abc, 3) = true, want false")
	}
	if !ExceedsMaxLen("abcd", 3) {
		t.Error("ExceedsMaxLen(abcd, 3) = false, want true")
	}
}
