package league

import (
	"testing"
	"time"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	for _, n := range []int{0, 1, 18, 25, 40} {
		anniversary := time.Date(2025-n, time.June, 15, 0, 0, 0, 0, time.UTC)
		if got := AgeAt(&anniversary, now); got != n {
			t.Errorf("birthday today, %d years ago: got %d", n, got)
		}

		dayBefore := time.Date(2025-n, time.June, 16, 0, 0, 0, 0, time.UTC)
		if n > 0 {
			if got := AgeAt(&dayBefore, now); got != n-1 {
				t.Errorf("birthday tomorrow, %d years ago: got %d, want %d", n, got, n-1)
			}
		}
	}

	earlierMonth := time.Date(2000, time.July, 1, 0, 0, 0, 0, time.UTC)
	if got := AgeAt(&earlierMonth, now); got != 24 {
		t.Errorf("later month birthday: got %d, want 24", got)
	}
}

func TestAgeAtUnknown(t *testing.T) {
	if got := AgeAt(nil, time.Now()); got != UnknownAge {
		t.Fatalf("AgeAt(nil) = %d, want UnknownAge", got)
	}
	if got := AgeFromString(nil, time.Now()); got != nil {
		t.Fatalf("AgeFromString(nil) = %v, want nil", *got)
	}
	bad := "not a date"
	if got := AgeFromString(&bad, time.Now()); got != nil {
		t.Fatalf("AgeFromString(%q) = %v, want nil", bad, *got)
	}
}

func TestAgeFromStringFormats(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	for _, dob := range []string{
		"1995-06-15",
		"1995-06-15T00:00:00Z",
		"Thu, 15 Jun 1995 00:00:00 GMT",
	} {
		got := AgeFromString(&dob, now)
		if got == nil || *got != 30 {
			t.Errorf("AgeFromString(%q) = %v, want 30", dob, got)
		}
	}
}

func TestDateOnly(t *testing.T) {
	tests := map[string]string{
		"2025-03-14T19:45:00.000Z":      "2025-03-14",
		"2025-03-14 19:45:00":           "2025-03-14",
		"2025-03-14":                    "2025-03-14",
		"Fri, 14 Mar 2025 19:45:00 GMT": "2025-03-14",
		"":                              "",
	}
	for in, want := range tests {
		if got := DateOnly(in); got != want {
			t.Errorf("DateOnly(%q) = %q, want %q", in, got, want)
		}
	}
}
