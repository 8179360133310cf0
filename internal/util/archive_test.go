package util

import (
	"testing"
	"time"
)

func TestSanitizePart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Masterlist  ", "masterlist"},
		{"Profile Extract", "profile_extract"},
		{"PROFILE_EXTRACT", "profile_extract"},
		{"A-B_C", "a-b_c"},
		{"Hello!@#$%^&*()World", "helloworld"},
		{"  ---___  ", "---___"},
		{"", "unknown"},
		{"   ", "unknown"},
		{"नमस्ते", "unknown"},
	}

	for _, tt := range tests {
		got := SanitizePart(tt.in)
		if got != tt.want {
			t.Fatalf("SanitizePart(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDatasetObjectName(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	got := DatasetObjectName("Profile Extract Q1.csv", at)
	want := "datasets/20260314092653_profile_extract_q1.csv"
	if got != want {
		t.Fatalf("DatasetObjectName = %q, want %q", got, want)
	}
}

func TestDatasetObjectName_NoExtension(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	got := DatasetObjectName("masterlist", at)
	want := "datasets/20260314092653_masterlist.csv"
	if got != want {
		t.Fatalf("DatasetObjectName = %q, want %q", got, want)
	}
}
