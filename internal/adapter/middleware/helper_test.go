package middleware

import (
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := map[string]bool{
		strings.Repeat("a", 32):                true,
		"3B9-invalid":                          false,
		"":                                     false,
		"9f86d081-884c-4d63-9b1f-5f0f9a9b8c7d": true,
		strings.Repeat("g", 32):                false,
	}
	for id, want := range cases {
		if got := validReqID(id); got != want {
			t.Errorf("validReqID(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestParseAxRequestAt(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	if got, err := parseAxRequestAt(now.Format(time.RFC3339)); err != nil || !got.Equal(now) {
		t.Fatalf("rfc3339: got %v err %v", got, err)
	}
	if got, err := parseAxRequestAt("1736123456"); err != nil || got.Unix() != 1736123456 {
		t.Fatalf("epoch seconds: got %v err %v", got, err)
	}
	if got, err := parseAxRequestAt("1736123456789"); err != nil || got.UnixMilli() != 1736123456789 {
		t.Fatalf("epoch millis: got %v err %v", got, err)
	}
	// naive local timestamps are rejected
	if _, err := parseAxRequestAt("2026-08-28T10:00:00"); err == nil {
		t.Fatal("timestamp without zone must be rejected")
	}
	if _, err := parseAxRequestAt(""); err == nil {
		t.Fatal("empty must be rejected")
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("POST", "/api/deposits", "user1", "req1")
	want := "idemp:ax:post:/api/deposits:user1:req1"
	if key != want {
		t.Fatalf("key = %q, want %q", key, want)
	}
}
