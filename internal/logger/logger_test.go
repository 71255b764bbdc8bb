package logger

import "testing"

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"prod", "production", "dev", ""} {
		log, err := New(mode, "")
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		_ = log.Sync()
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("dev", "chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewAppliesLevel(t *testing.T) {
	log, err := New("prod", "warn")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Fatalf("debug should be disabled at warn level")
	}
}

func TestRedact(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"abc":          "***",
		"secret-token": "se********en",
	}
	for in, want := range cases {
		if got := Redact(in); got != want {
			t.Fatalf("Redact(%q) = %q, want %q", in, got, want)
		}
	}
}
