package flags

import "testing"

func TestKeys(t *testing.T) {
	if got := BlindBoxKey("2026-02-09"); got != "blindbox_opened_2026-02-09" {
		t.Fatalf("BlindBoxKey = %q", got)
	}
	if got := DailyDoneKey("2026-02-09"); got != "daily_done_2026-02-09" {
		t.Fatalf("DailyDoneKey = %q", got)
	}
	if got := DailyReplyKey("2026-02-09"); got != "daily_reply_2026-02-09" {
		t.Fatalf("DailyReplyKey = %q", got)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := Memory()
	if got := s.Get("k"); got != "" {
		t.Fatalf("Get on empty store = %q", got)
	}
	if err := s.Set("k", Done); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get("k"); got != Done {
		t.Fatalf("Get = %q, want %q", got, Done)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := s.Get("k"); got != "" {
		t.Fatalf("Get after Remove = %q", got)
	}
	if err := s.Remove("never-set"); err != nil {
		t.Fatalf("Remove of an absent key should be a no-op, got %v", err)
	}
}

func TestDiskStoreRoundTrip(t *testing.T) {
	s := Open(t.TempDir())
	key := BlindBoxKey("2026-02-09")
	if err := s.Set(key, Done); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get(key); got != Done {
		t.Fatalf("Get = %q, want %q", got, Done)
	}
	if err := s.Remove(key); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := s.Get(key); got != "" {
		t.Fatalf("Get after Remove = %q", got)
	}
	if err := s.Remove(key); err != nil {
		t.Fatalf("second Remove should be a no-op, got %v", err)
	}
}

func TestOpenWithoutPathDegradesToMemory(t *testing.T) {
	s := Open("")
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set on degraded store: %v", err)
	}
	if got := s.Get("k"); got != "v" {
		t.Fatalf("Get = %q", got)
	}
}
