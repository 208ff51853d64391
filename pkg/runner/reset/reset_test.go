package reset

import (
	"context"
	"testing"

	"tableflip.dev/floof/pkg/daily"
	"tableflip.dev/floof/pkg/flags"
)

func seeded() flags.Store {
	s := flags.Memory()
	_ = s.Set(flags.BlindBoxKey("2026-02-09"), flags.Done)
	_ = s.Set(flags.DailyDoneKey("2026-02-09"), flags.Done)
	_ = s.Set(flags.DailyReplyKey("2026-02-09"), "回复")
	return s
}

func TestResetAll(t *testing.T) {
	s := seeded()
	r := Reset{Store: s, Clock: daily.Fixed("2026-02-09")}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, k := range []string{
		flags.BlindBoxKey("2026-02-09"),
		flags.DailyDoneKey("2026-02-09"),
		flags.DailyReplyKey("2026-02-09"),
	} {
		if s.Get(k) != "" {
			t.Fatalf("%s survived the reset", k)
		}
	}
}

func TestResetBlindBoxScope(t *testing.T) {
	s := seeded()
	r := Reset{Store: s, Clock: daily.Fixed("2026-02-09"), Scope: "blindbox"}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if s.Get(flags.BlindBoxKey("2026-02-09")) != "" {
		t.Fatalf("blindbox flag survived")
	}
	if s.Get(flags.DailyDoneKey("2026-02-09")) != flags.Done {
		t.Fatalf("daily flag should be untouched")
	}
}

func TestResetDailyScope(t *testing.T) {
	s := seeded()
	r := Reset{Store: s, Clock: daily.Fixed("2026-02-09"), Scope: "daily"}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if s.Get(flags.DailyDoneKey("2026-02-09")) != "" || s.Get(flags.DailyReplyKey("2026-02-09")) != "" {
		t.Fatalf("daily keys survived")
	}
	if s.Get(flags.BlindBoxKey("2026-02-09")) != flags.Done {
		t.Fatalf("blindbox flag should be untouched")
	}
}

func TestResetRejectsUnknownScope(t *testing.T) {
	r := Reset{Store: flags.Memory(), Clock: daily.Fixed("2026-02-09"), Scope: "everything"}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for unknown scope")
	}
}
