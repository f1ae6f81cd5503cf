package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/quanta/pkg/reminders"
	"github.com/aretw0/quanta/pkg/scheduler"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestLoadSchedule(t *testing.T) {
	dir := t.TempDir()
	doc := "reminders:\n  - label: tea\n    after: { minutes: 3 }\n  - label: kettle\n    after: { seconds: 45 }\n"
	if err := os.WriteFile(filepath.Join(dir, "r.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	t0 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	s, err := LoadSchedule([]string{filepath.Join(dir, "*.yaml")}, WithClock(fixedClock{now: t0}))
	if err != nil {
		t.Fatalf("LoadSchedule failed: %v", err)
	}

	pending := s.Pending()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending notifications, got %d", len(pending))
	}
	if pending[0].Label != "kettle" || !pending[0].Due.Equal(t0.Add(45*time.Second)) {
		t.Errorf("unexpected head %+v", pending[0])
	}
	if pending[1].Label != "tea" || !pending[1].Due.Equal(t0.Add(3*time.Minute)) {
		t.Errorf("unexpected tail %+v", pending[1])
	}
}

func TestLoadScheduleMissingFiles(t *testing.T) {
	_, err := LoadSchedule([]string{filepath.Join(t.TempDir(), "*.yaml")})
	if err == nil {
		t.Fatal("expected error for unmatched pattern")
	}
}

func TestScheduleReportsSource(t *testing.T) {
	s := NewScheduler()
	err := Schedule(s, []reminders.Entry{
		{Label: "ok", Source: "a.yaml"},
		{Label: " ", Source: "b.yaml"},
	})
	if err == nil {
		t.Fatal("expected error for blank label")
	}
	if !errors.Is(err, scheduler.ErrEmptyLabel) {
		t.Errorf("expected ErrEmptyLabel, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "b.yaml") {
		t.Errorf("error should name the source file, got %q", got)
	}
	if s.Len() != 1 {
		t.Errorf("entries before the failure stay scheduled, got %d", s.Len())
	}
	if _, ok := s.State().(scheduler.SchedulerState); !ok {
		t.Error("scheduler should expose SchedulerState")
	}
}

func TestNewSourceHonoursBuffer(t *testing.T) {
	s := NewScheduler()
	if got := cap(NewSource(s).Events()); got != 0 {
		t.Errorf("default source should be unbuffered, got capacity %d", got)
	}
	if got := cap(NewSource(s, WithBuffer(16)).Events()); got != 16 {
		t.Errorf("expected capacity 16, got %d", got)
	}
}
