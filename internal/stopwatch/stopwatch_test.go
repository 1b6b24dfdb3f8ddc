package stopwatch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStopwatchLaps(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sw := New(logger, WithClock(clock.Now))
	clock.advance(150 * time.Millisecond)
	if got := sw.Lap("load corpus"); got != 150*time.Millisecond {
		t.Fatalf("first lap = %v, want 150ms", got)
	}

	clock.advance(2 * time.Second)
	sw.Restart()
	clock.advance(40 * time.Millisecond)
	if got := sw.Lap("score"); got != 40*time.Millisecond {
		t.Fatalf("lap after restart = %v, want 40ms", got)
	}

	out := buf.String()
	for _, want := range []string{`step="load corpus"`, "elapsed=150ms", "step=score", "elapsed=40ms", "component=timing"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestStopwatchNilLogger(t *testing.T) {
	sw := New(nil)
	if sw.Lap("noop") < 0 {
		t.Fatal("negative lap")
	}
}

func TestNop(t *testing.T) {
	timer := Nop()
	timer.Restart()
	if got := timer.Lap("anything"); got != 0 {
		t.Fatalf("Nop lap = %v, want 0", got)
	}
}
