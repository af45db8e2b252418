package queue

import (
	"testing"
	"time"
)

func TestQueueTimeLayout_LexicographicOrder(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 5, 0, time.UTC)
	cases := []struct {
		name string
		a, b time.Time
	}{
		{"whole second before sub-second", base, base.Add(time.Nanosecond)},
		{"sub-second before next second", base.Add(999 * time.Millisecond), base.Add(time.Second)},
		{"across minutes", base, base.Add(time.Minute)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fa := tc.a.UTC().Format(queueTimeLayout)
			fb := tc.b.UTC().Format(queueTimeLayout)
			if len(fa) != len(fb) {
				t.Fatalf("layout must be fixed width: %q vs %q", fa, fb)
			}
			if !(fa < fb) {
				t.Fatalf("string order must match time order: %q >= %q", fa, fb)
			}
		})
	}
}

func TestQueueTimeLayout_RoundTrip(t *testing.T) {
	want := time.Date(2026, 8, 30, 12, 0, 5, 0, time.UTC)
	got, err := time.Parse(queueTimeLayout, want.Format(queueTimeLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("round trip mismatch: want %v, got %v", want, got)
	}
}
