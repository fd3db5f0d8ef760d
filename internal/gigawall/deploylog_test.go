package gigawall_test

import (
	"fmt"
	"testing"
	"time"

	"gigawall/internal/gigawall"
	"gigawall/internal/testutil"
)

func TestDeployLog(t *testing.T) {
	t.Run("newest entry comes first", func(t *testing.T) {
		t.Parallel()
		clock := testutil.FixedClock()
		log := gigawall.NewDeployLog(clock)

		log.Append(gigawall.LogInfo, "first")
		clock.Advance(time.Second)
		log.Append(gigawall.LogSuccess, "second")

		entries := log.Entries()
		if len(entries) != 2 {
			t.Fatalf("got %d entries, want 2", len(entries))
		}
		if entries[0].Message != "second" || entries[1].Message != "first" {
			t.Errorf("order = %s,%s, want second,first", entries[0].Message, entries[1].Message)
		}
		if entries[0].Level != gigawall.LogSuccess {
			t.Errorf("level = %s, want success", entries[0].Level)
		}
		if !entries[0].At.After(entries[1].At) {
			t.Error("newer entry should carry the later timestamp")
		}
	})

	t.Run("drops the oldest entries past the cap", func(t *testing.T) {
		t.Parallel()
		log := gigawall.NewDeployLog(testutil.FixedClock())

		for i := 0; i < 60; i++ {
			log.Append(gigawall.LogInfo, fmt.Sprintf("entry %d", i))
		}

		entries := log.Entries()
		if len(entries) != 50 {
			t.Fatalf("got %d entries, want 50", len(entries))
		}
		if entries[0].Message != "entry 59" {
			t.Errorf("newest = %s, want entry 59", entries[0].Message)
		}
		if entries[49].Message != "entry 10" {
			t.Errorf("oldest kept = %s, want entry 10", entries[49].Message)
		}
	})

	t.Run("entries returns a copy", func(t *testing.T) {
		t.Parallel()
		log := gigawall.NewDeployLog(testutil.FixedClock())
		log.Append(gigawall.LogInfo, "original")

		entries := log.Entries()
		entries[0].Message = "mutated"

		if log.Entries()[0].Message != "original" {
			t.Error("mutating the returned slice must not affect the log")
		}
	})
}
