package rafflestate

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsToTerminal(t *testing.T) {
	var now int64
	s := newScheduler(time.Millisecond, func() int64 { return atomic.LoadInt64(&now) })

	ticks := make(chan string, 64)
	s.Start(7, 3*nsPerSecond, func(v string) { ticks <- v })

	var got []string
	deadline := time.After(5 * time.Second)
	for {
		var v string
		select {
		case v = <-ticks:
		case <-deadline:
			t.Fatalf("countdown never reached the terminal label, got %v", got)
		}

		got = append(got, v)
		if v == ExpiredLabel {
			break
		}

		atomic.AddInt64(&now, nsPerSecond)
	}

	require.Equal(t, "3s", got[0])
	require.Equal(t, ExpiredLabel, got[len(got)-1])
	require.Equal(t, 1, countOf(got, ExpiredLabel))

	// The terminal tick is final: nothing fires afterwards.
	select {
	case v := <-ticks:
		t.Fatalf("tick %q after terminal label", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSchedulerStop(t *testing.T) {
	var now int64
	s := newScheduler(time.Millisecond, func() int64 { return atomic.LoadInt64(&now) })

	ticks := make(chan string, 64)
	s.Start(3, nsPerDay, func(v string) { ticks <- v })

	select {
	case <-ticks:
	case <-time.After(5 * time.Second):
		t.Fatal("countdown never ticked")
	}

	s.Stop(3)

	// One in-flight tick may still land right after Stop; let it settle.
	time.Sleep(5 * time.Millisecond)
	drain(ticks)

	select {
	case v := <-ticks:
		t.Fatalf("tick %q after Stop", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestSchedulerReplacesSameRaffle(t *testing.T) {
	var now int64
	s := newScheduler(time.Millisecond, func() int64 { return atomic.LoadInt64(&now) })

	first := make(chan string, 64)
	s.Start(5, nsPerDay, func(v string) { first <- v })

	select {
	case <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("first countdown never ticked")
	}

	second := make(chan string, 64)
	s.Start(5, 2*nsPerDay, func(v string) { second <- v })

	select {
	case <-second:
	case <-time.After(5 * time.Second):
		t.Fatal("replacement countdown never ticked")
	}

	time.Sleep(5 * time.Millisecond)
	drain(first)
	select {
	case v := <-first:
		t.Fatalf("old countdown still ticking: %q", v)
	case <-time.After(20 * time.Millisecond):
	}

	s.StopAll()
}

func countOf(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}

	return n
}

func drain(ch chan string) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
