package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/api/metrics"
	"github.com/propelrent/rentwise/internal/core/domain"
)

type recordingDeliverer struct {
	mu   sync.Mutex
	got  map[string][]string
	fail bool
	n    int
}

func (d *recordingDeliverer) Deliver(_ context.Context, n domain.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.n++
	if d.fail {
		return errors.New("inbox down")
	}
	if d.got == nil {
		d.got = make(map[string][]string)
	}
	d.got[n.Recipient] = append(d.got[n.Recipient], n.Title)
	return nil
}

func (d *recordingDeliverer) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.n
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDispatcher_PreservesPerRecipientOrder(t *testing.T) {
	d := &recordingDeliverer{}
	disp := NewDispatcher(3, d, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	recipients := []string{"raju@gmail.com", "geetha@gmail.com", "sita@gmail.com"}
	for i := 0; i < 20; i++ {
		for _, r := range recipients {
			disp.Notify(domain.Notification{Recipient: r, Title: fmt.Sprint(i)})
		}
	}
	waitFor(t, func() bool { return d.count() == 60 })

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range recipients {
		titles := d.got[r]
		if len(titles) != 20 {
			t.Fatalf("%s: expected 20 notifications, got %d", r, len(titles))
		}
		for i, title := range titles {
			if title != fmt.Sprint(i) {
				t.Fatalf("%s: out of order at %d: %v", r, i, titles)
			}
		}
	}
}

func TestDispatcher_ShardIndexIgnoresCase(t *testing.T) {
	disp := NewDispatcher(8, &recordingDeliverer{}, zerolog.Nop())

	if disp.shardIndex("Raju@Gmail.com") != disp.shardIndex("raju@gmail.com") {
		t.Fatalf("shard must not depend on email case")
	}
	for _, r := range []string{"a@b.c", "x@y.z", ""} {
		if idx := disp.shardIndex(r); idx < 0 || idx >= 8 {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	disp := NewDispatcher(0, &recordingDeliverer{}, zerolog.Nop())
	if len(disp.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(disp.workers))
	}
}

func TestDispatcher_NotifyNeverBlocks(t *testing.T) {
	// Not started: buffers fill up and the rest is dropped.
	disp := NewDispatcher(1, &recordingDeliverer{}, zerolog.Nop())
	depth := metrics.NotificationsQueueDepth.WithLabelValues("0")
	before := testutil.ToFloat64(depth)

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			disp.Notify(domain.Notification{Recipient: "raju@gmail.com", Title: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Notify blocked on a full queue")
	}
	if got := len(disp.workers[0]); got != channelBuffer {
		t.Fatalf("expected a full buffer of %d, got %d", channelBuffer, got)
	}
	if got := testutil.ToFloat64(depth) - before; got != channelBuffer {
		t.Fatalf("queue depth grew by %v, want %d (dropped ones must not count)", got, channelBuffer)
	}
}

func TestDispatcher_DeliveryFailureKeepsWorking(t *testing.T) {
	d := &recordingDeliverer{fail: true}
	disp := NewDispatcher(1, d, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	disp.Notify(domain.Notification{Recipient: "a@b.c", Title: "1"})
	disp.Notify(domain.Notification{Recipient: "a@b.c", Title: "2"})
	waitFor(t, func() bool { return d.count() == 2 })
}
