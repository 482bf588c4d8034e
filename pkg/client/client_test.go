package client

import (
	"context"
	"testing"
	"time"

	"github.com/pion/webrtc/v3"
)

func newTestClient() *TranscoderClient {
	return &TranscoderClient{
		promises:  make(map[string]chan *webrtc.TrackRemote),
		unmatched: make(map[string]*webrtc.TrackRemote),
	}
}

func TestAwaitTrack_TrackArrivesFirst(t *testing.T) {
	c := newTestClient()

	// negotiation can complete before the rpc response carries the track id.
	tr := &webrtc.TrackRemote{}
	c.resolveTrack(tr)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := c.awaitTrack(ctx, tr.ID())
	if err != nil {
		t.Fatalf("failed to await track: %v", err)
	}
	if got != tr {
		t.Errorf("awaitTrack returned the wrong track")
	}
	if len(c.unmatched) != 0 {
		t.Errorf("unmatched tracks remain: %d", len(c.unmatched))
	}
}

func TestAwaitTrack_AwaitFirst(t *testing.T) {
	c := newTestClient()

	tr := &webrtc.TrackRemote{}
	go func() {
		time.Sleep(10 * time.Millisecond)
		c.resolveTrack(tr)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got, err := c.awaitTrack(ctx, tr.ID())
	if err != nil {
		t.Fatalf("failed to await track: %v", err)
	}
	if got != tr {
		t.Errorf("awaitTrack returned the wrong track")
	}
}

func TestAwaitTrack_Cancelled(t *testing.T) {
	c := newTestClient()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.awaitTrack(ctx, "missing"); err != context.Canceled {
		t.Fatalf("awaitTrack() = %v, want context.Canceled", err)
	}
	if len(c.promises) != 0 {
		t.Errorf("promises remain after cancellation: %d", len(c.promises))
	}
}
