package transcoder

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/muxable/libav/pkg/av"
)

func TestPacer_PassesUntimedPackets(t *testing.T) {
	p := NewPacer(clock.NewMock())

	// these must return without consulting the clock.
	p.Wait(av.NoPTSValue, av.NewRational(1, 90000))
	p.Wait(1000, av.Rational{})
}

func TestPacer_WaitsForMediaTime(t *testing.T) {
	mock := clock.NewMock()
	p := NewPacer(mock)

	// the first packet anchors the timeline.
	p.Wait(0, av.NewRational(1, 90000))

	done := make(chan struct{})
	go func() {
		// one second of media time ahead of the anchor.
		p.Wait(90000, av.NewRational(1, 90000))
		close(done)
	}()

	// let the goroutine reach the sleep before advancing the clock.
	time.Sleep(10 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("Wait returned before media time was due")
	default:
	}

	mock.Add(time.Second)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the clock advanced")
	}
}

func TestPacer_LatePacketsPassImmediately(t *testing.T) {
	mock := clock.NewMock()
	p := NewPacer(mock)

	p.Wait(0, av.NewRational(1, 90000))
	mock.Add(2 * time.Second)

	// due one second ago, must not block.
	p.Wait(90000, av.NewRational(1, 90000))
}

func TestPipeline(t *testing.T) {
	demuxer, err := NewDemuxer(bytes.NewReader(makeTestInput(t, 25)), "mpegts")
	if err != nil {
		t.Fatalf("failed to create demuxer: %v", err)
	}
	defer demuxer.Close()

	// mpegts timestamps are 90kHz, beyond the mpeg4 encoder's time base limit,
	// so the filter rewrites the time base to the original frame cadence.
	pipeline, err := NewPipeline(demuxer.Streams()[0], demuxer,
		WithVideoEncoder("mpeg4"), WithVideoFilter("settb=1/25"))
	if err != nil {
		t.Fatalf("failed to create pipeline: %v", err)
	}
	defer pipeline.Close()

	if pipeline.Encoder().Name() != "mpeg4" {
		t.Errorf("encoder = %s, want mpeg4", pipeline.Encoder().Name())
	}

	p := av.NewAVPacket()
	defer p.Close()

	read := 0
	for {
		if err := pipeline.ReadAVPacket(p); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("failed to read packet: %v", err)
		}
		if read == 0 && !p.Keyframe() {
			t.Errorf("first packet should be a keyframe")
		}
		read++
		p.Unref()
	}

	// repeated reads after exhaustion stay at EOF.
	if err := pipeline.ReadAVPacket(p); err != io.EOF {
		t.Fatalf("ReadAVPacket() after EOF = %v, want io.EOF", err)
	}

	if read != 25 {
		t.Errorf("read %d packets, want 25", read)
	}
}
