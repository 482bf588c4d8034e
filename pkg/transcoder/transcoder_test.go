package transcoder

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/muxable/libav/pkg/av"
	"go.uber.org/goleak"
)

// makeTestInput returns an in-memory mpegts stream of synthetic video frames.
// mpeg4 is used because it ships with every build of the native library.
func makeTestInput(t *testing.T, frames int) []byte {
	t.Helper()

	var buf bytes.Buffer
	muxer, err := NewMuxer(&buf, "mpegts")
	if err != nil {
		t.Fatalf("failed to create muxer: %v", err)
	}

	encoder, err := NewEncoder("mpeg4", EncoderConfig{
		Width:        64,
		Height:       48,
		PixelFormat:  av.PixelFormatYUV420P,
		TimeBase:     av.NewRational(1, 25),
		GopSize:      5,
		GlobalHeader: muxer.GlobalHeaderRequired(),
	})
	if err != nil {
		t.Fatalf("failed to create encoder: %v", err)
	}

	index, err := muxer.AddStream(encoder)
	if err != nil {
		t.Fatalf("failed to add stream: %v", err)
	}

	p := av.NewAVPacket()
	defer p.Close()

	drain := func() {
		for {
			if err := encoder.ReadAVPacket(p); err != nil {
				if err == av.ErrAgain || err == io.EOF {
					return
				}
				t.Fatalf("failed to read packet: %v", err)
			}
			p.SetStreamIndex(index)
			if err := muxer.WriteAVPacket(p); err != nil {
				t.Fatalf("failed to write packet: %v", err)
			}
			p.Unref()
		}
	}

	frame := av.NewAVFrame()
	frame.SetVideoGeometry(64, 48, av.PixelFormatYUV420P)
	if err := frame.AllocBuffer(); err != nil {
		t.Fatalf("failed to allocate buffer: %v", err)
	}
	for i := 0; i < frames; i++ {
		if err := frame.MakeWritable(); err != nil {
			t.Fatalf("failed to make writable: %v", err)
		}
		for plane, h := range []int{48, 24, 24} {
			if err := frame.FillPlane(plane, make([]byte, frame.Linesize(plane)*h)); err != nil {
				t.Fatalf("failed to fill plane: %v", err)
			}
		}
		frame.SetPTS(int64(i))
		if err := encoder.WriteAVFrame(frame); err != nil {
			t.Fatalf("failed to write frame %d: %v", i, err)
		}
		drain()
	}
	frame.Close()

	if err := encoder.WriteAVFrame(nil); err != nil {
		t.Fatalf("failed to flush encoder: %v", err)
	}
	drain()

	encoder.Close()
	if err := muxer.Close(); err != nil {
		t.Fatalf("failed to close muxer: %v", err)
	}
	return buf.Bytes()
}

// countPackets demuxes an in-memory container and returns the packet count of
// its single stream, asserting the codec name on the way.
func countPackets(t *testing.T, data []byte, codecName string) int {
	t.Helper()

	demuxer, err := NewDemuxer(bytes.NewReader(data), "mpegts")
	if err != nil {
		t.Fatalf("failed to create demuxer: %v", err)
	}
	defer demuxer.Close()

	streams := demuxer.Streams()
	if len(streams) != 1 {
		t.Fatalf("got %d streams, want 1", len(streams))
	}
	decoder, err := av.FindDecoder(streams[0].CodecParameters().CodecID())
	if err != nil {
		t.Fatalf("failed to find decoder: %v", err)
	}
	if decoder.Name() != codecName {
		t.Fatalf("codec = %s, want %s", decoder.Name(), codecName)
	}

	p := av.NewAVPacket()
	defer p.Close()

	count := 0
	for {
		if err := demuxer.ReadAVPacket(p); err != nil {
			if err == io.EOF {
				return count
			}
			t.Fatalf("failed to read packet: %v", err)
		}
		count++
		p.Unref()
	}
}

func TestTranscoder_Transcode(t *testing.T) {
	defer goleak.VerifyNone(t)

	demuxer, err := NewDemuxer(bytes.NewReader(makeTestInput(t, 25)), "mpegts")
	if err != nil {
		t.Fatalf("failed to create demuxer: %v", err)
	}
	defer demuxer.Close()

	var out bytes.Buffer
	muxer, err := NewMuxer(&out, "mpegts")
	if err != nil {
		t.Fatalf("failed to create muxer: %v", err)
	}

	// settb keeps the encoder time base within mpeg4's 16-bit denominator limit.
	tc, err := New(demuxer, muxer,
		WithVideoEncoder("mpeg4"), WithVideoFilter("settb=1/25"), WithGopSize(5))
	if err != nil {
		t.Fatalf("failed to create transcoder: %v", err)
	}
	defer tc.Close()

	if err := tc.Transcode(context.Background()); err != nil {
		t.Fatalf("failed to transcode: %v", err)
	}
	if err := muxer.Close(); err != nil {
		t.Fatalf("failed to close muxer: %v", err)
	}

	if got := countPackets(t, out.Bytes(), "mpeg4"); got != 25 {
		t.Errorf("transcoded %d packets, want 25", got)
	}
}

func TestTranscoder_TranscodeCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	demuxer, err := NewDemuxer(bytes.NewReader(makeTestInput(t, 25)), "mpegts")
	if err != nil {
		t.Fatalf("failed to create demuxer: %v", err)
	}
	defer demuxer.Close()

	var out bytes.Buffer
	muxer, err := NewMuxer(&out, "mpegts")
	if err != nil {
		t.Fatalf("failed to create muxer: %v", err)
	}
	defer muxer.Close()

	tc, err := New(demuxer, muxer,
		WithVideoEncoder("mpeg4"), WithVideoFilter("settb=1/25"))
	if err != nil {
		t.Fatalf("failed to create transcoder: %v", err)
	}
	defer tc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the run must unwind without deadlocking on queued packets.
	if err := tc.Transcode(ctx); err != context.Canceled {
		t.Fatalf("Transcode() = %v, want context.Canceled", err)
	}
}

func TestTranscoder_Remux(t *testing.T) {
	demuxer, err := NewDemuxer(bytes.NewReader(makeTestInput(t, 25)), "mpegts")
	if err != nil {
		t.Fatalf("failed to create demuxer: %v", err)
	}
	defer demuxer.Close()

	var out bytes.Buffer
	muxer, err := NewMuxer(&out, "mpegts")
	if err != nil {
		t.Fatalf("failed to create muxer: %v", err)
	}

	tc, err := New(demuxer, muxer)
	if err != nil {
		t.Fatalf("failed to create transcoder: %v", err)
	}
	defer tc.Close()

	if err := tc.Remux(context.Background()); err != nil {
		t.Fatalf("failed to remux: %v", err)
	}
	if err := muxer.Close(); err != nil {
		t.Fatalf("failed to close muxer: %v", err)
	}

	// remuxing copies the packets without a codec cycle.
	if got := countPackets(t, out.Bytes(), "mpeg4"); got != 25 {
		t.Errorf("remuxed %d packets, want 25", got)
	}
}
