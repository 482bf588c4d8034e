package rtc

import (
	"testing"
	"time"

	"github.com/muxable/libav/internal/codecs"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v3"
)

func TestGetFreePort(t *testing.T) {
	port, err := GetFreePort()
	if err != nil {
		t.Fatalf("failed to get free port: %v", err)
	}
	if port == 0 {
		t.Errorf("port should be non-zero")
	}
}

// Sends a track through the udp loopback a session description advertises and
// receives it on the other side.
func TestSendReceive(t *testing.T) {
	tl := NewTrackLocal(codecs.DefaultOutputCodecs[webrtc.MimeTypeOpus], "test")

	desc, err := Send([]*TrackLocal{tl})
	if err != nil {
		t.Fatalf("failed to create send session: %v", err)
	}
	if len(desc.MediaDescriptions) != 1 {
		t.Fatalf("got %d media descriptions, want 1", len(desc.MediaDescriptions))
	}

	tracks, err := Receive(desc)
	if err != nil {
		t.Fatalf("failed to create receive session: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}

	tr := tracks[0]
	if tr.Kind() != webrtc.RTPCodecTypeAudio {
		t.Errorf("Kind() = %v, want audio", tr.Kind())
	}
	if tr.PayloadType() != tl.PayloadType() {
		t.Errorf("PayloadType() = %d, want %d", tr.PayloadType(), tl.PayloadType())
	}
	codec := tr.Codec()
	if codec.MimeType != webrtc.MimeTypeOpus {
		t.Errorf("MimeType = %s, want %s", codec.MimeType, webrtc.MimeTypeOpus)
	}
	if codec.ClockRate != 48000 || codec.Channels != 2 {
		t.Errorf("got clock rate %d channels %d, want 48000/2", codec.ClockRate, codec.Channels)
	}

	sent := &rtp.Packet{
		Header: rtp.Header{
			Version:        2,
			PayloadType:    uint8(tl.PayloadType()),
			SequenceNumber: 27,
			Timestamp:      960,
			SSRC:           0x1234,
		},
		Payload: []byte{1, 2, 3},
	}

	received := make(chan *rtp.Packet, 1)
	go func() {
		p, err := tr.ReadRTP()
		if err != nil {
			return
		}
		received <- p
	}()

	// udp writes can race the reader's listen loop, so retry until delivery.
	for i := 0; i < 10; i++ {
		if err := tl.WriteRTP(sent); err != nil {
			t.Fatalf("failed to write packet: %v", err)
		}
		select {
		case p := <-received:
			if p.SequenceNumber != sent.SequenceNumber || p.Timestamp != sent.Timestamp {
				t.Errorf("got seq=%d ts=%d, want seq=%d ts=%d", p.SequenceNumber, p.Timestamp, sent.SequenceNumber, sent.Timestamp)
			}
			return
		case <-time.After(100 * time.Millisecond):
		}
	}
	t.Fatal("packet was not received")
}
