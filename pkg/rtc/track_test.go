package rtc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/muxable/libav/internal/codecs"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v3"
)

func TestTrackLocal_WriteRTPStampsPayloadType(t *testing.T) {
	tl := NewTrackLocal(codecs.DefaultOutputCodecs[webrtc.MimeTypeOpus], "test")

	var buf bytes.Buffer
	tl.writers = append(tl.writers, &buf)

	// the packetizer leaves the payload type unset.
	if err := tl.WriteRTP(&rtp.Packet{
		Header:  rtp.Header{Version: 2, SequenceNumber: 1, Timestamp: 960},
		Payload: []byte{1, 2, 3},
	}); err != nil {
		t.Fatalf("failed to write packet: %v", err)
	}

	p := &rtp.Packet{}
	if err := p.Unmarshal(buf.Bytes()); err != nil {
		t.Fatalf("failed to unmarshal packet: %v", err)
	}
	if p.PayloadType != uint8(tl.PayloadType()) {
		t.Errorf("payload type = %d, want %d", p.PayloadType, tl.PayloadType())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("session gone")
}

func TestTrackLocal_WriteContinuesPastFailedWriter(t *testing.T) {
	tl := NewTrackLocal(codecs.DefaultOutputCodecs[webrtc.MimeTypeOpus], "test")

	var buf bytes.Buffer
	tl.writers = append(tl.writers, failingWriter{}, &buf)

	payload := []byte{1, 2, 3}
	n, err := tl.Write(payload)
	if err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if n != len(payload) {
		t.Errorf("Write() = %d, want %d", n, len(payload))
	}
	if !bytes.Equal(buf.Bytes(), payload) {
		t.Errorf("remaining writer did not receive the payload")
	}
}
