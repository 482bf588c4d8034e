package rtc

import (
	"bytes"
	"io"
	"testing"

	"github.com/muxable/libav/pkg/av"
	"github.com/pion/webrtc/v3"
)

// fakePacketSource emits fixed encoded packets on a 48kHz time base.
type fakePacketSource struct {
	payloads [][]byte
	pts      []int64
	next     int
}

func (s *fakePacketSource) ReadAVPacket(p *av.AVPacket) error {
	if s.next >= len(s.payloads) {
		return io.EOF
	}
	if err := p.SetData(s.payloads[s.next]); err != nil {
		return err
	}
	p.SetPTS(s.pts[s.next])
	p.TimeBase = av.NewRational(1, 48000)
	s.next++
	return nil
}

func TestRTPMuxer(t *testing.T) {
	source := &fakePacketSource{
		payloads: [][]byte{{1, 2, 3}, {4, 5, 6}},
		pts:      []int64{0, 960},
	}

	muxer, err := NewRTPMuxer(webrtc.RTPCodecCapability{
		MimeType:  webrtc.MimeTypeOpus,
		ClockRate: 48000,
		Channels:  2,
	}, source)
	if err != nil {
		t.Fatalf("failed to create muxer: %v", err)
	}
	defer muxer.Close()

	first, err := muxer.ReadRTP()
	if err != nil {
		t.Fatalf("failed to read packet: %v", err)
	}
	if !bytes.Equal(first.Payload, []byte{1, 2, 3}) {
		t.Errorf("payload = %v, want [1 2 3]", first.Payload)
	}
	if first.Timestamp != 0 {
		t.Errorf("timestamp = %d, want 0", first.Timestamp)
	}
	if !first.Marker {
		t.Errorf("a single-payload packet should carry the marker")
	}
	if first.SSRC != uint32(muxer.SSRC()) {
		t.Errorf("ssrc = %d, want %d", first.SSRC, muxer.SSRC())
	}

	second, err := muxer.ReadRTP()
	if err != nil {
		t.Fatalf("failed to read packet: %v", err)
	}
	if second.Timestamp != 960 {
		t.Errorf("timestamp = %d, want 960", second.Timestamp)
	}
	if second.SequenceNumber != first.SequenceNumber+1 {
		t.Errorf("sequence numbers = %d, %d, want consecutive", first.SequenceNumber, second.SequenceNumber)
	}

	if _, err := muxer.ReadRTP(); err != io.EOF {
		t.Fatalf("ReadRTP() after exhaustion = %v, want io.EOF", err)
	}
}

func TestRTPMuxer_ClockRescale(t *testing.T) {
	// encoder time base 1/48000, rtp clock 90kHz.
	source := &fakePacketSource{
		// a single annex-b nal unit.
		payloads: [][]byte{{0x00, 0x00, 0x00, 0x01, 0x65, 0x01, 0x02, 0x03}},
		pts:      []int64{48000},
	}

	muxer, err := NewRTPMuxer(webrtc.RTPCodecCapability{
		MimeType:  webrtc.MimeTypeH264,
		ClockRate: 90000,
	}, source)
	if err != nil {
		t.Fatalf("failed to create muxer: %v", err)
	}
	defer muxer.Close()

	p, err := muxer.ReadRTP()
	if err != nil {
		t.Fatalf("failed to read packet: %v", err)
	}
	if p.Timestamp != 90000 {
		t.Errorf("timestamp = %d, want 90000", p.Timestamp)
	}
}

func TestNewRTPMuxer_UnsupportedCodec(t *testing.T) {
	if _, err := NewRTPMuxer(webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeH265}, &fakePacketSource{}); err == nil {
		t.Errorf("expected error for unsupported mime type")
	}
}
