package rtc

import (
	"fmt"
	"math/rand"

	"github.com/muxable/libav/pkg/av"
	"github.com/pion/rtp"
	"github.com/pion/rtp/codecs"
	"github.com/pion/rtpio/pkg/rtpio"
	"github.com/pion/webrtc/v3"
)

const rtpOutboundMTU = 1200

// payloader returns the packetizer for a mime type. These cover the codecs
// the encoders are most likely to produce; native packetization is not worth
// the muxer round trip.
func payloader(mimeType string) rtp.Payloader {
	switch mimeType {
	case webrtc.MimeTypeH264:
		return &codecs.H264Payloader{}
	case webrtc.MimeTypeVP8:
		return &codecs.VP8Payloader{}
	case webrtc.MimeTypeVP9:
		return &codecs.VP9Payloader{}
	case webrtc.MimeTypeOpus:
		return &codecs.OpusPayloader{}
	case webrtc.MimeTypeG722:
		return &codecs.G722Payloader{}
	case webrtc.MimeTypePCMU, webrtc.MimeTypePCMA:
		return &codecs.G711Payloader{}
	}
	return nil
}

// RTPMuxer packetizes encoded packets from a source into RTP.
type RTPMuxer struct {
	codec  webrtc.RTPCodecCapability
	source av.AVPacketReader

	pkt    *av.AVPacket
	outBuf []*rtp.Packet

	payloader rtp.Payloader
	sequencer rtp.Sequencer
	ssrc      webrtc.SSRC
}

func NewRTPMuxer(codec webrtc.RTPCodecCapability, source av.AVPacketReader) (*RTPMuxer, error) {
	p := payloader(codec.MimeType)
	if p == nil {
		return nil, fmt.Errorf("no payloader for %s", codec.MimeType)
	}
	return &RTPMuxer{
		codec:     codec,
		source:    source,
		pkt:       av.NewAVPacket(),
		payloader: p,
		sequencer: rtp.NewRandomSequencer(),
		ssrc:      webrtc.SSRC(rand.Uint32()),
	}, nil
}

func (m *RTPMuxer) SSRC() webrtc.SSRC {
	return m.ssrc
}

// ReadRTP returns the next packetized payload, pulling from the source as
// needed. Timestamps are rescaled to the codec's RTP clock rate.
func (m *RTPMuxer) ReadRTP() (*rtp.Packet, error) {
	for len(m.outBuf) == 0 {
		if err := m.source.ReadAVPacket(m.pkt); err != nil {
			return nil, err
		}

		pts := m.pkt.PTS()
		if pts == av.NoPTSValue {
			pts = m.pkt.DTS()
		}
		ts := m.pkt.TimeBase.Rescale(pts, av.NewRational(1, int(m.codec.ClockRate)))

		data := m.pkt.Data()
		m.pkt.Unref()

		payloads := m.payloader.Payload(rtpOutboundMTU-12, data)
		for i, payload := range payloads {
			m.outBuf = append(m.outBuf, &rtp.Packet{
				Header: rtp.Header{
					Version:        2,
					Marker:         i == len(payloads)-1,
					SequenceNumber: m.sequencer.NextSequenceNumber(),
					Timestamp:      uint32(ts),
					SSRC:           uint32(m.ssrc),
				},
				Payload: payload,
			})
		}
	}

	packet := m.outBuf[0]
	m.outBuf = m.outBuf[1:]
	return packet, nil
}

func (m *RTPMuxer) Close() error {
	return m.pkt.Close()
}

var _ rtpio.RTPReader = (*RTPMuxer)(nil)
