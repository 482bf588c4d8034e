package rtc

import (
	"io"

	"github.com/muxable/libav/internal/codecs"
	"github.com/pion/rtp"
	"github.com/pion/rtpio/pkg/rtpio"
	"github.com/pion/webrtc/v3"
	"go.uber.org/zap"
)

// TrackLocal fans marshalled RTP packets out to the session's writers.
type TrackLocal struct {
	sessionName string
	codec       webrtc.RTPCodecParameters

	writers []io.Writer
}

func NewTrackLocal(codec webrtc.RTPCodecParameters, sessionName string) *TrackLocal {
	return &TrackLocal{
		sessionName: sessionName,
		codec:       codec,
	}
}

func (t *TrackLocal) SessionName() string {
	return t.sessionName
}

func (t *TrackLocal) PayloadType() webrtc.PayloadType {
	return t.codec.PayloadType
}

func (t *TrackLocal) Kind() webrtc.RTPCodecType {
	return codecs.KindOf(t.codec.MimeType)
}

func (t *TrackLocal) Codec() webrtc.RTPCodecParameters {
	return t.codec
}

func (t *TrackLocal) Write(buf []byte) (int, error) {
	for _, w := range t.writers {
		if _, err := w.Write(buf); err != nil {
			zap.L().Error("failed to write to session", zap.Error(err))
		}
	}
	return len(buf), nil
}

func (t *TrackLocal) WriteRTP(p *rtp.Packet) error {
	// the wire payload type must match the format the session advertised.
	p.Header.PayloadType = uint8(t.codec.PayloadType)
	buf, err := p.Marshal()
	if err != nil {
		return err
	}
	n, err := t.Write(buf)
	if err != nil {
		return err
	}
	if n < len(buf) {
		return io.ErrShortWrite
	}
	return nil
}

var _ io.Writer = (*TrackLocal)(nil)
var _ rtpio.RTPWriter = (*TrackLocal)(nil)

// TrackRemote is a single inbound media stream described by a session.
type TrackRemote struct {
	io.Reader
	rtpio.RTPReader
	sessionName string
	payloadType webrtc.PayloadType
	kind        webrtc.RTPCodecType
	codec       webrtc.RTPCodecParameters
}

func (t *TrackRemote) SessionName() string {
	return t.sessionName
}

func (t *TrackRemote) PayloadType() webrtc.PayloadType {
	return t.payloadType
}

func (t *TrackRemote) Kind() webrtc.RTPCodecType {
	return t.kind
}

func (t *TrackRemote) Codec() webrtc.RTPCodecParameters {
	return t.codec
}
