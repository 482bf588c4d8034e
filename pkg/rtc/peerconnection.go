// Package rtc bridges RTP and WebRTC sessions into the native demux/mux
// layer: inbound tracks become packet sources and encoded streams become
// outbound tracks.
package rtc

import (
	"github.com/muxable/libav/internal/codecs"
	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"
)

// NewPeerConnection builds a PeerConnection whose media engine accepts every
// codec the transcoding layer can produce, not just the browser defaults.
func NewPeerConnection(configuration webrtc.Configuration) (*webrtc.PeerConnection, error) {
	m := &webrtc.MediaEngine{}

	for _, codec := range codecs.DefaultOutputCodecs {
		kind := codecs.KindOf(codec.MimeType)
		if kind != webrtc.RTPCodecTypeVideo && kind != webrtc.RTPCodecTypeAudio {
			continue
		}
		if err := m.RegisterCodec(codec, kind); err != nil {
			return nil, err
		}
	}

	i := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(m, i); err != nil {
		return nil, err
	}

	return webrtc.NewAPI(webrtc.WithMediaEngine(m), webrtc.WithInterceptorRegistry(i)).NewPeerConnection(configuration)
}
