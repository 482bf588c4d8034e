package server

import (
	"io"

	"github.com/google/uuid"
	"github.com/muxable/libav/pkg/rtc"
	"github.com/muxable/libav/pkg/transcoder"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v3"
	"go.uber.org/zap"
)

// trackRemoteReader adapts a webrtc track to a plain RTP packet source,
// dropping the interceptor attributes.
type trackRemoteReader struct {
	tr *webrtc.TrackRemote
}

func (r *trackRemoteReader) ReadRTP() (*rtp.Packet, error) {
	p, _, err := r.tr.ReadRTP()
	return p, err
}

// TranscodeTrackRemote converts the remote track's media to the output codec
// and returns a local track carrying the result. The conversion runs on its
// own goroutine until the remote track ends.
func TranscodeTrackRemote(tr *webrtc.TrackRemote, outputCodec webrtc.RTPCodecParameters) (*webrtc.TrackLocalStaticRTP, error) {
	demuxer, err := rtc.NewRTPDemuxer(tr.Codec(), &trackRemoteReader{tr: tr})
	if err != nil {
		return nil, err
	}

	streams := demuxer.Streams()
	if len(streams) == 0 {
		demuxer.Close()
		return nil, io.ErrUnexpectedEOF
	}

	var codecOpt transcoder.Option
	if tr.Kind() == webrtc.RTPCodecTypeVideo {
		codecOpt = transcoder.WithVideoCodec(outputCodec.MimeType)
	} else {
		codecOpt = transcoder.WithAudioCodec(outputCodec.MimeType)
	}

	pipeline, err := transcoder.NewPipeline(streams[0], demuxer, codecOpt)
	if err != nil {
		demuxer.Close()
		return nil, err
	}

	muxer, err := rtc.NewRTPMuxer(outputCodec.RTPCodecCapability, pipeline)
	if err != nil {
		pipeline.Close()
		demuxer.Close()
		return nil, err
	}

	tl, err := webrtc.NewTrackLocalStaticRTP(outputCodec.RTPCodecCapability, uuid.NewString(), uuid.NewString())
	if err != nil {
		muxer.Close()
		pipeline.Close()
		demuxer.Close()
		return nil, err
	}

	go func() {
		defer demuxer.Close()
		defer pipeline.Close()
		defer muxer.Close()
		for {
			p, err := muxer.ReadRTP()
			if err != nil {
				if err != io.EOF {
					zap.L().Error("transcode ended", zap.Error(err))
				}
				return
			}
			if err := tl.WriteRTP(p); err != nil {
				zap.L().Error("failed to write packet", zap.Error(err))
				return
			}
		}
	}()

	return tl, nil
}
