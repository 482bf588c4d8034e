package rtc

import (
	"os"

	"github.com/muxable/libav/pkg/av"
	"github.com/pion/rtpio/pkg/rtpio"
	"github.com/pion/webrtc/v3"
)

// RTPDemuxer depacketizes an RTP stream into timestamped packets of the
// underlying codec. The heavy lifting (jitter handling, depacketization,
// timestamp recovery) is done by the native sdp demuxer; the stream enters
// through custom IO so no sockets are opened.
type RTPDemuxer struct {
	*av.InputContext

	sdpfile string
}

// rtpPacketReader feeds one marshalled packet per read call, which is what
// the packetized custom IO path expects.
type rtpPacketReader struct {
	in rtpio.RTPReader
}

func (r *rtpPacketReader) Read(buf []byte) (int, error) {
	p, err := r.in.ReadRTP()
	if err != nil {
		return 0, err
	}
	return p.MarshalTo(buf)
}

// NewRTPDemuxer demuxes in, which carries RTP packets of the given codec.
func NewRTPDemuxer(codec webrtc.RTPCodecParameters, in rtpio.RTPReader) (*RTPDemuxer, error) {
	sdpfile, err := newTempSDP(codec)
	if err != nil {
		return nil, err
	}
	if err := sdpfile.Close(); err != nil {
		os.Remove(sdpfile.Name())
		return nil, err
	}

	ioctx, err := av.NewReaderContext(&rtpPacketReader{in: in})
	if err != nil {
		os.Remove(sdpfile.Name())
		return nil, err
	}

	inputctx, err := av.OpenInputSDP(sdpfile.Name(), ioctx)
	if err != nil {
		os.Remove(sdpfile.Name())
		return nil, err
	}

	return &RTPDemuxer{InputContext: inputctx, sdpfile: sdpfile.Name()}, nil
}

func (d *RTPDemuxer) Close() error {
	err := d.InputContext.Close()
	os.Remove(d.sdpfile)
	return err
}

var _ av.AVPacketReadCloser = (*RTPDemuxer)(nil)
