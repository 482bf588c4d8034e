package transcoder

import (
	"io"

	"github.com/muxable/libav/pkg/av"
)

// Demuxer opens a container and produces packets for its streams.
type Demuxer struct {
	input *av.InputContext
}

// OpenDemuxer demuxes from a URL (file path, network address, device).
func OpenDemuxer(url string, options map[string]string) (*Demuxer, error) {
	var dict *av.Dictionary
	if len(options) > 0 {
		d, err := av.NewDictionary(options)
		if err != nil {
			return nil, err
		}
		defer d.Close()
		dict = d
	}

	input, err := av.OpenInput(url, "", dict)
	if err != nil {
		return nil, err
	}
	return &Demuxer{input: input}, nil
}

// NewDemuxer demuxes from an arbitrary byte stream. formatName may be empty
// if r is seekable enough for the container to be probed.
func NewDemuxer(r io.Reader, formatName string) (*Demuxer, error) {
	ioctx, err := av.NewReaderContext(r)
	if err != nil {
		return nil, err
	}

	input, err := av.OpenInputIO(ioctx, formatName, nil)
	if err != nil {
		return nil, err
	}
	return &Demuxer{input: input}, nil
}

func (d *Demuxer) Streams() []*av.Stream {
	return d.input.Streams()
}

// BestStream selects the preferred stream of the given kind.
func (d *Demuxer) BestStream(kind av.MediaType) (*av.Stream, error) {
	stream, _, err := d.input.FindBestStream(kind)
	return stream, err
}

func (d *Demuxer) ReadAVPacket(p *av.AVPacket) error {
	return d.input.ReadAVPacket(p)
}

// Seek moves to the keyframe at or before ts in the stream's time base.
func (d *Demuxer) Seek(stream *av.Stream, ts int64) error {
	return d.input.Seek(stream, ts)
}

func (d *Demuxer) Close() error {
	return d.input.Close()
}

var _ av.AVPacketReadCloser = (*Demuxer)(nil)
