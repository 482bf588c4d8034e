package transcoder

import (
	"errors"
	"io"

	"github.com/muxable/libav/pkg/av"
)

// Muxer writes packets into a container.
type Muxer struct {
	output *av.OutputContext

	headerWritten  bool
	trailerWritten bool
}

// OpenMuxer muxes to a URL. formatName may be empty to guess from the url.
func OpenMuxer(url, formatName string) (*Muxer, error) {
	output, err := av.NewOutputContext(formatName, url)
	if err != nil {
		return nil, err
	}
	return &Muxer{output: output}, nil
}

// NewMuxer muxes to an arbitrary byte sink. Non-seekable sinks only work with
// formats that can stream (mpegts, matroska with live options, ...).
func NewMuxer(w io.Writer, formatName string) (*Muxer, error) {
	ioctx, err := av.NewWriterContext(w)
	if err != nil {
		return nil, err
	}

	output, err := av.NewOutputContextIO(formatName, ioctx)
	if err != nil {
		return nil, err
	}
	return &Muxer{output: output}, nil
}

// GlobalHeaderRequired reports whether encoders feeding this muxer need
// AV_CODEC_FLAG_GLOBAL_HEADER.
func (m *Muxer) GlobalHeaderRequired() bool {
	return m.output.GlobalHeaderRequired()
}

// AddStream adds an output stream for an opened encoder and returns its
// index. All streams must be added before the first write.
func (m *Muxer) AddStream(encoder *Encoder) (int, error) {
	if m.headerWritten {
		return 0, errors.New("streams cannot be added after the header is written")
	}
	stream, err := m.output.NewStreamFromCodecContext(encoder.CodecContext())
	if err != nil {
		return 0, err
	}
	return stream.Index(), nil
}

// AddStreamFromParameters adds an output stream copying codec parameters,
// for remuxing.
func (m *Muxer) AddStreamFromParameters(par *av.CodecParameters) (int, error) {
	if m.headerWritten {
		return 0, errors.New("streams cannot be added after the header is written")
	}
	stream, err := m.output.NewStreamFromParameters(par)
	if err != nil {
		return 0, err
	}
	return stream.Index(), nil
}

// WriteAVPacket writes a packet carrying its destination stream index. The
// container header is written lazily on the first packet.
func (m *Muxer) WriteAVPacket(p *av.AVPacket) error {
	if !m.headerWritten {
		if err := m.output.WriteHeader(nil); err != nil {
			return err
		}
		m.headerWritten = true
	}
	return m.output.WriteAVPacket(p)
}

func (m *Muxer) Close() error {
	if m.headerWritten && !m.trailerWritten {
		m.trailerWritten = true
		if err := m.output.WriteTrailer(); err != nil {
			m.output.Close()
			return err
		}
	}
	return m.output.Close()
}

var _ av.AVPacketWriteCloser = (*Muxer)(nil)
