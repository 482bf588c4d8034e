package transcoder

import (
	"io"

	"github.com/muxable/libav/pkg/av"
)

// Decoder decodes one stream's packets into raw frames. It can be driven two
// ways: push packets with WriteAVPacket and pull with ReadAVFrame handling
// av.ErrAgain, or attach a packet source and let ReadAVFrame pull on demand.
type Decoder struct {
	decoderctx *av.CodecContext
	stream     *av.Stream

	source av.AVPacketReader
	pkt    *av.AVPacket

	hw       *av.HWDeviceContext
	hwFrame  *av.AVFrame
	download bool

	draining bool
}

type DecoderOption func(*Decoder)

// WithHWDecode decodes on the given hardware device. Unless the frames are
// consumed by a hardware-aware filter graph, pair it with WithFrameDownload.
func WithHWDecode(hw *av.HWDeviceContext) DecoderOption {
	return func(d *Decoder) {
		d.hw = hw
	}
}

// WithFrameDownload transfers decoded hardware frames into system memory so
// software filters and encoders can consume them.
func WithFrameDownload() DecoderOption {
	return func(d *Decoder) {
		d.download = true
	}
}

// WithSource attaches a packet source for pull-mode decoding. Packets from
// other streams are skipped.
func WithSource(source av.AVPacketReader) DecoderOption {
	return func(d *Decoder) {
		d.source = source
	}
}

// NewDecoder opens a decoder for the stream. decoderName overrides the
// default implementation for the stream's codec id, eg. "libdav1d".
func NewDecoder(stream *av.Stream, decoderName string, opts ...DecoderOption) (*Decoder, error) {
	var codec *av.Codec
	var err error
	if decoderName != "" {
		codec, err = av.FindDecoderByName(decoderName)
	} else {
		codec, err = av.FindDecoder(stream.CodecParameters().CodecID())
	}
	if err != nil {
		return nil, err
	}

	decoderctx, err := av.NewCodecContext(codec)
	if err != nil {
		return nil, err
	}

	if err := decoderctx.ParametersFrom(stream.CodecParameters()); err != nil {
		decoderctx.Close()
		return nil, err
	}
	decoderctx.SetTimeBase(stream.TimeBase())

	d := &Decoder{decoderctx: decoderctx, stream: stream}
	for _, opt := range opts {
		opt(d)
	}

	if d.hw != nil {
		decoderctx.SetHWDeviceContext(d.hw)
	}

	if err := decoderctx.Open(nil); err != nil {
		decoderctx.Close()
		return nil, err
	}
	return d, nil
}

func (d *Decoder) CodecContext() *av.CodecContext {
	return d.decoderctx
}

func (d *Decoder) Stream() *av.Stream {
	return d.stream
}

// WriteAVPacket sends a packet to the decoder. A nil packet begins draining.
func (d *Decoder) WriteAVPacket(p *av.AVPacket) error {
	if p == nil {
		d.draining = true
		return d.decoderctx.SendPacket(nil)
	}
	p.RescaleTS(d.decoderctx.TimeBase())
	return d.decoderctx.SendPacket(p)
}

// ReadAVFrame reads the next decoded frame. Without a source, av.ErrAgain
// indicates more packets must be written; with one, packets are pulled until
// a frame is produced. io.EOF is returned once the decoder is drained.
func (d *Decoder) ReadAVFrame(f *av.AVFrame) error {
	for {
		err := d.decoderctx.ReceiveFrame(f)
		if err == nil {
			if d.download && f.IsHardware() {
				return d.downloadFrame(f)
			}
			return nil
		}
		if err != av.ErrAgain {
			return err
		}
		if d.source == nil {
			return av.ErrAgain
		}
		if err := d.pullPacket(); err != nil {
			return err
		}
	}
}

func (d *Decoder) pullPacket() error {
	if d.pkt == nil {
		d.pkt = av.NewAVPacket()
	}
	for {
		if err := d.source.ReadAVPacket(d.pkt); err != nil {
			if err == io.EOF {
				return d.WriteAVPacket(nil)
			}
			return err
		}
		if d.pkt.StreamIndex() != d.stream.Index() {
			d.pkt.Unref()
			continue
		}
		err := d.WriteAVPacket(d.pkt)
		d.pkt.Unref()
		return err
	}
}

func (d *Decoder) downloadFrame(f *av.AVFrame) error {
	if d.hwFrame == nil {
		d.hwFrame = av.NewAVFrame()
	}
	d.hwFrame.Unref()
	if err := f.TransferTo(d.hwFrame); err != nil {
		return err
	}
	// swap so the caller sees the system memory frame.
	*f, *d.hwFrame = *d.hwFrame, *f
	return nil
}

func (d *Decoder) Close() error {
	if d.pkt != nil {
		d.pkt.Close()
	}
	if d.hwFrame != nil {
		d.hwFrame.Close()
	}
	return d.decoderctx.Close()
}

var _ av.AVFrameReadCloser = (*Decoder)(nil)
var _ av.AVPacketWriter = (*Decoder)(nil)
