package transcoder

import (
	"github.com/muxable/libav/pkg/av"
)

// EncoderConfig describes the frames the encoder will receive. The video and
// audio fields are mutually exclusive.
type EncoderConfig struct {
	Width       int
	Height      int
	PixelFormat av.PixelFormat
	FrameRate   av.Rational

	SampleRate    int
	Channels      int
	ChannelLayout uint64
	SampleFormat  av.SampleFormat

	TimeBase av.Rational
	BitRate  int64
	GopSize  int

	// GlobalHeader must be set when the target container requires extradata
	// hoisted out of the bitstream (mp4, mkv).
	GlobalHeader bool

	HWDevice *av.HWDeviceContext
	Options  map[string]string
}

// Encoder encodes raw frames into packets.
type Encoder struct {
	encoderctx *av.CodecContext
	draining   bool
}

// NewEncoder opens the named encoder (eg. "libx264", "h264_nvenc") with the
// given configuration.
func NewEncoder(encoderName string, cfg EncoderConfig) (*Encoder, error) {
	codec, err := av.FindEncoderByName(encoderName)
	if err != nil {
		return nil, err
	}

	encoderctx, err := av.NewCodecContext(codec)
	if err != nil {
		return nil, err
	}

	switch codec.MediaType() {
	case av.MediaTypeVideo:
		encoderctx.SetVideoGeometry(cfg.Width, cfg.Height, cfg.PixelFormat)
		if !cfg.FrameRate.IsZero() {
			encoderctx.SetFrameRate(cfg.FrameRate)
		}
	case av.MediaTypeAudio:
		encoderctx.SetAudioGeometry(cfg.SampleRate, cfg.Channels, cfg.ChannelLayout, cfg.SampleFormat)
	}

	timeBase := cfg.TimeBase
	if timeBase.IsZero() && cfg.SampleRate > 0 {
		timeBase = av.NewRational(1, cfg.SampleRate)
	}
	encoderctx.SetTimeBase(timeBase)

	if cfg.BitRate > 0 {
		encoderctx.SetBitRate(cfg.BitRate)
	}
	if cfg.GopSize > 0 {
		encoderctx.SetGopSize(cfg.GopSize)
	}
	if cfg.GlobalHeader {
		encoderctx.SetGlobalHeader()
	}
	if cfg.HWDevice != nil {
		encoderctx.SetHWDeviceContext(cfg.HWDevice)
	}

	var dict *av.Dictionary
	if len(cfg.Options) > 0 {
		d, err := av.NewDictionary(cfg.Options)
		if err != nil {
			encoderctx.Close()
			return nil, err
		}
		defer d.Close()
		dict = d
	}

	if err := encoderctx.Open(dict); err != nil {
		encoderctx.Close()
		return nil, err
	}
	return &Encoder{encoderctx: encoderctx}, nil
}

func (e *Encoder) CodecContext() *av.CodecContext {
	return e.encoderctx
}

func (e *Encoder) Name() string {
	return e.encoderctx.Codec().Name()
}

// WriteAVFrame sends a frame to the encoder. A nil frame begins draining.
func (e *Encoder) WriteAVFrame(f *av.AVFrame) error {
	if f == nil {
		e.draining = true
		return e.encoderctx.SendFrame(nil)
	}
	if !f.TimeBase.IsZero() {
		f.SetPTS(f.TimeBase.Rescale(f.PTS(), e.encoderctx.TimeBase()))
	}
	return e.encoderctx.SendFrame(f)
}

// ReadAVPacket reads the next encoded packet. av.ErrAgain indicates more
// frames must be written; io.EOF is returned once the encoder is drained.
func (e *Encoder) ReadAVPacket(p *av.AVPacket) error {
	return e.encoderctx.ReceivePacket(p)
}

func (e *Encoder) Close() error {
	return e.encoderctx.Close()
}

var _ av.AVFrameWriter = (*Encoder)(nil)
var _ av.AVPacketReader = (*Encoder)(nil)
