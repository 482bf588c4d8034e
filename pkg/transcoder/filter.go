package transcoder

import (
	"github.com/muxable/libav/pkg/av"
)

// Filterer runs decoded frames through a filter graph. An empty description
// becomes a passthrough graph so callers can treat filtering as always
// present.
type Filterer struct {
	graph *av.FilterGraph
}

// NewVideoFilterer builds a video filter chain (eg. "scale=1280:720,fps=30")
// for frames matching the given stream parameters.
func NewVideoFilterer(desc string, par *av.CodecParameters, timeBase av.Rational, opts ...FiltererOption) (*Filterer, error) {
	if desc == "" {
		desc = "null"
	}

	cfg := av.VideoFilterConfig{
		Width:       par.Width(),
		Height:      par.Height(),
		PixelFormat: par.PixelFormat(),
		TimeBase:    timeBase,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	graph, err := av.NewVideoFilterGraph(desc, cfg)
	if err != nil {
		return nil, err
	}
	return &Filterer{graph: graph}, nil
}

// NewAudioFilterer builds an audio filter chain (eg. "aresample=48000") for
// frames matching the given stream parameters.
func NewAudioFilterer(desc string, par *av.CodecParameters, timeBase av.Rational) (*Filterer, error) {
	if desc == "" {
		desc = "anull"
	}

	layout := par.ChannelLayout()
	if layout == 0 {
		layout = av.DefaultChannelLayout(par.Channels())
	}

	graph, err := av.NewAudioFilterGraph(desc, av.AudioFilterConfig{
		SampleRate:    par.SampleRate(),
		SampleFormat:  par.SampleFormat(),
		ChannelLayout: layout,
		TimeBase:      timeBase,
	})
	if err != nil {
		return nil, err
	}
	return &Filterer{graph: graph}, nil
}

type FiltererOption func(*av.VideoFilterConfig)

// WithHWFiltering attaches a hardware device to the graph and propagates the
// decoder's hardware frame pool into the buffersrc, so the chain can run
// entirely in device memory.
func WithHWFiltering(hw *av.HWDeviceContext, decoderctx *av.CodecContext) FiltererOption {
	return func(cfg *av.VideoFilterConfig) {
		cfg.HWDevice = hw
		cfg.HWFramesFrom = decoderctx
	}
}

// WithInputFormat overrides the buffersrc pixel format, eg. when hardware
// decoded frames are downloaded to nv12 before entering the graph.
func WithInputFormat(format av.PixelFormat) FiltererOption {
	return func(cfg *av.VideoFilterConfig) {
		cfg.PixelFormat = format
	}
}

func (f *Filterer) Graph() *av.FilterGraph {
	return f.graph
}

// WriteAVFrame pushes a frame into the graph. A nil frame flushes it.
func (f *Filterer) WriteAVFrame(frame *av.AVFrame) error {
	return f.graph.WriteAVFrame(frame)
}

// ReadAVFrame pulls the next filtered frame. av.ErrAgain indicates more
// input is needed; io.EOF follows a flush.
func (f *Filterer) ReadAVFrame(frame *av.AVFrame) error {
	return f.graph.ReadAVFrame(frame)
}

func (f *Filterer) Close() error {
	return f.graph.Close()
}

var _ av.AVFrameReadWriteCloser = (*Filterer)(nil)
