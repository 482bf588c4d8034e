package transcoder

import (
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/muxable/libav/pkg/av"
)

// Pipeline is a synchronous, pull-driven decode→filter→encode chain over a
// packet source. Reading encoded packets pulls frames through the stages on
// the caller's goroutine, which suits consumers like an RTP packetizer that
// want a blocking packet source rather than a concurrent run loop.
type Pipeline struct {
	*chain
	hw *av.HWDeviceContext

	frame         *av.AVFrame
	filterFlushed bool
	encodeFlushed bool
}

// NewPipeline builds a pipeline decoding the given stream from source.
func NewPipeline(stream *av.Stream, source av.AVPacketReader, opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	hw, err := newHWDevice(o)
	if err != nil {
		return nil, err
	}

	ch, err := newChain(stream, o, hw, false, []DecoderOption{WithSource(source)})
	if err != nil {
		if hw != nil {
			hw.Close()
		}
		return nil, err
	}

	return &Pipeline{chain: ch, hw: hw, frame: av.NewAVFrame()}, nil
}

func (p *Pipeline) Encoder() *Encoder {
	return p.encoder
}

// ReadAVPacket returns the next encoded packet, pulling source packets and
// frames through the chain as needed. io.EOF is returned once the source is
// exhausted and every stage has drained.
func (p *Pipeline) ReadAVPacket(pkt *av.AVPacket) error {
	for {
		err := p.encoder.ReadAVPacket(pkt)
		if err != av.ErrAgain {
			return err
		}
		if err := p.step(); err != nil {
			return err
		}
	}
}

// step advances the chain by one frame: filtered frames feed the encoder,
// otherwise a decoded frame feeds the filter. Stage exhaustion cascades as
// flushes downstream.
func (p *Pipeline) step() error {
	err := p.filterer.ReadAVFrame(p.frame)
	switch err {
	case nil:
		werr := p.encoder.WriteAVFrame(p.frame)
		p.frame.Unref()
		return werr
	case io.EOF:
		if p.encodeFlushed {
			return io.EOF
		}
		p.encodeFlushed = true
		return p.encoder.WriteAVFrame(nil)
	case av.ErrAgain:
	default:
		return err
	}

	err = p.decoder.ReadAVFrame(p.frame)
	switch err {
	case nil:
		werr := p.filterer.WriteAVFrame(p.frame)
		p.frame.Unref()
		return werr
	case io.EOF:
		if p.filterFlushed {
			return io.EOF
		}
		p.filterFlushed = true
		return p.filterer.WriteAVFrame(nil)
	default:
		return err
	}
}

func (p *Pipeline) Close() error {
	p.frame.Close()
	err := p.chain.Close()
	if p.hw != nil {
		if herr := p.hw.Close(); err == nil {
			err = herr
		}
	}
	return err
}

var _ av.AVPacketReadCloser = (*Pipeline)(nil)

// Pacer throttles packet delivery to media time, for live outputs that would
// otherwise be written as fast as the input can be read. The clock is
// injectable so pacing is testable without wall time.
type Pacer struct {
	clock clock.Clock

	started  bool
	start    time.Time
	firstPTS int64
}

func NewPacer(c clock.Clock) *Pacer {
	if c == nil {
		c = clock.New()
	}
	return &Pacer{clock: c}
}

// Wait blocks until the packet's presentation time is due. Packets without a
// timestamp pass through immediately.
func (p *Pacer) Wait(pts int64, timeBase av.Rational) {
	if pts == av.NoPTSValue || timeBase.IsZero() {
		return
	}
	if !p.started {
		p.started = true
		p.start = p.clock.Now()
		p.firstPTS = pts
		return
	}

	elapsed := time.Duration(float64(pts-p.firstPTS) * timeBase.Float() * float64(time.Second))
	due := p.start.Add(elapsed)
	if wait := due.Sub(p.clock.Now()); wait > 0 {
		p.clock.Sleep(wait)
	}
}
