package transcoder

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/muxable/libav/internal/codecs"
	"github.com/muxable/libav/pkg/av"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const packetChannelSize = 64

// Transcoder drives demux, decode, filter, encode and mux across all audio
// and video streams of an input. The demuxer and muxer remain owned by the
// caller; everything the transcoder creates is released when the run ends.
type Transcoder struct {
	id      uuid.UUID
	demuxer *Demuxer
	muxer   *Muxer
	o       options

	hw *av.HWDeviceContext
}

func New(demuxer *Demuxer, muxer *Muxer, opts ...Option) (*Transcoder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Transcoder{
		id:      uuid.New(),
		demuxer: demuxer,
		muxer:   muxer,
		o:       o,
	}

	hw, err := newHWDevice(o)
	if err != nil {
		return nil, err
	}
	t.hw = hw
	return t, nil
}

func newHWDevice(o options) (*av.HWDeviceContext, error) {
	if o.hwType == "" {
		return nil, nil
	}
	return av.NewHWDeviceContext(av.HWDeviceTypeByName(o.hwType), o.hwDevice)
}

// chain is the decode→filter→encode stage set for one input stream.
type chain struct {
	decoder  *Decoder
	filterer *Filterer
	encoder  *Encoder
}

func (c *chain) Close() error {
	c.decoder.Close()
	c.filterer.Close()
	return c.encoder.Close()
}

// newChain opens a decoder, a passthrough or user filter graph and an encoder
// for the stream. The encoder is configured eagerly from the filter graph's
// output properties so the chain is usable before the first frame flows.
func newChain(stream *av.Stream, o options, hw *av.HWDeviceContext, globalHeader bool, decoderOpts []DecoderOption) (*chain, error) {
	par := stream.CodecParameters()

	var mimeType, encoderOverride, filterDesc string
	var bitRate int64
	switch par.MediaType() {
	case av.MediaTypeVideo:
		mimeType, encoderOverride, filterDesc, bitRate = o.videoMimeType, o.videoEncoder, o.videoFilter, o.videoBitRate
	case av.MediaTypeAudio:
		mimeType, encoderOverride, filterDesc, bitRate = o.audioMimeType, o.audioEncoder, o.audioFilter, o.audioBitRate
	}

	encoderName := encoderOverride
	if encoderName == "" {
		name, err := codecs.EncoderName(mimeType, o.hwType)
		if err != nil {
			return nil, err
		}
		encoderName = name
	}

	if hw != nil && par.MediaType() == av.MediaTypeVideo {
		decoderOpts = append(decoderOpts, WithHWDecode(hw), WithFrameDownload())
	}
	decoder, err := NewDecoder(stream, "", decoderOpts...)
	if err != nil {
		return nil, err
	}

	var filterer *Filterer
	var cfg EncoderConfig
	switch par.MediaType() {
	case av.MediaTypeVideo:
		var filterOpts []FiltererOption
		if hw != nil {
			// downloaded hardware frames arrive as nv12, not the format the
			// bitstream advertises.
			filterOpts = append(filterOpts, WithInputFormat(av.PixelFormatNV12))
		}
		filterer, err = NewVideoFilterer(filterDesc, par, stream.TimeBase(), filterOpts...)
		if err != nil {
			decoder.Close()
			return nil, err
		}

		graph := filterer.Graph()
		cfg = EncoderConfig{
			Width:       graph.OutputWidth(),
			Height:      graph.OutputHeight(),
			PixelFormat: graph.OutputPixelFormat(),
			FrameRate:   graph.OutputFrameRate(),
			TimeBase:    graph.OutputTimeBase(),
			GopSize:     o.gopSize,
		}
	case av.MediaTypeAudio:
		filterer, err = NewAudioFilterer(filterDesc, par, stream.TimeBase())
		if err != nil {
			decoder.Close()
			return nil, err
		}

		graph := filterer.Graph()
		cfg = EncoderConfig{
			SampleRate:    graph.OutputSampleRate(),
			Channels:      graph.OutputChannels(),
			ChannelLayout: graph.OutputChannelLayout(),
			SampleFormat:  graph.OutputSampleFormat(),
			TimeBase:      graph.OutputTimeBase(),
		}
	}
	cfg.BitRate = bitRate
	cfg.GlobalHeader = globalHeader
	cfg.Options = o.encoderOptions

	encoder, err := NewEncoder(encoderName, cfg)
	if err != nil {
		decoder.Close()
		filterer.Close()
		return nil, err
	}

	if par.MediaType() == av.MediaTypeAudio {
		if frameSize := encoder.CodecContext().FrameSize(); frameSize > 0 {
			filterer.Graph().SetOutputFrameSize(frameSize)
		}
	}

	return &chain{decoder: decoder, filterer: filterer, encoder: encoder}, nil
}

// transcodeStream binds a chain to its output stream index.
type transcodeStream struct {
	*chain
	outIndex int
}

func (t *Transcoder) newStream(stream *av.Stream) (*transcodeStream, error) {
	ch, err := newChain(stream, t.o, t.hw, t.muxer.GlobalHeaderRequired(), nil)
	if err != nil {
		return nil, err
	}

	outIndex, err := t.muxer.AddStream(ch.encoder)
	if err != nil {
		ch.Close()
		return nil, err
	}

	zap.L().Debug("configured stream",
		zap.String("id", t.id.String()),
		zap.Int("index", stream.Index()),
		zap.Int("outIndex", outIndex),
		zap.String("encoder", ch.encoder.Name()))

	return &transcodeStream{chain: ch, outIndex: outIndex}, nil
}

// Transcode runs the full pipeline until the input is exhausted or ctx is
// cancelled. Each stream is processed on its own goroutine; packets flow
// through bounded channels so a slow encoder backpressures the demuxer.
func (t *Transcoder) Transcode(ctx context.Context) error {
	streams := make(map[int]*transcodeStream)
	defer func() {
		for _, s := range streams {
			s.Close()
		}
	}()

	for _, stream := range t.demuxer.Streams() {
		kind := stream.CodecParameters().MediaType()
		if kind != av.MediaTypeVideo && kind != av.MediaTypeAudio {
			continue
		}
		s, err := t.newStream(stream)
		if err != nil {
			return err
		}
		streams[stream.Index()] = s
	}

	zap.L().Info("transcoding", zap.String("id", t.id.String()), zap.Int("streams", len(streams)))

	eg, ctx := errgroup.WithContext(ctx)

	packetChs := make(map[int]chan *av.AVPacket, len(streams))
	for index := range streams {
		packetChs[index] = make(chan *av.AVPacket, packetChannelSize)
	}
	muxCh := make(chan *av.AVPacket, packetChannelSize)

	// demux: route packets by stream index.
	eg.Go(func() error {
		defer func() {
			for _, ch := range packetChs {
				close(ch)
			}
		}()
		for {
			p := av.NewAVPacket()
			if err := t.demuxer.ReadAVPacket(p); err != nil {
				p.Close()
				if err == io.EOF {
					return nil
				}
				return err
			}
			ch, ok := packetChs[p.StreamIndex()]
			if !ok {
				p.Close()
				continue
			}
			select {
			case ch <- p:
			case <-ctx.Done():
				p.Close()
				return ctx.Err()
			}
		}
	})

	// per-stream workers.
	var workers sync.WaitGroup
	for index, s := range streams {
		workers.Add(1)
		packetCh := packetChs[index]
		s := s
		eg.Go(func() error {
			defer workers.Done()
			return s.run(ctx, packetCh, muxCh)
		})
	}
	go func() {
		workers.Wait()
		close(muxCh)
	}()

	// mux: interleave encoded packets, pacing if requested.
	eg.Go(func() error {
		for p := range muxCh {
			if t.o.pacer != nil {
				t.o.pacer.Wait(p.PTS(), p.TimeBase)
			}
			err := t.muxer.WriteAVPacket(p)
			p.Close()
			if err != nil {
				return err
			}
		}
		return nil
	})

	err := eg.Wait()

	// a failed run leaves packets queued in the channels; the demux and worker
	// goroutines have closed them by now, so release whatever remains.
	for _, ch := range packetChs {
		for p := range ch {
			p.Close()
		}
	}
	for p := range muxCh {
		p.Close()
	}
	return err
}

func (s *transcodeStream) run(ctx context.Context, packetCh <-chan *av.AVPacket, muxCh chan<- *av.AVPacket) error {
	frame := av.NewAVFrame()
	defer frame.Close()
	filtered := av.NewAVFrame()
	defer filtered.Close()

	for p := range packetCh {
		err := s.decoder.WriteAVPacket(p)
		p.Close()
		if err != nil {
			return err
		}
		if err := s.drainDecoder(ctx, frame, filtered, muxCh); err != nil {
			return err
		}
	}

	// flush each stage in order.
	if err := s.decoder.WriteAVPacket(nil); err != nil {
		return err
	}
	if err := s.drainDecoder(ctx, frame, filtered, muxCh); err != nil && err != io.EOF {
		return err
	}
	if err := s.filterer.WriteAVFrame(nil); err != nil {
		return err
	}
	if err := s.drainFilterer(ctx, filtered, muxCh); err != nil && err != io.EOF {
		return err
	}
	if err := s.encoder.WriteAVFrame(nil); err != nil {
		return err
	}
	if err := s.drainEncoder(ctx, muxCh); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (s *transcodeStream) drainDecoder(ctx context.Context, frame, filtered *av.AVFrame, muxCh chan<- *av.AVPacket) error {
	for {
		if err := s.decoder.ReadAVFrame(frame); err != nil {
			if err == av.ErrAgain {
				return nil
			}
			return err
		}
		err := s.filterer.WriteAVFrame(frame)
		frame.Unref()
		if err != nil {
			return err
		}
		if err := s.drainFilterer(ctx, filtered, muxCh); err != nil {
			return err
		}
	}
}

func (s *transcodeStream) drainFilterer(ctx context.Context, filtered *av.AVFrame, muxCh chan<- *av.AVPacket) error {
	for {
		if err := s.filterer.ReadAVFrame(filtered); err != nil {
			if err == av.ErrAgain {
				return nil
			}
			return err
		}
		err := s.encoder.WriteAVFrame(filtered)
		filtered.Unref()
		if err != nil {
			return err
		}
		if err := s.drainEncoder(ctx, muxCh); err != nil {
			return err
		}
	}
}

func (s *transcodeStream) drainEncoder(ctx context.Context, muxCh chan<- *av.AVPacket) error {
	for {
		p := av.NewAVPacket()
		if err := s.encoder.ReadAVPacket(p); err != nil {
			p.Close()
			if err == av.ErrAgain {
				return nil
			}
			return err
		}
		p.SetStreamIndex(s.outIndex)
		select {
		case muxCh <- p:
		case <-ctx.Done():
			p.Close()
			return ctx.Err()
		}
	}
}

// Remux copies the input's audio and video packets into the output container
// without a codec cycle.
func (t *Transcoder) Remux(ctx context.Context) error {
	indexes := make(map[int]int)
	for _, stream := range t.demuxer.Streams() {
		par := stream.CodecParameters()
		if kind := par.MediaType(); kind != av.MediaTypeVideo && kind != av.MediaTypeAudio {
			continue
		}
		outIndex, err := t.muxer.AddStreamFromParameters(par)
		if err != nil {
			return err
		}
		indexes[stream.Index()] = outIndex
	}

	zap.L().Info("remuxing", zap.String("id", t.id.String()), zap.Int("streams", len(indexes)))

	p := av.NewAVPacket()
	defer p.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.demuxer.ReadAVPacket(p); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		outIndex, ok := indexes[p.StreamIndex()]
		if !ok {
			p.Unref()
			continue
		}
		p.SetStreamIndex(outIndex)
		if t.o.pacer != nil {
			t.o.pacer.Wait(p.PTS(), p.TimeBase)
		}
		if err := t.muxer.WriteAVPacket(p); err != nil {
			return err
		}
		p.Unref()
	}
}

// Close releases resources the transcoder itself owns. The demuxer and muxer
// are left to their owner.
func (t *Transcoder) Close() error {
	if t.hw != nil {
		return t.hw.Close()
	}
	return nil
}
