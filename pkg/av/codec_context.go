package av

/*
#cgo pkg-config: libavcodec libavutil
#include <libavcodec/avcodec.h>
#include <libavutil/buffer.h>
*/
import "C"
import "errors"

// CodecContext wraps an AVCodecContext and exposes both halves of the native
// send/receive state machine.
type CodecContext struct {
	ctx   *C.AVCodecContext
	codec *Codec
}

func NewCodecContext(codec *Codec) (*CodecContext, error) {
	ctx := C.avcodec_alloc_context3(codec.codec)
	if ctx == nil {
		return nil, errors.New("failed to create codec context")
	}
	return &CodecContext{ctx: ctx, codec: codec}, nil
}

func (c *CodecContext) Codec() *Codec {
	return c.codec
}

// ParametersFrom configures the context from demuxed stream parameters.
func (c *CodecContext) ParametersFrom(par *CodecParameters) error {
	if averr := C.avcodec_parameters_to_context(c.ctx, par.par); averr < 0 {
		return av_err("avcodec_parameters_to_context", averr)
	}
	return nil
}

// ParametersTo fills par from the context, eg. to configure an output stream.
func (c *CodecContext) ParametersTo(par *CodecParameters) error {
	if averr := C.avcodec_parameters_from_context(par.par, c.ctx); averr < 0 {
		return av_err("avcodec_parameters_from_context", averr)
	}
	return nil
}

func (c *CodecContext) Width() int            { return int(c.ctx.width) }
func (c *CodecContext) Height() int           { return int(c.ctx.height) }
func (c *CodecContext) SampleRate() int       { return int(c.ctx.sample_rate) }
func (c *CodecContext) Channels() int         { return int(c.ctx.channels) }
func (c *CodecContext) ChannelLayout() uint64 { return uint64(c.ctx.channel_layout) }
func (c *CodecContext) FrameSize() int        { return int(c.ctx.frame_size) }

func (c *CodecContext) PixelFormat() PixelFormat {
	return PixelFormat(c.ctx.pix_fmt)
}

func (c *CodecContext) SampleFormat() SampleFormat {
	return SampleFormat(c.ctx.sample_fmt)
}

func (c *CodecContext) TimeBase() Rational {
	return rational(c.ctx.time_base)
}

func (c *CodecContext) FrameRate() Rational {
	return rational(c.ctx.framerate)
}

func (c *CodecContext) SetVideoGeometry(width, height int, format PixelFormat) {
	c.ctx.width = C.int(width)
	c.ctx.height = C.int(height)
	c.ctx.pix_fmt = int32(format)
}

func (c *CodecContext) SetAudioGeometry(sampleRate, channels int, layout uint64, format SampleFormat) {
	c.ctx.sample_rate = C.int(sampleRate)
	c.ctx.channels = C.int(channels)
	c.ctx.channel_layout = C.uint64_t(layout)
	c.ctx.sample_fmt = int32(format)
}

func (c *CodecContext) SetTimeBase(tb Rational) {
	c.ctx.time_base = tb.ctype()
}

func (c *CodecContext) SetFrameRate(fr Rational) {
	c.ctx.framerate = fr.ctype()
}

func (c *CodecContext) SetBitRate(bitrate int64) {
	c.ctx.bit_rate = C.int64_t(bitrate)
}

func (c *CodecContext) SetGopSize(gop int) {
	c.ctx.gop_size = C.int(gop)
}

// SetGlobalHeader requests extradata in-band headers be hoisted into the
// container, required by most mp4/mkv muxers.
func (c *CodecContext) SetGlobalHeader() {
	c.ctx.flags |= C.AV_CODEC_FLAG_GLOBAL_HEADER
}

// SetHWDeviceContext attaches a hardware device for decode or encode. The
// context takes its own reference; hw remains owned by the caller.
func (c *CodecContext) SetHWDeviceContext(hw *HWDeviceContext) {
	c.ctx.hw_device_ctx = C.av_buffer_ref(hw.ref)
}

func (c *CodecContext) Open(opts *Dictionary) error {
	var dict **C.AVDictionary
	if opts != nil {
		dict = &opts.dict
	}
	if averr := C.avcodec_open2(c.ctx, c.codec.codec, dict); averr < 0 {
		return av_err("avcodec_open2", averr)
	}
	return nil
}

// SendPacket feeds a demuxed packet to the decoder. A nil packet enters drain
// mode. Returns ErrAgain when ReceiveFrame must be called first.
func (c *CodecContext) SendPacket(p *AVPacket) error {
	var packet *C.AVPacket
	if p != nil {
		packet = p.packet
	}
	if averr := C.avcodec_send_packet(c.ctx, packet); averr < 0 {
		return av_err("avcodec_send_packet", averr)
	}
	return nil
}

// ReceiveFrame pulls the next decoded frame. Returns ErrAgain when more input
// is required and io.EOF once the decoder is fully drained.
func (c *CodecContext) ReceiveFrame(f *AVFrame) error {
	if averr := C.avcodec_receive_frame(c.ctx, f.frame); averr < 0 {
		return av_err("avcodec_receive_frame", averr)
	}
	f.TimeBase = c.TimeBase()
	return nil
}

// SendFrame feeds a raw frame to the encoder. A nil frame enters drain mode.
func (c *CodecContext) SendFrame(f *AVFrame) error {
	var frame *C.AVFrame
	if f != nil {
		frame = f.frame
	}
	if averr := C.avcodec_send_frame(c.ctx, frame); averr < 0 {
		return av_err("avcodec_send_frame", averr)
	}
	return nil
}

// ReceivePacket pulls the next encoded packet. Returns ErrAgain when more
// input is required and io.EOF once the encoder is fully drained.
func (c *CodecContext) ReceivePacket(p *AVPacket) error {
	if averr := C.avcodec_receive_packet(c.ctx, p.packet); averr < 0 {
		return av_err("avcodec_receive_packet", averr)
	}
	p.TimeBase = c.TimeBase()
	return nil
}

// FlushBuffers resets internal codec state, eg. after a seek.
func (c *CodecContext) FlushBuffers() {
	C.avcodec_flush_buffers(c.ctx)
}

func (c *CodecContext) Close() error {
	if c.ctx != nil {
		C.avcodec_free_context(&c.ctx)
	}
	return nil
}
