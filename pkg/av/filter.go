package av

/*
#cgo pkg-config: libavfilter libavutil libavcodec
#include <stdlib.h>
#include <libavcodec/avcodec.h>
#include <libavfilter/avfilter.h>
#include <libavfilter/buffersrc.h>
#include <libavfilter/buffersink.h>
#include <libavutil/buffer.h>
#include <libavutil/mem.h>
#include <libavutil/opt.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"unsafe"
)

// FilterGraph wraps an AVFilterGraph with a single buffersrc input and a
// single buffersink output, which covers the one-in one-out filter chains the
// high-level layer builds.
type FilterGraph struct {
	graph         *C.AVFilterGraph
	buffersrcctx  *C.AVFilterContext
	buffersinkctx *C.AVFilterContext
}

// VideoFilterConfig describes the frames entering a video filter graph.
type VideoFilterConfig struct {
	Width, Height int
	PixelFormat   PixelFormat
	TimeBase      Rational
	PixelAspect   Rational

	// HWDevice, when set, is attached to every filter in the graph so that
	// hardware filters (scale_cuda, scale_vaapi, ...) can allocate frames.
	HWDevice *HWDeviceContext

	// HWFramesFrom propagates the decoder's hardware frame pool into the
	// buffersrc so device-memory frames can enter the graph directly.
	HWFramesFrom *CodecContext
}

// AudioFilterConfig describes the frames entering an audio filter graph.
type AudioFilterConfig struct {
	SampleRate    int
	SampleFormat  SampleFormat
	ChannelLayout uint64
	TimeBase      Rational
}

// NewVideoFilterGraph parses desc (eg. "scale=1280:720,fps=30") into a
// configured graph.
func NewVideoFilterGraph(desc string, cfg VideoFilterConfig) (*FilterGraph, error) {
	timeBase := cfg.TimeBase
	if timeBase.IsZero() {
		timeBase = NewRational(1, 90000)
	}
	pixelAspect := cfg.PixelAspect
	if pixelAspect.IsZero() {
		pixelAspect = NewRational(1, 1)
	}

	args := fmt.Sprintf("video_size=%dx%d:pix_fmt=%d:time_base=%d/%d:pixel_aspect=%d/%d",
		cfg.Width, cfg.Height, cfg.PixelFormat, timeBase.Num, timeBase.Den, pixelAspect.Num, pixelAspect.Den)

	g, err := newFilterGraph(desc, "buffer", "buffersink", args, func(buffersrcctx *C.AVFilterContext) error {
		if cfg.HWFramesFrom == nil || cfg.HWFramesFrom.ctx.hw_frames_ctx == nil {
			return nil
		}
		par := C.av_buffersrc_parameters_alloc()
		if par == nil {
			return errors.New("failed to allocate buffersrc parameters")
		}
		defer C.av_free(unsafe.Pointer(par))
		par.hw_frames_ctx = C.av_buffer_ref(cfg.HWFramesFrom.ctx.hw_frames_ctx)
		if averr := C.av_buffersrc_parameters_set(buffersrcctx, par); averr < 0 {
			return av_err("av_buffersrc_parameters_set", averr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cfg.HWDevice != nil {
		g.setHWDevice(cfg.HWDevice)
	}

	if averr := C.avfilter_graph_config(g.graph, nil); averr < 0 {
		g.Close()
		return nil, av_err("avfilter_graph_config", averr)
	}
	return g, nil
}

// NewAudioFilterGraph parses desc (eg. "aresample=48000,aformat=...") into a
// configured graph.
func NewAudioFilterGraph(desc string, cfg AudioFilterConfig) (*FilterGraph, error) {
	timeBase := cfg.TimeBase
	if timeBase.IsZero() {
		timeBase = NewRational(1, cfg.SampleRate)
	}

	args := fmt.Sprintf("time_base=%d/%d:sample_rate=%d:sample_fmt=%s:channel_layout=0x%x",
		timeBase.Num, timeBase.Den, cfg.SampleRate, cfg.SampleFormat, cfg.ChannelLayout)

	g, err := newFilterGraph(desc, "abuffer", "abuffersink", args, nil)
	if err != nil {
		return nil, err
	}

	if averr := C.avfilter_graph_config(g.graph, nil); averr < 0 {
		g.Close()
		return nil, av_err("avfilter_graph_config", averr)
	}
	return g, nil
}

func newFilterGraph(desc, srcName, sinkName, srcArgs string, configureSrc func(*C.AVFilterContext) error) (*FilterGraph, error) {
	graph := C.avfilter_graph_alloc()
	if graph == nil {
		return nil, errors.New("failed to allocate filter graph")
	}
	g := &FilterGraph{graph: graph}

	csrcname := C.CString(srcName)
	defer C.free(unsafe.Pointer(csrcname))
	buffersrc := C.avfilter_get_by_name(csrcname)
	if buffersrc == nil {
		g.Close()
		return nil, fmt.Errorf("failed to find %s filter", srcName)
	}

	csinkname := C.CString(sinkName)
	defer C.free(unsafe.Pointer(csinkname))
	buffersink := C.avfilter_get_by_name(csinkname)
	if buffersink == nil {
		g.Close()
		return nil, fmt.Errorf("failed to find %s filter", sinkName)
	}

	cin := C.CString("in")
	defer C.free(unsafe.Pointer(cin))
	cargs := C.CString(srcArgs)
	defer C.free(unsafe.Pointer(cargs))

	if averr := C.avfilter_graph_create_filter(&g.buffersrcctx, buffersrc, cin, cargs, nil, graph); averr < 0 {
		g.Close()
		return nil, av_err("avfilter_graph_create_filter", averr)
	}

	if configureSrc != nil {
		if err := configureSrc(g.buffersrcctx); err != nil {
			g.Close()
			return nil, err
		}
	}

	cout := C.CString("out")
	defer C.free(unsafe.Pointer(cout))

	if averr := C.avfilter_graph_create_filter(&g.buffersinkctx, buffersink, cout, nil, nil, graph); averr < 0 {
		g.Close()
		return nil, av_err("avfilter_graph_create_filter", averr)
	}

	outputs := C.avfilter_inout_alloc()
	inputs := C.avfilter_inout_alloc()
	defer C.avfilter_inout_free(&outputs)
	defer C.avfilter_inout_free(&inputs)
	if outputs == nil || inputs == nil {
		g.Close()
		return nil, errors.New("failed to allocate filter inout")
	}

	outputs.name = C.av_strdup(cin)
	outputs.filter_ctx = g.buffersrcctx
	outputs.pad_idx = 0
	outputs.next = nil

	inputs.name = C.av_strdup(cout)
	inputs.filter_ctx = g.buffersinkctx
	inputs.pad_idx = 0
	inputs.next = nil

	cdesc := C.CString(desc)
	defer C.free(unsafe.Pointer(cdesc))

	if averr := C.avfilter_graph_parse_ptr(graph, cdesc, &inputs, &outputs, nil); averr < 0 {
		g.Close()
		return nil, av_err("avfilter_graph_parse_ptr", averr)
	}
	return g, nil
}

func (g *FilterGraph) setHWDevice(hw *HWDeviceContext) {
	filters := (*[1 << 20]*C.AVFilterContext)(unsafe.Pointer(g.graph.filters))[:g.graph.nb_filters:g.graph.nb_filters]
	for _, filterctx := range filters {
		filterctx.hw_device_ctx = C.av_buffer_ref(hw.ref)
	}
}

// WriteAVFrame pushes a frame into the graph. A nil frame flushes it.
func (g *FilterGraph) WriteAVFrame(f *AVFrame) error {
	if f == nil {
		if averr := C.av_buffersrc_add_frame(g.buffersrcctx, nil); averr < 0 {
			return av_err("av_buffersrc_add_frame", averr)
		}
		return nil
	}
	if averr := C.av_buffersrc_add_frame_flags(g.buffersrcctx, f.frame, C.AV_BUFFERSRC_FLAG_KEEP_REF); averr < 0 {
		return av_err("av_buffersrc_add_frame_flags", averr)
	}
	return nil
}

// The buffersink accessors report the post-filter stream properties, which
// are what an encoder downstream of the graph must be configured with.

func (g *FilterGraph) OutputWidth() int {
	return int(C.av_buffersink_get_w(g.buffersinkctx))
}

func (g *FilterGraph) OutputHeight() int {
	return int(C.av_buffersink_get_h(g.buffersinkctx))
}

func (g *FilterGraph) OutputPixelFormat() PixelFormat {
	return PixelFormat(C.av_buffersink_get_format(g.buffersinkctx))
}

func (g *FilterGraph) OutputSampleFormat() SampleFormat {
	return SampleFormat(C.av_buffersink_get_format(g.buffersinkctx))
}

func (g *FilterGraph) OutputTimeBase() Rational {
	return rational(C.av_buffersink_get_time_base(g.buffersinkctx))
}

func (g *FilterGraph) OutputFrameRate() Rational {
	return rational(C.av_buffersink_get_frame_rate(g.buffersinkctx))
}

func (g *FilterGraph) OutputSampleRate() int {
	return int(C.av_buffersink_get_sample_rate(g.buffersinkctx))
}

func (g *FilterGraph) OutputChannels() int {
	return int(C.av_buffersink_get_channels(g.buffersinkctx))
}

func (g *FilterGraph) OutputChannelLayout() uint64 {
	return uint64(C.av_buffersink_get_channel_layout(g.buffersinkctx))
}

// SetEncoderHWFrames points the encoder at the graph's output frame pool.
// Encoders consuming device-memory frames require this before opening.
func (g *FilterGraph) SetEncoderHWFrames(c *CodecContext) {
	ref := C.av_buffersink_get_hw_frames_ctx(g.buffersinkctx)
	if ref != nil {
		c.ctx.hw_frames_ctx = C.av_buffer_ref(ref)
	}
}

// SetOutputFrameSize fixes the number of samples per filtered frame, which
// audio encoders with a fixed frame size require.
func (g *FilterGraph) SetOutputFrameSize(numSamples int) {
	C.av_buffersink_set_frame_size(g.buffersinkctx, C.uint(numSamples))
}

// ReadAVFrame pulls the next filtered frame. Returns ErrAgain when the graph
// needs more input and io.EOF after a flush completes.
func (g *FilterGraph) ReadAVFrame(f *AVFrame) error {
	if averr := C.av_buffersink_get_frame(g.buffersinkctx, f.frame); averr < 0 {
		return av_err("av_buffersink_get_frame", averr)
	}
	f.TimeBase = rational(C.av_buffersink_get_time_base(g.buffersinkctx))
	return nil
}

func (g *FilterGraph) Close() error {
	if g.graph != nil {
		C.avfilter_graph_free(&g.graph)
	}
	return nil
}
