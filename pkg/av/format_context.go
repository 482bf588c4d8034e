package av

/*
#cgo pkg-config: libavformat libavcodec
#include <stdlib.h>
#include <libavformat/avformat.h>
*/
import "C"
import (
	"errors"
	"fmt"
	"unsafe"
)

// Stream is a borrowed view into a format context's stream table.
type Stream struct {
	stream *C.AVStream
}

func (s *Stream) Index() int {
	return int(s.stream.index)
}

func (s *Stream) TimeBase() Rational {
	return rational(s.stream.time_base)
}

func (s *Stream) AvgFrameRate() Rational {
	return rational(s.stream.avg_frame_rate)
}

// CodecParameters returns a borrowed view; it is valid while the owning
// format context is open.
func (s *Stream) CodecParameters() *CodecParameters {
	return &CodecParameters{par: s.stream.codecpar}
}

// InputContext wraps a demuxing AVFormatContext.
type InputContext struct {
	avformatctx *C.AVFormatContext
	ioctx       *IOContext
}

// OpenInput opens a URL (file path, network address, device) for demuxing.
// formatName may be empty to probe the container.
func OpenInput(url, formatName string, opts *Dictionary) (*InputContext, error) {
	var fileformat *C.AVInputFormat
	if formatName != "" {
		cformat := C.CString(formatName)
		defer C.free(unsafe.Pointer(cformat))
		fileformat = C.av_find_input_format(cformat)
		if fileformat == nil {
			return nil, fmt.Errorf("failed to find input format %s", formatName)
		}
	}

	curl := C.CString(url)
	defer C.free(unsafe.Pointer(curl))

	var dict **C.AVDictionary
	if opts != nil {
		dict = &opts.dict
	}

	var avformatctx *C.AVFormatContext
	if averr := C.avformat_open_input(&avformatctx, curl, fileformat, dict); averr < 0 {
		return nil, av_err("avformat_open_input", averr)
	}

	c := &InputContext{avformatctx: avformatctx}
	if averr := C.avformat_find_stream_info(avformatctx, nil); averr < 0 {
		c.Close()
		return nil, av_err("avformat_find_stream_info", averr)
	}
	return c, nil
}

// OpenInputIO demuxes from a custom IO context instead of a URL. The input
// context takes ownership of ioctx.
func OpenInputIO(ioctx *IOContext, formatName string, opts *Dictionary) (*InputContext, error) {
	var fileformat *C.AVInputFormat
	if formatName != "" {
		cformat := C.CString(formatName)
		defer C.free(unsafe.Pointer(cformat))
		fileformat = C.av_find_input_format(cformat)
		if fileformat == nil {
			return nil, fmt.Errorf("failed to find input format %s", formatName)
		}
	}

	avformatctx := C.avformat_alloc_context()
	if avformatctx == nil {
		return nil, errors.New("failed to create format context")
	}
	avformatctx.pb = ioctx.avioctx

	var dict **C.AVDictionary
	if opts != nil {
		dict = &opts.dict
	}

	if averr := C.avformat_open_input(&avformatctx, nil, fileformat, dict); averr < 0 {
		ioctx.Close()
		return nil, av_err("avformat_open_input", averr)
	}

	c := &InputContext{avformatctx: avformatctx, ioctx: ioctx}
	if averr := C.avformat_find_stream_info(avformatctx, nil); averr < 0 {
		c.Close()
		return nil, av_err("avformat_find_stream_info", averr)
	}
	return c, nil
}

// OpenInputSDP opens the sdp demuxer on a session description file whose
// media packets arrive through ioctx rather than the sockets the file names.
// The sdp demuxer parses the description during open, so the custom IO is
// attached afterwards with the sdp_flags=custom_io option.
func OpenInputSDP(sdpPath string, ioctx *IOContext) (*InputContext, error) {
	cformat := C.CString("sdp")
	defer C.free(unsafe.Pointer(cformat))
	fileformat := C.av_find_input_format(cformat)
	if fileformat == nil {
		return nil, errors.New("failed to find sdp input format")
	}

	opts, err := NewDictionary(map[string]string{"sdp_flags": "custom_io"})
	if err != nil {
		return nil, err
	}
	defer opts.Close()
	if err := opts.SetInt("reorder_queue_size", 0); err != nil {
		return nil, err
	}

	cpath := C.CString(sdpPath)
	defer C.free(unsafe.Pointer(cpath))

	avformatctx := C.avformat_alloc_context()
	if avformatctx == nil {
		return nil, errors.New("failed to create format context")
	}

	if averr := C.avformat_open_input(&avformatctx, cpath, fileformat, &opts.dict); averr < 0 {
		ioctx.Close()
		return nil, av_err("avformat_open_input", averr)
	}

	avformatctx.pb = ioctx.avioctx

	c := &InputContext{avformatctx: avformatctx, ioctx: ioctx}
	if averr := C.avformat_find_stream_info(avformatctx, nil); averr < 0 {
		c.Close()
		return nil, av_err("avformat_find_stream_info", averr)
	}
	return c, nil
}

func (c *InputContext) streams() []*C.AVStream {
	if c.avformatctx.nb_streams == 0 {
		return nil
	}
	return (*[1 << 28]*C.AVStream)(unsafe.Pointer(c.avformatctx.streams))[:c.avformatctx.nb_streams:c.avformatctx.nb_streams]
}

func (c *InputContext) Streams() []*Stream {
	native := c.streams()
	streams := make([]*Stream, len(native))
	for i, stream := range native {
		streams[i] = &Stream{stream: stream}
	}
	return streams
}

// FindBestStream selects the preferred stream of the given type and the
// decoder for it.
func (c *InputContext) FindBestStream(kind MediaType) (*Stream, *Codec, error) {
	var codec *C.AVCodec
	index := C.av_find_best_stream(c.avformatctx, int32(kind), -1, -1, &codec, 0)
	if index < 0 {
		return nil, nil, av_err("av_find_best_stream", index)
	}
	return &Stream{stream: c.streams()[index]}, &Codec{codec: codec}, nil
}

// ReadAVPacket reads the next packet in decode order. The packet's time base
// is set to the source stream's.
func (c *InputContext) ReadAVPacket(p *AVPacket) error {
	if averr := C.av_read_frame(c.avformatctx, p.packet); averr < 0 {
		return av_err("av_read_frame", averr)
	}
	p.TimeBase = rational(c.streams()[p.packet.stream_index].time_base)
	return nil
}

// Seek moves to the keyframe at or before ts, expressed in the stream's time
// base. Pass a nil stream to seek by the default time base.
func (c *InputContext) Seek(stream *Stream, ts int64) error {
	index := C.int(-1)
	if stream != nil {
		index = stream.stream.index
	}
	if averr := C.av_seek_frame(c.avformatctx, index, C.int64_t(ts), C.AVSEEK_FLAG_BACKWARD); averr < 0 {
		return av_err("av_seek_frame", averr)
	}
	return nil
}

func (c *InputContext) Close() error {
	if c.avformatctx != nil {
		C.avformat_close_input(&c.avformatctx)
	}
	if c.ioctx != nil {
		return c.ioctx.Close()
	}
	return nil
}

// OutputContext wraps a muxing AVFormatContext.
type OutputContext struct {
	avformatctx *C.AVFormatContext
	ioctx       *IOContext

	headerWritten bool
}

// NewOutputContext creates a muxer writing to url. formatName may be empty to
// guess the container from the url.
func NewOutputContext(formatName, url string) (*OutputContext, error) {
	avformatctx, err := allocOutputContext(formatName, url)
	if err != nil {
		return nil, err
	}

	if avformatctx.oformat.flags&C.AVFMT_NOFILE == 0 {
		curl := C.CString(url)
		defer C.free(unsafe.Pointer(curl))
		if averr := C.avio_open(&avformatctx.pb, curl, C.AVIO_FLAG_WRITE); averr < 0 {
			C.avformat_free_context(avformatctx)
			return nil, av_err("avio_open", averr)
		}
	}
	return &OutputContext{avformatctx: avformatctx}, nil
}

// NewOutputContextIO creates a muxer writing through a custom IO context. The
// output context takes ownership of ioctx.
func NewOutputContextIO(formatName string, ioctx *IOContext) (*OutputContext, error) {
	avformatctx, err := allocOutputContext(formatName, "")
	if err != nil {
		ioctx.Close()
		return nil, err
	}
	avformatctx.pb = ioctx.avioctx
	return &OutputContext{avformatctx: avformatctx, ioctx: ioctx}, nil
}

func allocOutputContext(formatName, url string) (*C.AVFormatContext, error) {
	var cformat *C.char
	if formatName != "" {
		cformat = C.CString(formatName)
		defer C.free(unsafe.Pointer(cformat))
	}
	var curl *C.char
	if url != "" {
		curl = C.CString(url)
		defer C.free(unsafe.Pointer(curl))
	}

	var avformatctx *C.AVFormatContext
	if averr := C.avformat_alloc_output_context2(&avformatctx, nil, cformat, curl); averr < 0 {
		return nil, av_err("avformat_alloc_output_context2", averr)
	}
	return avformatctx, nil
}

// GlobalHeaderRequired reports whether encoders targeting this container must
// set AV_CODEC_FLAG_GLOBAL_HEADER before opening.
func (c *OutputContext) GlobalHeaderRequired() bool {
	return c.avformatctx.oformat.flags&C.AVFMT_GLOBALHEADER != 0
}

// NewStreamFromParameters adds an output stream copying the given parameters,
// eg. when remuxing.
func (c *OutputContext) NewStreamFromParameters(par *CodecParameters) (*Stream, error) {
	stream := C.avformat_new_stream(c.avformatctx, nil)
	if stream == nil {
		return nil, errors.New("failed to create stream")
	}
	if averr := C.avcodec_parameters_copy(stream.codecpar, par.par); averr < 0 {
		return nil, av_err("avcodec_parameters_copy", averr)
	}
	return &Stream{stream: stream}, nil
}

// NewStreamFromCodecContext adds an output stream configured from an opened
// encoder.
func (c *OutputContext) NewStreamFromCodecContext(encoderctx *CodecContext) (*Stream, error) {
	stream := C.avformat_new_stream(c.avformatctx, nil)
	if stream == nil {
		return nil, errors.New("failed to create stream")
	}
	if averr := C.avcodec_parameters_from_context(stream.codecpar, encoderctx.ctx); averr < 0 {
		return nil, av_err("avcodec_parameters_from_context", averr)
	}
	stream.time_base = encoderctx.ctx.time_base
	return &Stream{stream: stream}, nil
}

func (c *OutputContext) Streams() []*Stream {
	if c.avformatctx.nb_streams == 0 {
		return nil
	}
	native := (*[1 << 28]*C.AVStream)(unsafe.Pointer(c.avformatctx.streams))[:c.avformatctx.nb_streams:c.avformatctx.nb_streams]
	streams := make([]*Stream, len(native))
	for i, stream := range native {
		streams[i] = &Stream{stream: stream}
	}
	return streams
}

func (c *OutputContext) WriteHeader(opts *Dictionary) error {
	var dict **C.AVDictionary
	if opts != nil {
		dict = &opts.dict
	}
	if averr := C.avformat_write_header(c.avformatctx, dict); averr < 0 {
		return av_err("avformat_write_header", averr)
	}
	c.headerWritten = true
	return nil
}

// WriteAVPacket writes an interleaved packet. The packet must already carry
// the destination stream index; its timestamps are rescaled to the stream's
// time base.
func (c *OutputContext) WriteAVPacket(p *AVPacket) error {
	stream := (*[1 << 28]*C.AVStream)(unsafe.Pointer(c.avformatctx.streams))[p.packet.stream_index]
	p.RescaleTS(rational(stream.time_base))
	if averr := C.av_interleaved_write_frame(c.avformatctx, p.packet); averr < 0 {
		return av_err("av_interleaved_write_frame", averr)
	}
	return nil
}

func (c *OutputContext) WriteTrailer() error {
	if averr := C.av_write_trailer(c.avformatctx); averr < 0 {
		return av_err("av_write_trailer", averr)
	}
	return nil
}

func (c *OutputContext) Close() error {
	if c.avformatctx != nil {
		if c.ioctx == nil && c.avformatctx.oformat.flags&C.AVFMT_NOFILE == 0 {
			C.avio_closep(&c.avformatctx.pb)
		}
		C.avformat_free_context(c.avformatctx)
		c.avformatctx = nil
	}
	if c.ioctx != nil {
		return c.ioctx.Close()
	}
	return nil
}
