package av

/*
#cgo pkg-config: libavcodec
#include <libavcodec/avcodec.h>
*/
import "C"
import "errors"

// CodecParameters wraps an AVCodecParameters. Parameters obtained from a
// stream are borrowed and remain owned by the format context; allocated
// parameters must be closed.
type CodecParameters struct {
	par   *C.AVCodecParameters
	owned bool
}

func NewCodecParameters() (*CodecParameters, error) {
	par := C.avcodec_parameters_alloc()
	if par == nil {
		return nil, errors.New("failed to allocate codec parameters")
	}
	return &CodecParameters{par: par, owned: true}, nil
}

func (p *CodecParameters) CodecID() CodecID {
	return CodecID(p.par.codec_id)
}

func (p *CodecParameters) MediaType() MediaType {
	return MediaType(p.par.codec_type)
}

func (p *CodecParameters) Width() int {
	return int(p.par.width)
}

func (p *CodecParameters) Height() int {
	return int(p.par.height)
}

func (p *CodecParameters) SampleRate() int {
	return int(p.par.sample_rate)
}

func (p *CodecParameters) Channels() int {
	return int(p.par.channels)
}

func (p *CodecParameters) ChannelLayout() uint64 {
	return uint64(p.par.channel_layout)
}

// PixelFormat is only meaningful for video parameters.
func (p *CodecParameters) PixelFormat() PixelFormat {
	return PixelFormat(p.par.format)
}

// SampleFormat is only meaningful for audio parameters.
func (p *CodecParameters) SampleFormat() SampleFormat {
	return SampleFormat(p.par.format)
}

func (p *CodecParameters) CopyTo(dst *CodecParameters) error {
	if averr := C.avcodec_parameters_copy(dst.par, p.par); averr < 0 {
		return av_err("avcodec_parameters_copy", averr)
	}
	return nil
}

func (p *CodecParameters) Close() error {
	if p.owned {
		C.avcodec_parameters_free(&p.par)
	}
	return nil
}
