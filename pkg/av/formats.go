package av

/*
#cgo pkg-config: libavutil
#include <stdlib.h>
#include <libavutil/avutil.h>
#include <libavutil/pixdesc.h>
#include <libavutil/samplefmt.h>
#include <libavutil/channel_layout.h>
*/
import "C"
import "unsafe"

type MediaType int

const (
	MediaTypeUnknown  MediaType = C.AVMEDIA_TYPE_UNKNOWN
	MediaTypeVideo    MediaType = C.AVMEDIA_TYPE_VIDEO
	MediaTypeAudio    MediaType = C.AVMEDIA_TYPE_AUDIO
	MediaTypeData     MediaType = C.AVMEDIA_TYPE_DATA
	MediaTypeSubtitle MediaType = C.AVMEDIA_TYPE_SUBTITLE
)

func (t MediaType) String() string {
	name := C.av_get_media_type_string(int32(t))
	if name == nil {
		return "unknown"
	}
	return C.GoString(name)
}

type PixelFormat int

const (
	PixelFormatNone    PixelFormat = C.AV_PIX_FMT_NONE
	PixelFormatYUV420P PixelFormat = C.AV_PIX_FMT_YUV420P
	PixelFormatNV12    PixelFormat = C.AV_PIX_FMT_NV12
	PixelFormatRGB24   PixelFormat = C.AV_PIX_FMT_RGB24
)

func (f PixelFormat) String() string {
	name := C.av_get_pix_fmt_name(int32(f))
	if name == nil {
		return "none"
	}
	return C.GoString(name)
}

func PixelFormatByName(name string) PixelFormat {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return PixelFormat(C.av_get_pix_fmt(cname))
}

type SampleFormat int

const (
	SampleFormatNone SampleFormat = C.AV_SAMPLE_FMT_NONE
	SampleFormatS16  SampleFormat = C.AV_SAMPLE_FMT_S16
	SampleFormatFLTP SampleFormat = C.AV_SAMPLE_FMT_FLTP
)

func (f SampleFormat) String() string {
	name := C.av_get_sample_fmt_name(int32(f))
	if name == nil {
		return "none"
	}
	return C.GoString(name)
}

const (
	ChannelLayoutMono   = uint64(C.AV_CH_LAYOUT_MONO)
	ChannelLayoutStereo = uint64(C.AV_CH_LAYOUT_STEREO)
)

// DefaultChannelLayout returns the native default layout for a channel count.
func DefaultChannelLayout(channels int) uint64 {
	return uint64(C.av_get_default_channel_layout(C.int(channels)))
}
