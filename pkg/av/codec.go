package av

/*
#cgo pkg-config: libavcodec
#include <stdlib.h>
#include <libavcodec/avcodec.h>
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/pion/webrtc/v3"
)

type CodecID uint32

const CodecIDNone CodecID = C.AV_CODEC_ID_NONE

// AvCodec maps RTP mime types to native codec ids.
var AvCodec = map[string]CodecID{
	webrtc.MimeTypeVP8:  C.AV_CODEC_ID_VP8,
	webrtc.MimeTypeVP9:  C.AV_CODEC_ID_VP9,
	webrtc.MimeTypeAV1:  C.AV_CODEC_ID_AV1,
	webrtc.MimeTypeH264: C.AV_CODEC_ID_H264,
	webrtc.MimeTypeH265: C.AV_CODEC_ID_HEVC,
	webrtc.MimeTypeG722: C.AV_CODEC_ID_ADPCM_G722,
	webrtc.MimeTypeOpus: C.AV_CODEC_ID_OPUS,
	webrtc.MimeTypePCMU: C.AV_CODEC_ID_PCM_MULAW,
	webrtc.MimeTypePCMA: C.AV_CODEC_ID_PCM_ALAW,
	"audio/aac":         C.AV_CODEC_ID_AAC,
	"audio/mpeg":        C.AV_CODEC_ID_MP3,
	"audio/ac3":         C.AV_CODEC_ID_AC3,
	"audio/vorbis":      C.AV_CODEC_ID_VORBIS,
}

// Codec identifies a registered decoder or encoder implementation.
type Codec struct {
	codec *C.AVCodec
}

func FindDecoder(id CodecID) (*Codec, error) {
	codec := C.avcodec_find_decoder(uint32(id))
	if codec == nil {
		return nil, fmt.Errorf("no decoder for codec id %d", id)
	}
	return &Codec{codec: codec}, nil
}

func FindDecoderByName(name string) (*Codec, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	codec := C.avcodec_find_decoder_by_name(cname)
	if codec == nil {
		return nil, fmt.Errorf("no decoder named %s", name)
	}
	return &Codec{codec: codec}, nil
}

func FindEncoder(id CodecID) (*Codec, error) {
	codec := C.avcodec_find_encoder(uint32(id))
	if codec == nil {
		return nil, fmt.Errorf("no encoder for codec id %d", id)
	}
	return &Codec{codec: codec}, nil
}

func FindEncoderByName(name string) (*Codec, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	codec := C.avcodec_find_encoder_by_name(cname)
	if codec == nil {
		return nil, fmt.Errorf("no encoder named %s", name)
	}
	return &Codec{codec: codec}, nil
}

func (c *Codec) Name() string {
	return C.GoString(c.codec.name)
}

func (c *Codec) ID() CodecID {
	return CodecID(c.codec.id)
}

func (c *Codec) MediaType() MediaType {
	return MediaType(c.codec._type)
}
