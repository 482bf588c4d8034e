// Package codecs maps RTP mime types to native codec and encoder names.
package codecs

import (
	"fmt"
	"strings"

	"github.com/pion/webrtc/v3"
)

// mirroring https://chromium.googlesource.com/external/webrtc/+/95eb1ba0db79d8fd134ae61b0a24648598684e8a/webrtc/media/engine/payload_type_mapper.cc#27
var DefaultOutputCodecs = map[string]webrtc.RTPCodecParameters{
	webrtc.MimeTypePCMU: {
		RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypePCMU, ClockRate: 8000, Channels: 1},
		PayloadType:        0,
	},
	webrtc.MimeTypePCMA: {
		RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypePCMA, ClockRate: 8000, Channels: 1},
		PayloadType:        8,
	},
	webrtc.MimeTypeG722: {
		RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeG722, ClockRate: 8000, Channels: 1},
		PayloadType:        9,
	},
	webrtc.MimeTypeVP8: {
		RTPCodecCapability: webrtc.RTPCodecCapability{
			MimeType:     webrtc.MimeTypeVP8,
			ClockRate:    90000,
			RTCPFeedback: []webrtc.RTCPFeedback{{Type: "goog-remb", Parameter: ""}, {Type: "ccm", Parameter: "fir"}, {Type: "nack", Parameter: ""}, {Type: "nack", Parameter: "pli"}},
		},
		PayloadType: 100,
	},
	webrtc.MimeTypeVP9: {
		RTPCodecCapability: webrtc.RTPCodecCapability{
			MimeType:     webrtc.MimeTypeVP9,
			ClockRate:    90000,
			RTCPFeedback: []webrtc.RTCPFeedback{{Type: "goog-remb", Parameter: ""}, {Type: "ccm", Parameter: "fir"}, {Type: "nack", Parameter: ""}, {Type: "nack", Parameter: "pli"}},
		},
		PayloadType: 101,
	},
	webrtc.MimeTypeH264: {
		RTPCodecCapability: webrtc.RTPCodecCapability{
			MimeType:     webrtc.MimeTypeH264,
			ClockRate:    90000,
			RTCPFeedback: []webrtc.RTCPFeedback{{Type: "goog-remb", Parameter: ""}, {Type: "ccm", Parameter: "fir"}, {Type: "nack", Parameter: ""}, {Type: "nack", Parameter: "pli"}},
		},
		PayloadType: 102,
	},
	webrtc.MimeTypeH265: {
		RTPCodecCapability: webrtc.RTPCodecCapability{
			MimeType:     webrtc.MimeTypeH265,
			ClockRate:    90000,
			RTCPFeedback: []webrtc.RTCPFeedback{{Type: "goog-remb", Parameter: ""}, {Type: "ccm", Parameter: "fir"}, {Type: "nack", Parameter: ""}, {Type: "nack", Parameter: "pli"}},
		},
		PayloadType: 103,
	},
	webrtc.MimeTypeAV1: {
		RTPCodecCapability: webrtc.RTPCodecCapability{
			MimeType:     webrtc.MimeTypeAV1,
			ClockRate:    90000,
			RTCPFeedback: []webrtc.RTCPFeedback{{Type: "goog-remb", Parameter: ""}, {Type: "ccm", Parameter: "fir"}, {Type: "nack", Parameter: ""}, {Type: "nack", Parameter: "pli"}},
		},
		PayloadType: 104,
	},
	webrtc.MimeTypeOpus: {
		RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeOpus, ClockRate: 48000, Channels: 2},
		PayloadType:        111,
	},
	"audio/aac": {
		RTPCodecCapability: webrtc.RTPCodecCapability{MimeType: "audio/aac", ClockRate: 48000, Channels: 2},
		PayloadType:        112,
	},
}

// Parameters names the native decoder, the default software encoder and the
// per-device hardware encoders for a mime type.
type Parameters struct {
	DecoderName    string
	DefaultEncoder string
	HWEncoders     map[string]string
}

var SupportedCodecs = map[string]Parameters{
	webrtc.MimeTypeH264: {"h264", "libx264", map[string]string{
		"cuda":         "h264_nvenc",
		"vaapi":        "h264_vaapi",
		"qsv":          "h264_qsv",
		"videotoolbox": "h264_videotoolbox",
	}},
	webrtc.MimeTypeH265: {"hevc", "libx265", map[string]string{
		"cuda":         "hevc_nvenc",
		"vaapi":        "hevc_vaapi",
		"qsv":          "hevc_qsv",
		"videotoolbox": "hevc_videotoolbox",
	}},
	webrtc.MimeTypeVP8: {"vp8", "libvpx", nil},
	webrtc.MimeTypeVP9: {"vp9", "libvpx-vp9", map[string]string{
		"vaapi": "vp9_vaapi",
	}},
	webrtc.MimeTypeAV1: {"libdav1d", "libaom-av1", nil},

	webrtc.MimeTypeOpus: {"libopus", "libopus", nil},
	webrtc.MimeTypeG722: {"g722", "g722", nil},
	webrtc.MimeTypePCMU: {"pcm_mulaw", "pcm_mulaw", nil},
	webrtc.MimeTypePCMA: {"pcm_alaw", "pcm_alaw", nil},
	"audio/aac":         {"aac", "aac", nil},
	"audio/mpeg":        {"mp3", "libmp3lame", nil},
	"audio/vorbis":      {"vorbis", "libvorbis", nil},
	"audio/ac3":         {"ac3", "ac3", nil},
}

// EncoderName resolves the encoder to use for a mime type, preferring a
// hardware implementation when hwType names one.
func EncoderName(mimeType, hwType string) (string, error) {
	params, ok := SupportedCodecs[mimeType]
	if !ok {
		return "", fmt.Errorf("unsupported codec %s", mimeType)
	}
	if hwType != "" {
		if encoder, ok := params.HWEncoders[hwType]; ok {
			return encoder, nil
		}
	}
	return params.DefaultEncoder, nil
}

// ResolveOutputCodec picks the output codec parameters for a mime type,
// falling back to the kind's default when mimeType is empty.
func ResolveOutputCodec(kind webrtc.RTPCodecType, mimeType string) (webrtc.RTPCodecParameters, error) {
	if mimeType == "" {
		switch kind {
		case webrtc.RTPCodecTypeVideo:
			mimeType = webrtc.MimeTypeH264
		case webrtc.RTPCodecTypeAudio:
			mimeType = webrtc.MimeTypeOpus
		}
	}
	codec, ok := DefaultOutputCodecs[mimeType]
	if !ok {
		return webrtc.RTPCodecParameters{}, fmt.Errorf("unsupported codec %s", mimeType)
	}
	return codec, nil
}

// KindOf reports the codec type from a mime type prefix.
func KindOf(mimeType string) webrtc.RTPCodecType {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return webrtc.RTPCodecTypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return webrtc.RTPCodecTypeAudio
	default:
		return webrtc.RTPCodecType(0)
	}
}
