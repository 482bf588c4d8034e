package transcoder

import (
	"github.com/benbjohnson/clock"
	"github.com/pion/webrtc/v3"
)

type options struct {
	videoMimeType string
	audioMimeType string

	videoEncoder string
	audioEncoder string

	videoFilter string
	audioFilter string

	videoBitRate int64
	audioBitRate int64
	gopSize      int

	hwType   string
	hwDevice string

	pacer *Pacer

	encoderOptions map[string]string
}

func defaultOptions() options {
	return options{
		videoMimeType: webrtc.MimeTypeH264,
		audioMimeType: webrtc.MimeTypeOpus,
	}
}

type Option func(*options)

// WithVideoCodec selects the output video codec by mime type.
func WithVideoCodec(mimeType string) Option {
	return func(o *options) {
		o.videoMimeType = mimeType
	}
}

// WithAudioCodec selects the output audio codec by mime type.
func WithAudioCodec(mimeType string) Option {
	return func(o *options) {
		o.audioMimeType = mimeType
	}
}

// WithVideoEncoder overrides the encoder implementation, eg. "h264_nvenc".
func WithVideoEncoder(name string) Option {
	return func(o *options) {
		o.videoEncoder = name
	}
}

// WithAudioEncoder overrides the encoder implementation.
func WithAudioEncoder(name string) Option {
	return func(o *options) {
		o.audioEncoder = name
	}
}

// WithVideoFilter inserts a filter chain between decode and encode, eg.
// "scale=1280:720,fps=30".
func WithVideoFilter(desc string) Option {
	return func(o *options) {
		o.videoFilter = desc
	}
}

// WithAudioFilter inserts a filter chain between decode and encode, eg.
// "aresample=48000".
func WithAudioFilter(desc string) Option {
	return func(o *options) {
		o.audioFilter = desc
	}
}

func WithVideoBitRate(bitrate int64) Option {
	return func(o *options) {
		o.videoBitRate = bitrate
	}
}

func WithAudioBitRate(bitrate int64) Option {
	return func(o *options) {
		o.audioBitRate = bitrate
	}
}

func WithGopSize(gop int) Option {
	return func(o *options) {
		o.gopSize = gop
	}
}

// WithHardwareDevice decodes and encodes on the named device type ("cuda",
// "vaapi", ...). device selects a specific device node and may be empty.
func WithHardwareDevice(hwType, device string) Option {
	return func(o *options) {
		o.hwType = hwType
		o.hwDevice = device
	}
}

// WithRealtimePacing throttles output packets to media time on c, which may
// be nil for the wall clock.
func WithRealtimePacing(c clock.Clock) Option {
	return func(o *options) {
		o.pacer = NewPacer(c)
	}
}

// WithEncoderOptions passes codec-private options (eg. preset=ultrafast).
func WithEncoderOptions(opts map[string]string) Option {
	return func(o *options) {
		o.encoderOptions = opts
	}
}
