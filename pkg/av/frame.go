package av

/*
#cgo pkg-config: libavutil
#include <string.h>
#include <libavutil/frame.h>
#include <libavutil/imgutils.h>
*/
import "C"
import (
	"errors"
	"unsafe"
)

// AVFrame wraps a reference-counted native frame.
type AVFrame struct {
	frame *C.AVFrame

	// TimeBase is the time base PTS is expressed in, carried for the same
	// reason as AVPacket.TimeBase.
	TimeBase Rational
}

func NewAVFrame() *AVFrame {
	frame := C.av_frame_alloc()
	if frame == nil {
		return nil
	}
	return &AVFrame{frame: frame}
}

func (f *AVFrame) PTS() int64 {
	return int64(f.frame.pts)
}

func (f *AVFrame) SetPTS(pts int64) {
	f.frame.pts = C.int64_t(pts)
}

func (f *AVFrame) Width() int {
	return int(f.frame.width)
}

func (f *AVFrame) Height() int {
	return int(f.frame.height)
}

// PixelFormat is only meaningful for video frames.
func (f *AVFrame) PixelFormat() PixelFormat {
	return PixelFormat(f.frame.format)
}

// SampleFormat is only meaningful for audio frames.
func (f *AVFrame) SampleFormat() SampleFormat {
	return SampleFormat(f.frame.format)
}

func (f *AVFrame) SampleRate() int {
	return int(f.frame.sample_rate)
}

func (f *AVFrame) NumSamples() int {
	return int(f.frame.nb_samples)
}

func (f *AVFrame) Channels() int {
	return int(f.frame.channels)
}

func (f *AVFrame) Keyframe() bool {
	return f.frame.key_frame != 0
}

// SetVideoGeometry prepares the frame header for AllocBuffer.
func (f *AVFrame) SetVideoGeometry(width, height int, format PixelFormat) {
	f.frame.width = C.int(width)
	f.frame.height = C.int(height)
	f.frame.format = C.int(format)
}

// SetAudioGeometry prepares the frame header for AllocBuffer.
func (f *AVFrame) SetAudioGeometry(numSamples, sampleRate, channels int, layout uint64, format SampleFormat) {
	f.frame.nb_samples = C.int(numSamples)
	f.frame.sample_rate = C.int(sampleRate)
	f.frame.channels = C.int(channels)
	f.frame.channel_layout = C.uint64_t(layout)
	f.frame.format = C.int(format)
}

// AllocBuffer allocates the data planes for the configured geometry.
func (f *AVFrame) AllocBuffer() error {
	if averr := C.av_frame_get_buffer(f.frame, 0); averr < 0 {
		return av_err("av_frame_get_buffer", averr)
	}
	return nil
}

func (f *AVFrame) MakeWritable() error {
	if averr := C.av_frame_make_writable(f.frame); averr < 0 {
		return av_err("av_frame_make_writable", averr)
	}
	return nil
}

func (f *AVFrame) Linesize(plane int) int {
	return int(f.frame.linesize[plane])
}

// Plane copies size bytes of the given data plane out of native memory.
func (f *AVFrame) Plane(plane, size int) []byte {
	if f.frame.data[plane] == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(f.frame.data[plane]), C.int(size))
}

// FillPlane copies buf into the given data plane. The frame must be writable.
func (f *AVFrame) FillPlane(plane int, buf []byte) error {
	if f.frame.data[plane] == nil {
		return errors.New("frame plane is not allocated")
	}
	if len(buf) > 0 {
		C.memcpy(unsafe.Pointer(f.frame.data[plane]), unsafe.Pointer(&buf[0]), C.size_t(len(buf)))
	}
	return nil
}

// ImageBufferSize returns the byte size of the packed image for a video frame.
func (f *AVFrame) ImageBufferSize() int {
	return int(C.av_image_get_buffer_size(int32(f.frame.format), f.frame.width, f.frame.height, 1))
}

// CopyImage copies the packed image into buf, which must be at least
// ImageBufferSize bytes.
func (f *AVFrame) CopyImage(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, errors.New("empty image buffer")
	}
	n := C.av_image_copy_to_buffer(
		(*C.uint8_t)(unsafe.Pointer(&buf[0])), C.int(len(buf)),
		&f.frame.data[0], &f.frame.linesize[0],
		int32(f.frame.format), f.frame.width, f.frame.height, 1)
	if n < 0 {
		return 0, av_err("av_image_copy_to_buffer", n)
	}
	return int(n), nil
}

// Clone returns a new reference to the same data planes.
func (f *AVFrame) Clone() (*AVFrame, error) {
	frame := C.av_frame_clone(f.frame)
	if frame == nil {
		return nil, errors.New("failed to clone frame")
	}
	return &AVFrame{frame: frame, TimeBase: f.TimeBase}, nil
}

// Unref drops the data reference but keeps the frame reusable.
func (f *AVFrame) Unref() {
	C.av_frame_unref(f.frame)
}

func (f *AVFrame) Close() error {
	C.av_frame_free(&f.frame)
	return nil
}
