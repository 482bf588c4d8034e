package av

/*
#cgo pkg-config: libavcodec libavutil
#include <string.h>
#include <libavcodec/avcodec.h>
*/
import "C"
import (
	"errors"
	"unsafe"
)

// NoPTSValue marks an unset timestamp (AV_NOPTS_VALUE).
const NoPTSValue = int64(-1 << 63)

// AVPacket wraps a reference-counted native packet. These are useful to avoid
// leaking the cgo interface to callers.
type AVPacket struct {
	packet *C.AVPacket

	// TimeBase is the time base the packet timestamps are expressed in. It is
	// carried alongside the native struct because libav does not.
	TimeBase Rational
}

func NewAVPacket() *AVPacket {
	packet := C.av_packet_alloc()
	if packet == nil {
		return nil
	}
	return &AVPacket{packet: packet}
}

func (p *AVPacket) PTS() int64 {
	return int64(p.packet.pts)
}

func (p *AVPacket) SetPTS(pts int64) {
	p.packet.pts = C.int64_t(pts)
}

func (p *AVPacket) DTS() int64 {
	return int64(p.packet.dts)
}

func (p *AVPacket) SetDTS(dts int64) {
	p.packet.dts = C.int64_t(dts)
}

func (p *AVPacket) Duration() int64 {
	return int64(p.packet.duration)
}

func (p *AVPacket) StreamIndex() int {
	return int(p.packet.stream_index)
}

func (p *AVPacket) SetStreamIndex(index int) {
	p.packet.stream_index = C.int(index)
}

func (p *AVPacket) Keyframe() bool {
	return p.packet.flags&C.AV_PKT_FLAG_KEY != 0
}

func (p *AVPacket) Size() int {
	return int(p.packet.size)
}

// Data copies the packet payload out of native memory.
func (p *AVPacket) Data() []byte {
	if p.packet.data == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(p.packet.data), p.packet.size)
}

// SetData replaces the packet payload with a copy of buf owned by libav.
func (p *AVPacket) SetData(buf []byte) error {
	C.av_packet_unref(p.packet)
	if averr := C.av_new_packet(p.packet, C.int(len(buf))); averr < 0 {
		return av_err("av_new_packet", averr)
	}
	if len(buf) > 0 {
		C.memcpy(unsafe.Pointer(p.packet.data), unsafe.Pointer(&buf[0]), C.size_t(len(buf)))
	}
	return nil
}

// RescaleTS converts pts, dts and duration to dst and records it as the
// packet's time base.
func (p *AVPacket) RescaleTS(dst Rational) {
	if p.TimeBase.IsZero() {
		p.TimeBase = dst
		return
	}
	C.av_packet_rescale_ts(p.packet, p.TimeBase.ctype(), dst.ctype())
	p.TimeBase = dst
}

// Clone returns a new reference to the same payload.
func (p *AVPacket) Clone() (*AVPacket, error) {
	packet := C.av_packet_clone(p.packet)
	if packet == nil {
		return nil, errors.New("failed to clone packet")
	}
	return &AVPacket{packet: packet, TimeBase: p.TimeBase}, nil
}

// Unref drops the payload reference but keeps the packet reusable.
func (p *AVPacket) Unref() {
	C.av_packet_unref(p.packet)
}

func (p *AVPacket) Close() error {
	C.av_packet_free(&p.packet)
	return nil
}
