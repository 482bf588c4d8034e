package av

/*
#cgo pkg-config: libavutil
#include <stdlib.h>
#include <libavutil/hwcontext.h>
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// HWDeviceType identifies a hardware acceleration backend (cuda, vaapi, ...).
type HWDeviceType int

const HWDeviceTypeNone HWDeviceType = C.AV_HWDEVICE_TYPE_NONE

func HWDeviceTypeByName(name string) HWDeviceType {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return HWDeviceType(C.av_hwdevice_find_type_by_name(cname))
}

func (t HWDeviceType) String() string {
	name := C.av_hwdevice_get_type_name(uint32(t))
	if name == nil {
		return "none"
	}
	return C.GoString(name)
}

// HWDeviceTypes enumerates the backends this build of the native library
// supports.
func HWDeviceTypes() []HWDeviceType {
	var types []HWDeviceType
	current := C.av_hwdevice_iterate_types(C.AV_HWDEVICE_TYPE_NONE)
	for current != C.AV_HWDEVICE_TYPE_NONE {
		types = append(types, HWDeviceType(current))
		current = C.av_hwdevice_iterate_types(current)
	}
	return types
}

// HWDeviceContext owns a reference to a hardware device usable by codec
// contexts and filter graphs.
type HWDeviceContext struct {
	ref *C.AVBufferRef
}

// NewHWDeviceContext opens a hardware device. device may be empty to pick the
// backend default.
func NewHWDeviceContext(kind HWDeviceType, device string) (*HWDeviceContext, error) {
	if kind == HWDeviceTypeNone {
		return nil, fmt.Errorf("unknown hardware device type")
	}

	var cdevice *C.char
	if device != "" {
		cdevice = C.CString(device)
		defer C.free(unsafe.Pointer(cdevice))
	}

	var ref *C.AVBufferRef
	if averr := C.av_hwdevice_ctx_create(&ref, uint32(kind), cdevice, nil, 0); averr < 0 {
		return nil, av_err("av_hwdevice_ctx_create", averr)
	}
	return &HWDeviceContext{ref: ref}, nil
}

func (c *HWDeviceContext) Close() error {
	C.av_buffer_unref(&c.ref)
	return nil
}

// IsHardware reports whether the frame's data lives in device memory.
func (f *AVFrame) IsHardware() bool {
	return f.frame.hw_frames_ctx != nil
}

// TransferTo copies frame data between device and system memory, in whichever
// direction the pair of frames implies.
func (f *AVFrame) TransferTo(dst *AVFrame) error {
	if averr := C.av_hwframe_transfer_data(dst.frame, f.frame, 0); averr < 0 {
		return av_err("av_hwframe_transfer_data", averr)
	}
	dst.frame.pts = f.frame.pts
	dst.TimeBase = f.TimeBase
	return nil
}
