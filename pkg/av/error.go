package av

/*
#cgo pkg-config: libavutil
#include <libavutil/error.h>
*/
import "C"
import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unsafe"
)

const (
	averrorEOF    = -541478725 // AVERROR_EOF
	averrorEAgain = -11        // AVERROR(EAGAIN)
)

// ErrAgain is returned when a send/receive call would block, ie. the other
// half of the codec state machine must be pumped first.
var ErrAgain = errors.New("resource temporarily unavailable")

// Error is an error from the native library that retains the original code.
type Error struct {
	Prefix  string
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Prefix, e.Message, e.Code)
}

func av_err(prefix string, averr C.int) error {
	switch averr {
	case averrorEOF:
		return io.EOF
	case averrorEAgain:
		return ErrAgain
	}
	errlen := 1024
	b := make([]byte, errlen)
	C.av_strerror(averr, (*C.char)(unsafe.Pointer(&b[0])), C.size_t(errlen))
	return &Error{Prefix: prefix, Code: int(averr), Message: string(b[:bytes.Index(b, []byte{0})])}
}
