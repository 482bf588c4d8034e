package av

/*
#cgo pkg-config: libavformat libavutil
#include <string.h>
#include <libavformat/avio.h>
#include <libavutil/mem.h>
#include "io_shim.h"
*/
import "C"
import (
	"errors"
	"io"
	"unsafe"

	"github.com/mattn/go-pointer"
	"go.uber.org/zap"
)

const ioBufferSize = 4096

const averrorENOSYS = -38 // AVERROR(ENOSYS)

const (
	avseekSize  = 0x10000 // AVSEEK_SIZE
	avseekForce = 0x20000 // AVSEEK_FORCE
)

// IOContext adapts a Go stream into an AVIOContext so containers can be
// demuxed from or muxed to arbitrary byte sources, not just URLs.
type IOContext struct {
	avioctx *C.AVIOContext
	handle  unsafe.Pointer

	reader io.Reader
	writer io.Writer
	seeker io.Seeker
}

// NewReaderContext wraps r for demuxing. If r implements io.Seeker the
// demuxer is allowed to seek, which many containers require for probing.
func NewReaderContext(r io.Reader) (*IOContext, error) {
	c := &IOContext{reader: r}
	if seeker, ok := r.(io.Seeker); ok {
		c.seeker = seeker
	}
	return c, c.init(0)
}

// NewWriterContext wraps w for muxing.
func NewWriterContext(w io.Writer) (*IOContext, error) {
	c := &IOContext{writer: w}
	if seeker, ok := w.(io.Seeker); ok {
		c.seeker = seeker
	}
	return c, c.init(1)
}

func (c *IOContext) init(writeFlag C.int) error {
	buf := C.av_malloc(ioBufferSize)
	if buf == nil {
		return errors.New("failed to allocate io buffer")
	}

	c.handle = pointer.Save(c)

	var readFn, writeFn, seekFn *[0]byte
	if c.reader != nil {
		readFn = (*[0]byte)(C.cgoIOReadPacket)
	}
	if c.writer != nil {
		writeFn = (*[0]byte)(C.cgoIOWritePacket)
	}
	if c.seeker != nil {
		seekFn = (*[0]byte)(C.cgoIOSeek)
	}

	avioctx := C.avio_alloc_context((*C.uchar)(buf), ioBufferSize, writeFlag, c.handle, readFn, writeFn, seekFn)
	if avioctx == nil {
		C.av_free(buf)
		pointer.Unref(c.handle)
		return errors.New("failed to allocate avio context")
	}

	c.avioctx = avioctx
	return nil
}

//export goIOReadPacket
func goIOReadPacket(opaque unsafe.Pointer, buf *C.uint8_t, bufsize C.int) C.int {
	c := pointer.Restore(opaque).(*IOContext)

	b := make([]byte, int(bufsize))
	n, err := c.reader.Read(b)
	if n > 0 {
		C.memcpy(unsafe.Pointer(buf), unsafe.Pointer(&b[0]), C.size_t(n))
		return C.int(n)
	}
	if err == io.EOF || err == nil {
		return C.int(averrorEOF)
	}
	zap.L().Error("read failed", zap.Error(err))
	return C.int(averrorEOF)
}

//export goIOWritePacket
func goIOWritePacket(opaque unsafe.Pointer, buf *C.uint8_t, bufsize C.int) C.int {
	c := pointer.Restore(opaque).(*IOContext)

	b := C.GoBytes(unsafe.Pointer(buf), bufsize)
	n, err := c.writer.Write(b)
	if err != nil {
		zap.L().Error("write failed", zap.Error(err))
		return C.int(averrorEOF)
	}
	return C.int(n)
}

//export goIOSeek
func goIOSeek(opaque unsafe.Pointer, offset C.int64_t, whence C.int) C.int64_t {
	c := pointer.Restore(opaque).(*IOContext)
	return C.int64_t(c.seek(int64(offset), int(whence)))
}

func (c *IOContext) seek(offset int64, whence int) int64 {
	if c.seeker == nil {
		return averrorENOSYS
	}

	if whence&avseekSize != 0 {
		cur, err := c.seeker.Seek(0, io.SeekCurrent)
		if err != nil {
			return averrorENOSYS
		}
		end, err := c.seeker.Seek(0, io.SeekEnd)
		if err != nil {
			return averrorENOSYS
		}
		if _, err := c.seeker.Seek(cur, io.SeekStart); err != nil {
			return averrorENOSYS
		}
		return end
	}

	// the caller may or AVSEEK_FORCE into whence, which io.Seeker rejects.
	pos, err := c.seeker.Seek(offset, whence&^avseekForce)
	if err != nil {
		zap.L().Error("seek failed", zap.Error(err))
		return averrorENOSYS
	}
	return pos
}

func (c *IOContext) Close() error {
	if c.avioctx != nil {
		// the io buffer may have been reallocated by libav, so free whatever
		// is attached now rather than the original allocation.
		C.av_freep(unsafe.Pointer(&c.avioctx.buffer))
		C.avio_context_free(&c.avioctx)
	}
	if c.handle != nil {
		pointer.Unref(c.handle)
		c.handle = nil
	}
	return nil
}
