package av

import (
	"bytes"
	"io"
	"testing"
)

func TestIOContext_Seek(t *testing.T) {
	data := make([]byte, 100)
	c, err := NewReaderContext(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to create io context: %v", err)
	}
	defer c.Close()

	if got := c.seek(0, avseekSize); got != int64(len(data)) {
		t.Errorf("size query = %d, want %d", got, len(data))
	}
	// the size query must not move the read position.
	if got := c.seek(0, io.SeekCurrent); got != 0 {
		t.Errorf("position after size query = %d, want 0", got)
	}

	if got := c.seek(25, io.SeekStart); got != 25 {
		t.Errorf("seek(25, start) = %d, want 25", got)
	}
	if got := c.seek(25, io.SeekStart|avseekForce); got != 25 {
		t.Errorf("seek(25, start|force) = %d, want 25", got)
	}
	if got := c.seek(-10, io.SeekEnd|avseekForce); got != 90 {
		t.Errorf("seek(-10, end|force) = %d, want 90", got)
	}
}

func TestIOContext_SeekWithoutSeeker(t *testing.T) {
	c, err := NewReaderContext(io.LimitReader(bytes.NewReader(nil), 0))
	if err != nil {
		t.Fatalf("failed to create io context: %v", err)
	}
	defer c.Close()

	if got := c.seek(0, io.SeekStart); got != averrorENOSYS {
		t.Errorf("seek on unseekable reader = %d, want %d", got, averrorENOSYS)
	}
}
