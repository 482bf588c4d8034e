package av

import (
	"bytes"
	"io"
	"testing"
)

// Muxes an encoded stream into an in-memory mpegts container and demuxes it
// back, covering both directions of the custom IO path.
func TestFormatContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	wctx, err := NewWriterContext(&buf)
	if err != nil {
		t.Fatalf("failed to create writer context: %v", err)
	}
	out, err := NewOutputContextIO("mpegts", wctx)
	if err != nil {
		t.Fatalf("failed to create output context: %v", err)
	}

	enc, err := FindEncoderByName("mpeg4")
	if err != nil {
		t.Fatalf("failed to find encoder: %v", err)
	}
	encoderctx, err := NewCodecContext(enc)
	if err != nil {
		t.Fatalf("failed to create encoder context: %v", err)
	}
	defer encoderctx.Close()
	encoderctx.SetVideoGeometry(64, 48, PixelFormatYUV420P)
	encoderctx.SetTimeBase(NewRational(1, 25))
	if out.GlobalHeaderRequired() {
		encoderctx.SetGlobalHeader()
	}
	if err := encoderctx.Open(nil); err != nil {
		t.Fatalf("failed to open encoder: %v", err)
	}

	stream, err := out.NewStreamFromCodecContext(encoderctx)
	if err != nil {
		t.Fatalf("failed to create stream: %v", err)
	}
	if err := out.WriteHeader(nil); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}

	packet := NewAVPacket()
	defer packet.Close()

	written := 0
	drain := func() {
		for {
			if err := encoderctx.ReceivePacket(packet); err != nil {
				if err == ErrAgain || err == io.EOF {
					return
				}
				t.Fatalf("failed to receive packet: %v", err)
			}
			packet.SetStreamIndex(stream.Index())
			if err := out.WriteAVPacket(packet); err != nil {
				t.Fatalf("failed to write packet: %v", err)
			}
			written++
			packet.Unref()
		}
	}

	for i := 0; i < 25; i++ {
		frame := newTestVideoFrame(t, 64, 48)
		frame.SetPTS(int64(i))
		if err := encoderctx.SendFrame(frame); err != nil {
			t.Fatalf("failed to send frame %d: %v", i, err)
		}
		frame.Close()
		drain()
	}
	if err := encoderctx.SendFrame(nil); err != nil {
		t.Fatalf("failed to flush encoder: %v", err)
	}
	drain()

	if err := out.WriteTrailer(); err != nil {
		t.Fatalf("failed to write trailer: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("failed to close output: %v", err)
	}

	if written != 25 {
		t.Fatalf("wrote %d packets, want 25", written)
	}
	if buf.Len() == 0 {
		t.Fatalf("no container bytes written")
	}

	rctx, err := NewReaderContext(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("failed to create reader context: %v", err)
	}
	in, err := OpenInputIO(rctx, "mpegts", nil)
	if err != nil {
		t.Fatalf("failed to open input: %v", err)
	}
	defer in.Close()

	if len(in.Streams()) != 1 {
		t.Fatalf("got %d streams, want 1", len(in.Streams()))
	}

	best, codec, err := in.FindBestStream(MediaTypeVideo)
	if err != nil {
		t.Fatalf("failed to find best stream: %v", err)
	}
	if codec.Name() != "mpeg4" {
		t.Errorf("codec = %s, want mpeg4", codec.Name())
	}
	par := best.CodecParameters()
	if par.Width() != 64 || par.Height() != 48 {
		t.Errorf("parameters = %dx%d, want 64x48", par.Width(), par.Height())
	}
	if par.MediaType() != MediaTypeVideo {
		t.Errorf("MediaType() = %v, want video", par.MediaType())
	}

	read := 0
	for {
		if err := in.ReadAVPacket(packet); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("failed to read packet: %v", err)
		}
		if packet.TimeBase != best.TimeBase() {
			t.Errorf("packet time base = %v, want %v", packet.TimeBase, best.TimeBase())
		}
		read++
		packet.Unref()
	}
	if read != 25 {
		t.Errorf("read %d packets, want 25", read)
	}
}
