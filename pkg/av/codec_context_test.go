package av

import (
	"io"
	"testing"
)

// Exercises the full send/receive state machine with a software encoder and
// decoder that every build of the native library ships.
func TestCodecContext_EncodeDecode(t *testing.T) {
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
	encoderctx.SetGopSize(5)
	if err := encoderctx.Open(nil); err != nil {
		t.Fatalf("failed to open encoder: %v", err)
	}

	packet := NewAVPacket()
	defer packet.Close()

	// nothing has been sent yet.
	if err := encoderctx.ReceivePacket(packet); err != ErrAgain {
		t.Fatalf("ReceivePacket() = %v, want ErrAgain", err)
	}

	var packets []*AVPacket
	drain := func() {
		for {
			if err := encoderctx.ReceivePacket(packet); err != nil {
				if err == ErrAgain || err == io.EOF {
					return
				}
				t.Fatalf("failed to receive packet: %v", err)
			}
			p, err := packet.Clone()
			if err != nil {
				t.Fatalf("failed to clone packet: %v", err)
			}
			packets = append(packets, p)
			packet.Unref()
		}
	}

	for i := 0; i < 10; i++ {
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

	if len(packets) != 10 {
		t.Fatalf("encoded %d packets, want 10", len(packets))
	}
	if !packets[0].Keyframe() {
		t.Errorf("first packet should be a keyframe")
	}
	if packets[0].TimeBase != NewRational(1, 25) {
		t.Errorf("packet time base = %v, want 1/25", packets[0].TimeBase)
	}

	dec, err := FindDecoder(enc.ID())
	if err != nil {
		t.Fatalf("failed to find decoder: %v", err)
	}
	decoderctx, err := NewCodecContext(dec)
	if err != nil {
		t.Fatalf("failed to create decoder context: %v", err)
	}
	defer decoderctx.Close()
	decoderctx.SetTimeBase(NewRational(1, 25))
	if err := decoderctx.Open(nil); err != nil {
		t.Fatalf("failed to open decoder: %v", err)
	}

	frame := NewAVFrame()
	defer frame.Close()

	decoded := 0
	for _, p := range packets {
		if err := decoderctx.SendPacket(p); err != nil {
			t.Fatalf("failed to send packet: %v", err)
		}
		p.Close()
		for {
			if err := decoderctx.ReceiveFrame(frame); err != nil {
				if err == ErrAgain {
					break
				}
				t.Fatalf("failed to receive frame: %v", err)
			}
			if frame.Width() != 64 || frame.Height() != 48 {
				t.Errorf("decoded geometry = %dx%d, want 64x48", frame.Width(), frame.Height())
			}
			decoded++
			frame.Unref()
		}
	}
	if err := decoderctx.SendPacket(nil); err != nil {
		t.Fatalf("failed to flush decoder: %v", err)
	}
	for {
		if err := decoderctx.ReceiveFrame(frame); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("failed to drain decoder: %v", err)
		}
		decoded++
		frame.Unref()
	}

	if decoded != 10 {
		t.Errorf("decoded %d frames, want 10", decoded)
	}
}
