package av

import (
	"bytes"
	"testing"
)

func TestAVPacket_Data(t *testing.T) {
	p := NewAVPacket()
	defer p.Close()

	if p.Data() != nil {
		t.Errorf("fresh packet should have no data")
	}

	buf := []byte{0x00, 0x00, 0x00, 0x01, 0x65}
	if err := p.SetData(buf); err != nil {
		t.Fatalf("failed to set data: %v", err)
	}
	if p.Size() != len(buf) {
		t.Errorf("Size() = %d, want %d", p.Size(), len(buf))
	}
	if !bytes.Equal(p.Data(), buf) {
		t.Errorf("Data() = %v, want %v", p.Data(), buf)
	}

	p.Unref()
	if p.Size() != 0 {
		t.Errorf("Size() = %d after Unref, want 0", p.Size())
	}
}

func TestAVPacket_Timestamps(t *testing.T) {
	p := NewAVPacket()
	defer p.Close()

	if p.PTS() != NoPTSValue {
		t.Errorf("fresh packet PTS = %d, want NoPTSValue", p.PTS())
	}

	p.SetPTS(9000)
	p.SetDTS(8100)
	p.SetStreamIndex(2)

	if p.PTS() != 9000 || p.DTS() != 8100 || p.StreamIndex() != 2 {
		t.Errorf("got pts=%d dts=%d index=%d", p.PTS(), p.DTS(), p.StreamIndex())
	}
}

func TestAVPacket_RescaleTS(t *testing.T) {
	p := NewAVPacket()
	defer p.Close()

	// a packet with no time base adopts the destination without rescaling.
	p.SetPTS(1000)
	p.RescaleTS(NewRational(1, 90000))
	if p.PTS() != 1000 || p.TimeBase != NewRational(1, 90000) {
		t.Errorf("got pts=%d tb=%v", p.PTS(), p.TimeBase)
	}

	p.SetPTS(90000)
	p.SetDTS(90000)
	p.RescaleTS(NewRational(1, 1000))
	if p.PTS() != 1000 || p.DTS() != 1000 {
		t.Errorf("got pts=%d dts=%d, want 1000", p.PTS(), p.DTS())
	}
	if p.TimeBase != NewRational(1, 1000) {
		t.Errorf("TimeBase = %v, want 1/1000", p.TimeBase)
	}
}

func TestAVPacket_Clone(t *testing.T) {
	p := NewAVPacket()
	defer p.Close()
	p.TimeBase = NewRational(1, 48000)
	if err := p.SetData([]byte{1, 2, 3}); err != nil {
		t.Fatalf("failed to set data: %v", err)
	}

	q, err := p.Clone()
	if err != nil {
		t.Fatalf("failed to clone packet: %v", err)
	}
	defer q.Close()

	// the clone holds its own reference to the same payload.
	p.Unref()
	if !bytes.Equal(q.Data(), []byte{1, 2, 3}) {
		t.Errorf("Data() = %v, want [1 2 3]", q.Data())
	}
	if q.TimeBase != NewRational(1, 48000) {
		t.Errorf("TimeBase = %v, want 1/48000", q.TimeBase)
	}
}
