package rtc

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/muxable/libav/internal/codecs"
	"github.com/pion/webrtc/v3"
)

func TestParseSDP(t *testing.T) {
	// ffmpeg prints this banner before the description on stdout.
	in := strings.Join([]string{
		"SDP:",
		"v=0",
		"o=- 0 0 IN IP4 127.0.0.1",
		"s=No Name",
		"c=IN IP4 127.0.0.1",
		"t=0 0",
		"m=video 4444 RTP/AVP 96",
		"a=rtpmap:96 VP8/90000",
		"",
	}, "\n")

	s, err := ParseSDP(strings.NewReader(in))
	if err != nil {
		t.Fatalf("failed to parse sdp: %v", err)
	}
	if len(s.MediaDescriptions) != 1 {
		t.Fatalf("got %d media descriptions, want 1", len(s.MediaDescriptions))
	}
	media := s.MediaDescriptions[0]
	if media.MediaName.Media != "video" {
		t.Errorf("media = %s, want video", media.MediaName.Media)
	}
	if media.MediaName.Port.Value != 4444 {
		t.Errorf("port = %d, want 4444", media.MediaName.Port.Value)
	}
	if len(media.MediaName.Formats) != 1 || media.MediaName.Formats[0] != "96" {
		t.Errorf("formats = %v, want [96]", media.MediaName.Formats)
	}
}

func TestMediaDescription(t *testing.T) {
	video := mediaDescription(codecs.DefaultOutputCodecs[webrtc.MimeTypeH264], 5004)
	if video.MediaName.Media != "video" {
		t.Errorf("media = %s, want video", video.MediaName.Media)
	}
	if video.MediaName.Port.Value != 5004 {
		t.Errorf("port = %d, want 5004", video.MediaName.Port.Value)
	}
	if got, want := video.Attributes[0].Value, "102 H264/90000"; got != want {
		t.Errorf("rtpmap = %q, want %q", got, want)
	}

	// audio carries a channel count in the rtpmap.
	audio := mediaDescription(codecs.DefaultOutputCodecs[webrtc.MimeTypeOpus], 5006)
	if got, want := audio.Attributes[0].Value, "111 opus/48000/2"; got != want {
		t.Errorf("rtpmap = %q, want %q", got, want)
	}
}

func TestNewTempSDP(t *testing.T) {
	file, err := newTempSDP(codecs.DefaultOutputCodecs[webrtc.MimeTypeOpus])
	if err != nil {
		t.Fatalf("failed to create temp sdp: %v", err)
	}
	defer os.Remove(file.Name())
	defer file.Close()

	buf, err := ioutil.ReadFile(file.Name())
	if err != nil {
		t.Fatalf("failed to read temp sdp: %v", err)
	}
	desc := string(buf)
	if !strings.Contains(desc, "m=audio 6000 RTP/AVP 111") {
		t.Errorf("missing media line:\n%s", desc)
	}
	if !strings.Contains(desc, "a=rtpmap:111 opus/48000/2") {
		t.Errorf("missing rtpmap line:\n%s", desc)
	}

	// the description must survive its own parser.
	s, err := ParseSDP(strings.NewReader(desc))
	if err != nil {
		t.Fatalf("failed to reparse temp sdp: %v", err)
	}
	if len(s.MediaDescriptions) != 1 {
		t.Errorf("got %d media descriptions, want 1", len(s.MediaDescriptions))
	}
}
