package codecs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pion/webrtc/v3"
)

func TestEncoderName(t *testing.T) {
	for _, tc := range []struct {
		mimeType string
		hwType   string
		want     string
	}{
		{webrtc.MimeTypeH264, "", "libx264"},
		{webrtc.MimeTypeH264, "cuda", "h264_nvenc"},
		{webrtc.MimeTypeH264, "vaapi", "h264_vaapi"},
		{webrtc.MimeTypeVP8, "cuda", "libvpx"}, // no hw encoder, fall back
		{webrtc.MimeTypeOpus, "", "libopus"},
		{webrtc.MimeTypePCMU, "", "pcm_mulaw"},
	} {
		got, err := EncoderName(tc.mimeType, tc.hwType)
		if err != nil {
			t.Fatalf("EncoderName(%s, %s) failed: %v", tc.mimeType, tc.hwType, err)
		}
		if got != tc.want {
			t.Errorf("EncoderName(%s, %s) = %s, want %s", tc.mimeType, tc.hwType, got, tc.want)
		}
	}

	if _, err := EncoderName("video/unknown", ""); err == nil {
		t.Errorf("expected error for unknown mime type")
	}
}

func TestResolveOutputCodec_Defaults(t *testing.T) {
	video, err := ResolveOutputCodec(webrtc.RTPCodecTypeVideo, "")
	if err != nil {
		t.Fatalf("failed to resolve default video codec: %v", err)
	}
	if diff := cmp.Diff(DefaultOutputCodecs[webrtc.MimeTypeH264], video,
		cmpopts.IgnoreUnexported(webrtc.RTPCodecParameters{})); diff != "" {
		t.Errorf("unexpected video codec (-want +got):\n%s", diff)
	}

	audio, err := ResolveOutputCodec(webrtc.RTPCodecTypeAudio, "")
	if err != nil {
		t.Fatalf("failed to resolve default audio codec: %v", err)
	}
	if diff := cmp.Diff(DefaultOutputCodecs[webrtc.MimeTypeOpus], audio,
		cmpopts.IgnoreUnexported(webrtc.RTPCodecParameters{})); diff != "" {
		t.Errorf("unexpected audio codec (-want +got):\n%s", diff)
	}

	if _, err := ResolveOutputCodec(webrtc.RTPCodecTypeVideo, "video/unknown"); err == nil {
		t.Errorf("expected error for unknown mime type")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(webrtc.MimeTypeH264); got != webrtc.RTPCodecTypeVideo {
		t.Errorf("KindOf(%s) = %v, want video", webrtc.MimeTypeH264, got)
	}
	if got := KindOf(webrtc.MimeTypeOpus); got != webrtc.RTPCodecTypeAudio {
		t.Errorf("KindOf(%s) = %v, want audio", webrtc.MimeTypeOpus, got)
	}
	if got := KindOf("application/sdp"); got != webrtc.RTPCodecType(0) {
		t.Errorf("KindOf(application/sdp) = %v, want unknown", got)
	}
}

func TestDefaultOutputCodecs_HaveParameters(t *testing.T) {
	// every advertised output codec must be encodable.
	for mimeType := range DefaultOutputCodecs {
		if _, ok := SupportedCodecs[mimeType]; !ok {
			t.Errorf("no codec parameters for %s", mimeType)
		}
	}
}
