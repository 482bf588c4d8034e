package rtc

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/muxable/libav/internal/codecs"
	"github.com/pion/sdp/v3"
	"github.com/pion/webrtc/v3"
)

// ParseSDP reads a session description, tolerating the "SDP:" banner line
// ffmpeg prints before the description when writing to stdout.
func ParseSDP(r io.Reader) (*sdp.SessionDescription, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "SDP:" {
			continue
		}
		lines = append(lines, line)
		if line == "" {
			break
		}
	}
	s := &sdp.SessionDescription{}
	if err := s.Unmarshal([]byte(strings.Join(lines, "\n"))); err != nil {
		return nil, err
	}
	return s, nil
}

func mediaDescription(codec webrtc.RTPCodecParameters, port int) *sdp.MediaDescription {
	pt := strconv.FormatUint(uint64(codec.PayloadType), 10)
	rtpmap := fmt.Sprintf("%s/%d", strings.Split(codec.MimeType, "/")[1], codec.ClockRate)
	if codec.Channels > 0 {
		rtpmap += fmt.Sprintf("/%d", codec.Channels)
	}
	return &sdp.MediaDescription{
		ConnectionInformation: &sdp.ConnectionInformation{
			NetworkType: "IN",
			AddressType: "IP4",
			Address:     &sdp.Address{Address: "127.0.0.1"},
		},
		MediaName: sdp.MediaName{
			Media:   codecs.KindOf(codec.MimeType).String(),
			Port:    sdp.RangedPort{Value: port, Range: nil},
			Protos:  []string{"RTP", "AVP"},
			Formats: []string{pt},
		},
		Attributes: []sdp.Attribute{
			{
				Key:   "rtpmap",
				Value: fmt.Sprintf("%s %s", pt, rtpmap),
			},
			{
				Key:   "fmtp",
				Value: fmt.Sprintf("%s %s", pt, codec.SDPFmtpLine),
			},
		},
	}
}

func newSessionDescription() *sdp.SessionDescription {
	return &sdp.SessionDescription{
		Version: 0,
		Origin: sdp.Origin{
			Username:       "-",
			NetworkType:    "IN",
			AddressType:    "IP4",
			UnicastAddress: "127.0.0.1",
		},
		SessionName: "Pion WebRTC",
	}
}

// newTempSDP writes a single-media session description to a temporary file so
// the native sdp demuxer can open it. The port is a placeholder; packets flow
// through custom IO, not the socket the description names.
func newTempSDP(codec webrtc.RTPCodecParameters) (*os.File, error) {
	s := newSessionDescription()
	s.WithMedia(mediaDescription(codec, 6000))

	buf, err := s.Marshal()
	if err != nil {
		return nil, err
	}
	file, err := ioutil.TempFile("", "rtc-sdp")
	if err != nil {
		return nil, err
	}
	if _, err := file.Write(buf); err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, err
	}
	return file, nil
}
