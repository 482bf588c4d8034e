package rtc

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/pion/rtpio/pkg/rtpio"
	"github.com/pion/sdp/v3"
	"github.com/pion/webrtc/v3"
	"go.uber.org/zap"
)

// GetFreePort asks the kernel for an unused UDP port.
func GetFreePort() (int, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).Port, nil
}

// Receive listens on the ports an incoming session description names and
// returns a track per media section.
func Receive(desc *sdp.SessionDescription) ([]*TrackRemote, error) {
	tracks := make([]*TrackRemote, 0, len(desc.MediaDescriptions))
	for _, media := range desc.MediaDescriptions {
		if media.MediaName.Media == "application" {
			continue
		}

		if media.MediaName.Port.Range != nil {
			return nil, errors.New("ranged ports not supported")
		}
		if len(media.MediaName.Formats) == 0 {
			return nil, errors.New("media section has no formats")
		}

		pt, err := strconv.ParseUint(media.MediaName.Formats[0], 10, 8)
		if err != nil {
			return nil, err
		}

		conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(0, 0, 0, 0), Port: media.MediaName.Port.Value})
		if err != nil {
			return nil, err
		}

		r, w := io.Pipe()
		go func() {
			defer w.Close()
			buf := make([]byte, 1500)
			for {
				n, _, err := conn.ReadFromUDP(buf)
				if err != nil {
					return
				}
				if _, err := w.Write(buf[:n]); err != nil {
					zap.L().Error("failed to forward packet", zap.Error(err))
					return
				}
			}
		}()

		codec, err := codecFromMedia(media, uint8(pt))
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, &TrackRemote{
			Reader:      r,
			RTPReader:   rtpio.NewRTPReader(r, 1500),
			payloadType: webrtc.PayloadType(pt),
			kind:        webrtc.NewRTPCodecType(media.MediaName.Media),
			codec:       codec,
		})
	}
	return tracks, nil
}

func codecFromMedia(media *sdp.MediaDescription, pt uint8) (webrtc.RTPCodecParameters, error) {
	codec := webrtc.RTPCodecParameters{
		PayloadType: webrtc.PayloadType(pt),
		RTPCodecCapability: webrtc.RTPCodecCapability{
			ClockRate: 90000,
			Channels:  1,
		},
	}
	prefix := fmt.Sprintf("%d ", pt)
	for _, attribute := range media.Attributes {
		if attribute.Key == "rtpmap" && strings.HasPrefix(attribute.Value, prefix) {
			parts := strings.Split(attribute.Value[len(prefix):], "/")
			codec.MimeType = fmt.Sprintf("%s/%s", media.MediaName.Media, parts[0])
			if len(parts) > 1 {
				clockRate, err := strconv.ParseUint(parts[1], 10, 32)
				if err != nil {
					return codec, err
				}
				codec.ClockRate = uint32(clockRate)
			}
			if len(parts) > 2 {
				channels, err := strconv.ParseUint(parts[2], 10, 16)
				if err != nil {
					return codec, err
				}
				codec.Channels = uint16(channels)
			}
		}
		if attribute.Key == "fmtp" && strings.HasPrefix(attribute.Value, prefix) {
			codec.SDPFmtpLine = attribute.Value[len(prefix):]
		}
	}
	return codec, nil
}

// Send allocates a local UDP destination per track and returns the session
// description a receiver would need to pick the streams up.
func Send(tracks []*TrackLocal) (*sdp.SessionDescription, error) {
	s := newSessionDescription()
	for _, track := range tracks {
		port, err := GetFreePort()
		if err != nil {
			return nil, err
		}
		s.WithMedia(mediaDescription(track.Codec(), port))

		dial, err := net.DialUDP("udp", nil, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port})
		if err != nil {
			return nil, err
		}
		track.writers = append(track.writers, dial)
	}
	return s, nil
}
