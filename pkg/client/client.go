// Package client connects to a transcoding server over gRPC and exchanges
// tracks with it over a WebRTC peer connection.
package client

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/muxable/libav/api"
	"github.com/muxable/libav/pkg/rtc"
	"github.com/pion/webrtc/v3"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type TranscoderClient struct {
	sync.Mutex

	peerConnection *webrtc.PeerConnection
	client         api.TranscoderClient
	promises       map[string]chan *webrtc.TrackRemote
	unmatched      map[string]*webrtc.TrackRemote
}

func NewTranscoderClient(conn grpc.ClientConnInterface, config webrtc.Configuration) (*TranscoderClient, error) {
	peerConnection, err := rtc.NewPeerConnection(config)
	if err != nil {
		return nil, err
	}

	client := api.NewTranscoderClient(conn)
	signal, err := client.Signal(context.Background())
	if err != nil {
		return nil, err
	}

	c := &TranscoderClient{
		peerConnection: peerConnection,
		client:         client,
		promises:       make(map[string]chan *webrtc.TrackRemote),
		unmatched:      make(map[string]*webrtc.TrackRemote),
	}

	peerConnection.OnNegotiationNeeded(func() {
		offer, err := peerConnection.CreateOffer(nil)
		if err != nil {
			zap.L().Error("failed to create offer", zap.Error(err))
			return
		}

		if err := peerConnection.SetLocalDescription(offer); err != nil {
			zap.L().Error("failed to set local description", zap.Error(err))
			return
		}

		if err := signal.Send(&api.SignalMessage{
			Payload: &api.SignalMessage_OfferSdp{OfferSdp: offer.SDP},
		}); err != nil {
			zap.L().Error("failed to send offer", zap.Error(err))
		}
	})

	peerConnection.OnICECandidate(func(candidate *webrtc.ICECandidate) {
		if candidate == nil {
			return
		}

		trickle, err := json.Marshal(candidate.ToJSON())
		if err != nil {
			zap.L().Error("failed to marshal candidate", zap.Error(err))
			return
		}

		signal.Send(&api.SignalMessage{
			Payload: &api.SignalMessage_Trickle{Trickle: string(trickle)},
		})
	})

	peerConnection.OnTrack(func(tr *webrtc.TrackRemote, r *webrtc.RTPReceiver) {
		c.resolveTrack(tr)
	})

	go func() {
		defer peerConnection.Close()
		for {
			in, err := signal.Recv()
			if err != nil {
				zap.L().Error("failed to receive", zap.Error(err))
				return
			}

			switch payload := in.Payload.(type) {
			case *api.SignalMessage_OfferSdp:
				if err := peerConnection.SetRemoteDescription(webrtc.SessionDescription{
					SDP:  payload.OfferSdp,
					Type: webrtc.SDPTypeOffer,
				}); err != nil {
					zap.L().Error("failed to set remote description", zap.Error(err))
					break
				}
				answer, err := peerConnection.CreateAnswer(nil)
				if err != nil {
					zap.L().Error("failed to create answer", zap.Error(err))
					break
				}

				if err := peerConnection.SetLocalDescription(answer); err != nil {
					zap.L().Error("failed to set local description", zap.Error(err))
					break
				}

				if err := signal.Send(&api.SignalMessage{
					Payload: &api.SignalMessage_AnswerSdp{AnswerSdp: answer.SDP},
				}); err != nil {
					zap.L().Error("failed to send answer", zap.Error(err))
				}

			case *api.SignalMessage_AnswerSdp:
				if err := peerConnection.SetRemoteDescription(webrtc.SessionDescription{
					SDP:  payload.AnswerSdp,
					Type: webrtc.SDPTypeAnswer,
				}); err != nil {
					zap.L().Error("failed to set remote description", zap.Error(err))
				}

			case *api.SignalMessage_Trickle:
				candidate := webrtc.ICECandidateInit{}
				if err := json.Unmarshal([]byte(payload.Trickle), &candidate); err != nil {
					zap.L().Error("failed to unmarshal candidate", zap.Error(err))
					break
				}

				if err := peerConnection.AddICECandidate(candidate); err != nil {
					zap.L().Error("failed to add candidate", zap.Error(err))
				}
			}
		}
	}()

	return c, nil
}

// Transcode sends tl to the server and resolves to the transcoded track the
// server returns. mimeType may be empty for the kind's default output codec.
func (c *TranscoderClient) Transcode(ctx context.Context, tl webrtc.TrackLocal, mimeType string) (*webrtc.TrackRemote, error) {
	if _, err := c.peerConnection.AddTrack(tl); err != nil {
		return nil, err
	}

	response, err := c.client.Transcode(ctx, &api.TranscodeRequest{
		StreamId: tl.StreamID(),
		TrackId:  tl.ID(),
		MimeType: mimeType,
	})
	if err != nil {
		return nil, err
	}

	return c.awaitTrack(ctx, response.TrackId)
}

// resolveTrack hands tr to a pending awaitTrack call, or buffers it if the
// track arrived before the transcode rpc returned its id.
func (c *TranscoderClient) resolveTrack(tr *webrtc.TrackRemote) {
	c.Lock()
	defer c.Unlock()

	if promise, ok := c.promises[tr.ID()]; ok {
		promise <- tr
		delete(c.promises, tr.ID())
	} else {
		c.unmatched[tr.ID()] = tr
	}
}

func (c *TranscoderClient) awaitTrack(ctx context.Context, trackID string) (*webrtc.TrackRemote, error) {
	c.Lock()
	if tr, ok := c.unmatched[trackID]; ok {
		delete(c.unmatched, trackID)
		c.Unlock()
		return tr, nil
	}
	// buffered so resolveTrack never blocks under the lock if the waiter
	// gives up on a cancelled context.
	promise := make(chan *webrtc.TrackRemote, 1)
	c.promises[trackID] = promise
	c.Unlock()

	select {
	case tr := <-promise:
		return tr, nil
	case <-ctx.Done():
		c.Lock()
		delete(c.promises, trackID)
		c.Unlock()
		return nil, ctx.Err()
	}
}

// Close closes the underlying peer connection.
func (c *TranscoderClient) Close() error {
	return c.peerConnection.Close()
}
