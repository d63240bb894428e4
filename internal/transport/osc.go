// Package transport delivers per-hand metric vectors to downstream
// receivers over OSC.
package transport

import (
	"strings"

	"github.com/hypebeast/go-osc/osc"

	"github.com/ayusman/mudra/internal/metric"
)

// Default endpoint: a SuperCollider-style receiver on local loopback.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 57120
)

// Address returns the OSC address for a hand: "/hand/left" or "/hand/right".
func Address(hand metric.Hand) string {
	return "/hand/" + strings.ToLower(string(hand))
}

// OSCSink sends each hand's vector as a single OSC message over UDP.
// Messages carry exactly seven float arguments in canonical metric order.
type OSCSink struct {
	client *osc.Client
}

// NewOSCSink creates a sink targeting host:port.
func NewOSCSink(host string, port int) *OSCSink {
	return &OSCSink{
		client: osc.NewClient(host, port),
	}
}

// Send transmits the vector to the hand's address. OSC float atoms are
// 32-bit, so values are narrowed at this boundary.
func (s *OSCSink) Send(hand metric.Hand, v metric.Vector) error {
	return s.client.Send(message(hand, v))
}

func message(hand metric.Hand, v metric.Vector) *osc.Message {
	msg := osc.NewMessage(Address(hand))
	for _, val := range v {
		msg.Append(float32(val))
	}
	return msg
}
