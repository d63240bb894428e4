package transport

import (
	"errors"
	"testing"

	"github.com/ayusman/mudra/internal/metric"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		hand metric.Hand
		want string
	}{
		{metric.Left, "/hand/left"},
		{metric.Right, "/hand/right"},
	}

	for _, tt := range tests {
		if got := Address(tt.hand); got != tt.want {
			t.Errorf("Address(%s) = %q, want %q", tt.hand, got, tt.want)
		}
	}
}

func TestMessage_SevenFloatArguments(t *testing.T) {
	v := metric.Vector{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	msg := message(metric.Left, v)

	if msg.Address != "/hand/left" {
		t.Errorf("message address = %q, want /hand/left", msg.Address)
	}
	if len(msg.Arguments) != metric.NumMetrics {
		t.Fatalf("message has %d arguments, want %d", len(msg.Arguments), metric.NumMetrics)
	}

	for i, arg := range msg.Arguments {
		f, ok := arg.(float32)
		if !ok {
			t.Fatalf("argument %d is %T, want float32", i, arg)
		}
		if f != float32(v[i]) {
			t.Errorf("argument %d = %f, want %f", i, f, float32(v[i]))
		}
	}
}

func TestMockSink_RecordsInOrder(t *testing.T) {
	sink := NewMockSink()

	if err := sink.Send(metric.Left, metric.Vector{1}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if err := sink.Send(metric.Right, metric.Vector{0, 1}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	emissions := sink.Emissions()
	if len(emissions) != 2 {
		t.Fatalf("recorded %d emissions, want 2", len(emissions))
	}
	if emissions[0].Hand != metric.Left || emissions[1].Hand != metric.Right {
		t.Errorf("emission order = %v, %v; want Left, Right", emissions[0].Hand, emissions[1].Hand)
	}

	sink.Reset()
	if len(sink.Emissions()) != 0 {
		t.Error("Reset did not discard emissions")
	}
}

func TestMockSink_Error(t *testing.T) {
	sink := NewMockSink()
	wantErr := errors.New("network down")
	sink.SetError(wantErr)

	if err := sink.Send(metric.Left, metric.Vector{}); !errors.Is(err, wantErr) {
		t.Errorf("Send() error = %v, want %v", err, wantErr)
	}
	if len(sink.Emissions()) != 0 {
		t.Error("failed send should not be recorded")
	}
}
