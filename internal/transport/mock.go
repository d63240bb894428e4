package transport

import "github.com/ayusman/mudra/internal/metric"

// Emission is one recorded Send call.
type Emission struct {
	Hand   metric.Hand
	Vector metric.Vector
}

// MockSink records emitted vectors for tests.
type MockSink struct {
	emissions []Emission
	err       error
}

// NewMockSink creates a new MockSink instance.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// SetError sets the error that will be returned by Send.
func (m *MockSink) SetError(err error) {
	m.err = err
}

// Send records the emission or returns the configured error.
func (m *MockSink) Send(hand metric.Hand, v metric.Vector) error {
	if m.err != nil {
		return m.err
	}
	m.emissions = append(m.emissions, Emission{Hand: hand, Vector: v})
	return nil
}

// Emissions returns all recorded Send calls in order.
func (m *MockSink) Emissions() []Emission {
	return m.emissions
}

// Reset discards all recorded emissions.
func (m *MockSink) Reset() {
	m.emissions = nil
}
