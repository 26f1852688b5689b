package mocks

import (
	"github.com/mcoot/castlewars/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// IntnCalls records the n passed to every Intn call, i.e. the candidate count
	IntnCalls []int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining.
// Queued results outside [0, n) are clamped so callers never index out of range.
func (r *MockRandom) Intn(n int) int {
	r.IntnCalls = append(r.IntnCalls, n)
	if r.intnIndex >= len(r.IntnResults) || n <= 0 {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if result >= n {
		result = n - 1
	}
	if result < 0 {
		result = 0
	}
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Reset clears all queued results and recorded calls
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.IntnCalls = nil
}
