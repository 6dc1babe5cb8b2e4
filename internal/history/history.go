// Package history keeps an in-memory circular buffer of recent channel
// values, with a running floor and peak over everything ever pushed,
// feeding the live sparklines. Nothing here is ever persisted.
package history

import (
	"math"
	"time"
)

// Point is a single data point in a channel's history.
type Point struct {
	Value float64
	Time  time.Time
}

// Series holds the recent points for one channel in a fixed-capacity
// circular buffer. Floor and Peak cover the full push history, not just
// the retained window.
type Series struct {
	buf   []Point
	head  int // index of the oldest retained point
	count int

	Floor float64
	Peak  float64
}

// NewSeries creates a series retaining up to capacity points.
func NewSeries(capacity int) *Series {
	if capacity < 1 {
		capacity = 1
	}
	return &Series{
		buf:   make([]Point, capacity),
		Floor: math.MaxFloat64,
		Peak:  -math.MaxFloat64,
	}
}

// Push adds a value, overwriting the oldest point once at capacity.
func (s *Series) Push(v float64, t time.Time) {
	s.buf[(s.head+s.count)%len(s.buf)] = Point{Value: v, Time: t}
	if s.count < len(s.buf) {
		s.count++
	} else {
		s.head = (s.head + 1) % len(s.buf)
	}

	if v < s.Floor {
		s.Floor = v
	}
	if v > s.Peak {
		s.Peak = v
	}
}

// Len returns how many points are retained.
func (s *Series) Len() int { return s.count }

// Last returns the most recent value, or 0 if empty.
func (s *Series) Last() float64 {
	if s.count == 0 {
		return 0
	}
	return s.buf[(s.head+s.count-1)%len(s.buf)].Value
}

// Avg returns the average over the retained points.
func (s *Series) Avg() float64 {
	if s.count == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < s.count; i++ {
		sum += s.buf[(s.head+i)%len(s.buf)].Value
	}
	return sum / float64(s.count)
}

// LastN returns the most recent n points in chronological order.
func (s *Series) LastN(n int) []Point {
	if n <= 0 || s.count == 0 {
		return nil
	}
	if n > s.count {
		n = s.count
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = s.buf[(s.head+s.count-n+i)%len(s.buf)]
	}
	return out
}
