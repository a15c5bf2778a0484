package metrics

import "math"

// Summary accumulates descriptive statistics over a series one value at a time.
type Summary struct {
	name  string
	count int
	min   float64
	max   float64
	sum   float64
	sumSq float64
}

func NewSummary(name string) *Summary {
	return &Summary{name: name}
}

// Summarize is the one-shot form of NewSummary followed by Observe.
func Summarize(name string, values []float64) *Summary {
	s := NewSummary(name)
	for _, v := range values {
		s.Observe(v)
	}
	return s
}

func (s *Summary) Name() string {
	return s.name
}

func (s *Summary) Observe(v float64) {
	if s.count == 0 || v < s.min {
		s.min = v
	}
	if s.count == 0 || v > s.max {
		s.max = v
	}
	s.sum += v
	s.sumSq += v * v
	s.count++
}

func (s *Summary) Count() int { return s.count }
func (s *Summary) Min() float64 { return s.min }
func (s *Summary) Max() float64 { return s.max }

func (s *Summary) Mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

// RMS is the root mean square, a magnitude measure that ignores sign.
func (s *Summary) RMS() float64 {
	if s.count == 0 {
		return 0
	}
	return math.Sqrt(s.sumSq / float64(s.count))
}

func (s *Summary) Reset() {
	s.count = 0
	s.min = 0
	s.max = 0
	s.sum = 0
	s.sumSq = 0
}
