// Package trend keeps fixed-capacity sample histories for sparklines.
package trend

import (
	"strings"
	"sync"
)

// Buffer is a FIFO history of the most recent samples for one metric.
// Capacity is fixed at construction and never changes. One collector
// pushes, the renderer reads; a small mutex covers the handoff.
type Buffer struct {
	mu       sync.Mutex
	capacity int
	fixed    bool // scale 0-100 instead of observed min/max
	samples  []float64
}

// NewBuffer creates a buffer that scales its sparkline between the
// observed minimum and maximum.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		capacity: capacity,
		samples:  make([]float64, 0, capacity),
	}
}

// NewPercentBuffer creates a buffer rendered on a fixed 0-100 scale,
// for percentage metrics.
func NewPercentBuffer(capacity int) *Buffer {
	b := NewBuffer(capacity)
	b.fixed = true
	return b
}

// Push appends a sample, evicting the oldest when at capacity.
func (b *Buffer) Push(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.samples) == b.capacity {
		copy(b.samples, b.samples[1:])
		b.samples[len(b.samples)-1] = v
		return
	}
	b.samples = append(b.samples, v)
}

// Values returns a copy of the stored samples, oldest first.
func (b *Buffer) Values() []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	cp := make([]float64, len(b.samples))
	copy(cp, b.samples)
	return cp
}

// Len returns the number of stored samples.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samples)
}

var sparkChars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Sparkline renders the newest samples as a row of intensity glyphs,
// left-padded to width with the lowest glyph. Fewer than two samples
// render flat: no range to scale against yet.
func (b *Buffer) Sparkline(width int) string {
	data := b.Values()
	if width < 1 {
		width = 1
	}
	if len(data) < 2 {
		return strings.Repeat(sparkChars[0], width)
	}

	// Take last 'width' points
	if len(data) > width {
		data = data[len(data)-width:]
	}

	min, max := 0.0, 100.0
	if !b.fixed {
		min, max = data[0], data[0]
		for _, v := range data {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if max == min {
			// Flat series: widen the range so it draws mid-scale
			if min >= 10 {
				min -= 10
			} else {
				min = 0
			}
			max += 10
		}
	}

	dataRange := max - min
	if dataRange == 0 {
		dataRange = 1
	}

	var result strings.Builder
	for i := len(data); i < width; i++ {
		result.WriteString(sparkChars[0])
	}
	for _, value := range data {
		normalized := (value - min) / dataRange
		charIndex := int(normalized * float64(len(sparkChars)-1))
		if charIndex >= len(sparkChars) {
			charIndex = len(sparkChars) - 1
		}
		if charIndex < 0 {
			charIndex = 0
		}
		result.WriteString(sparkChars[charIndex])
	}

	return result.String()
}
