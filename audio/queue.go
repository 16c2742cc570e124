// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

// Queue is a Source that plays pushed sources back to back. It reports
// io.EOF whenever it runs dry. Pushes and reads may happen on different
// goroutines.
type Queue struct {
	sampleRate int
	channels   int

	mu     sync.Mutex
	items  []Source
	closed bool
}

func NewQueue(sampleRate, channels int) *Queue {
	return &Queue{
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (q *Queue) SampleRate() int { return q.sampleRate }
func (q *Queue) Channels() int   { return q.channels }
func (q *Queue) BufSize() int    { return 4096 }

// Push appends src. Its format must match the queue.
func (q *Queue) Push(src Source) error {
	if src.SampleRate() != q.sampleRate || src.Channels() != q.channels {
		return fmt.Errorf("%w: queue is %dHz/%dch, source is %dHz/%dch",
			ErrFormatMismatch, q.sampleRate, q.channels, src.SampleRate(), src.Channels())
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, src)

	return nil
}

// Len returns the number of sources not yet drained.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

func (q *Queue) ReadSamples(dst []float32) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) > 0 {
		head := q.items[0]

		n, err := head.ReadSamples(dst)
		if err == io.EOF {
			head.Close()
			q.items[0] = nil
			q.items = q.items[1:]
			if n > 0 {
				return n, nil
			}
			continue
		}
		if err != nil {
			return n, fmt.Errorf("%w", err)
		}

		return n, nil
	}

	return 0, io.EOF
}

// Close closes every pending source. Later pushes fail with ErrQueueClosed.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	var first error
	for _, src := range q.items {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	q.items = nil
	q.closed = true

	return first
}
