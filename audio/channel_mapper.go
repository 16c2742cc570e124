// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMapper converts interleaved audio between channel layouts.
//
// Downmixing to mono averages all channels, mono sources are copied to
// every output channel, and any other layout keeps the leading channels,
// wrapping around when the output has more channels than the source.
type ChannelMapper struct {
	src      Source
	channels int
	tmp      []float32
}

func NewChannelMapper(src Source, channels int) *ChannelMapper {
	return &ChannelMapper{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

// NewMonoMixer downmixes src to a single channel.
func NewMonoMixer(src Source) *ChannelMapper {
	return NewChannelMapper(src, 1)
}

func (m *ChannelMapper) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMapper) Channels() int   { return m.channels }
func (m *ChannelMapper) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMapper) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *ChannelMapper) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%m.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	in := m.src.Channels()
	if in == m.channels {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / m.channels
	need := frames * in
	if cap(m.tmp) < need {
		m.tmp = make([]float32, max(need, 8192))
	}

	n, err := m.src.ReadSamples(m.tmp[:need])
	got := n / in
	if got == 0 {
		return 0, err
	}

	switch {
	case m.channels == 1:
		inv := 1 / float32(in)
		for f := range got {
			var sum float32
			for _, x := range m.tmp[f*in : (f+1)*in] {
				sum += x
			}
			dst[f] = sum * inv
		}
	case in == 1:
		for f := range got {
			x := m.tmp[f]
			for c := range m.channels {
				dst[f*m.channels+c] = x
			}
		}
	default:
		for f := range got {
			frame := m.tmp[f*in : (f+1)*in]
			for c := range m.channels {
				dst[f*m.channels+c] = frame[c%in]
			}
		}
	}

	return got * m.channels, err
}
