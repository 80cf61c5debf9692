package astiremux

import (
	"fmt"

	"github.com/asticode/go-astiav"
)

// StreamSlot tells whether an input stream is remuxed and, if so, to which output stream
type StreamSlot struct {
	included    bool
	outputIndex int
}

// ExcludedStream is the slot of an input stream that is not remuxed
var ExcludedStream = StreamSlot{}

// IncludedStream creates the slot of an input stream remuxed to the output stream at index i
func IncludedStream(i int) StreamSlot {
	return StreamSlot{
		included:    true,
		outputIndex: i,
	}
}

// OutputIndex returns the output stream index and whether the stream is included
func (s StreamSlot) OutputIndex() (int, bool) {
	return s.outputIndex, s.included
}

func (s StreamSlot) String() string {
	if !s.included {
		return "excluded"
	}
	return fmt.Sprintf("included(%d)", s.outputIndex)
}

// StreamMapping translates input stream indexes into output stream indexes
type StreamMapping []StreamSlot

// Lookup returns the output stream index of an input stream index. Out of range indexes are excluded.
func (m StreamMapping) Lookup(inputIndex int) (int, bool) {
	if inputIndex < 0 || inputIndex >= len(m) {
		return 0, false
	}
	return m[inputIndex].OutputIndex()
}

// IsRemuxable returns whether packets of this media type are remuxed
func IsRemuxable(t astiav.MediaType) bool {
	switch t {
	case astiav.MediaTypeAudio, astiav.MediaTypeSubtitle, astiav.MediaTypeVideo:
		return true
	}
	return false
}

// MapStreams builds the stream mapping and creates one output stream per remuxable input stream, in input order
func MapStreams(ss []Stream, o Output) (m StreamMapping, err error) {
	m = make(StreamMapping, len(ss))
	var count int
	for i, s := range ss {
		// Only process some media types
		if !IsRemuxable(s.MediaType()) {
			m[i] = ExcludedStream
			continue
		}

		// Clone stream
		if _, err = o.NewStream(s); err != nil {
			err = fmt.Errorf("astiremux: cloning input stream #%d failed: %w", s.Index(), err)
			return
		}

		// Update mapping
		m[i] = IncludedStream(count)
		count++
	}
	return
}
