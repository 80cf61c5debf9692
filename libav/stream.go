package astilibav

import (
	"github.com/asticode/go-astiav"
)

// Stream wraps a libav stream so that it can be used by the remuxer
type Stream struct {
	s *astiav.Stream
}

func newStream(s *astiav.Stream) *Stream {
	return &Stream{s: s}
}

// AstiavStream returns the underlying libav stream
func (s *Stream) AstiavStream() *astiav.Stream {
	return s.s
}

// Index implements the astiremux.Stream interface
func (s *Stream) Index() int {
	return s.s.Index()
}

// MediaType implements the astiremux.Stream interface
func (s *Stream) MediaType() astiav.MediaType {
	return s.s.CodecParameters().MediaType()
}

// TimeBase implements the astiremux.Stream interface
func (s *Stream) TimeBase() astiav.Rational {
	return s.s.TimeBase()
}
