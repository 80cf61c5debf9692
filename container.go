package astiremux

import (
	"errors"

	"github.com/asticode/go-astiav"
)

// ErrEndOfStream is returned by an input when there are no more packets to read
var ErrEndOfStream = errors.New("astiremux: end of stream")

// Library represents the container library the remuxer relies on to open inputs and outputs
type Library interface {
	// Allocates an output whose format is guessed from the url
	AllocOutput(url string) (Output, error)
	// Opens an input without probing it
	OpenInput(url string) (Input, error)
}

// Stream describes a stream of a container
type Stream interface {
	Index() int
	MediaType() astiav.MediaType
	TimeBase() astiav.Rational
}

// Packet represents a packet read out of an input
type Packet interface {
	Dts() int64
	Duration() int64
	KeyFrame() bool
	Pts() int64
	SetDts(dts int64)
	SetDuration(duration int64)
	SetPts(pts int64)
	SetStreamIndex(i int)
	StreamIndex() int
	Unref()
}

// Input represents an opened input container
type Input interface {
	Close() error
	Probe() error
	// Returns ErrEndOfStream once the input is exhausted. The packet stays valid until it is unref.
	ReadPacket() (Packet, error)
	// Only valid once the input has been probed
	Streams() []Stream
}

// Output represents an output container
type Output interface {
	Close() error
	// Creates a new output stream out of an input stream with copied codec parameters and a cleared codec tag
	NewStream(from Stream) (Stream, error)
	Open() error
	Streams() []Stream
	WriteHeader() error
	WriteInterleavedPacket(pkt Packet) error
	WriteTrailer() error
}
