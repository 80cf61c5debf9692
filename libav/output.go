package astilibav

import (
	"errors"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
	"github.com/asticode/go-astiremux"
)

// Output represents a libav output
type Output struct {
	c         *astikit.Closer
	ctxFormat *astiav.FormatContext
	ss        []astiremux.Stream
	url       string
}

func allocOutput(url string) (o *Output, err error) {
	// Create output
	o = &Output{
		c:   astikit.NewCloser(),
		url: url,
	}

	// Alloc format context
	if o.ctxFormat, err = astiav.AllocOutputFormatContext(nil, "", url); err != nil {
		err = fmt.Errorf("astilibav: allocating output format context for %s failed: %w", url, err)
		return
	} else if o.ctxFormat == nil {
		err = fmt.Errorf("astilibav: allocating output format context for %s failed: %w", url, errors.New("nil format context"))
		return
	}

	// Make sure the format ctx is properly freed
	o.c.Add(o.ctxFormat.Free)
	return
}

// Close implements the astiremux.Output interface
func (o *Output) Close() error {
	return o.c.Close()
}

// CtxFormat returns the format ctx
func (o *Output) CtxFormat() *astiav.FormatContext {
	return o.ctxFormat
}

// NewStream implements the astiremux.Output interface
func (o *Output) NewStream(from astiremux.Stream) (astiremux.Stream, error) {
	// Assert stream
	i, ok := from.(*Stream)
	if !ok {
		return nil, fmt.Errorf("astilibav: stream %T is not a libav stream", from)
	}

	// Clone stream
	s, err := CloneStream(i.AstiavStream(), o.ctxFormat)
	if err != nil {
		return nil, fmt.Errorf("astilibav: cloning stream failed: %w", err)
	}

	// Store stream
	ss := newStream(s)
	o.ss = append(o.ss, ss)
	return ss, nil
}

// CloneStream clones a stream and adds it to the format ctx
func CloneStream(i *astiav.Stream, ctxFormat *astiav.FormatContext) (o *astiav.Stream, err error) {
	// Add stream
	if o = ctxFormat.NewStream(nil); o == nil {
		err = errors.New("astilibav: allocating output stream failed")
		return
	}

	// Copy codec parameters
	if err = i.CodecParameters().Copy(o.CodecParameters()); err != nil {
		err = fmt.Errorf("astilibav: copying codec parameters failed: %w", err)
		return
	}

	// Reset codec tag as shown in https://github.com/FFmpeg/FFmpeg/blob/n4.1.1/doc/examples/remuxing.c#L122
	o.CodecParameters().SetCodecTag(0)
	return
}

// Open implements the astiremux.Output interface
func (o *Output) Open() (err error) {
	// The format handles its own io
	if o.ctxFormat.OutputFormat().Flags().Has(astiav.IOFormatFlagNofile) {
		return
	}

	// Open io context
	var ctxIO *astiav.IOContext
	if ctxIO, err = astiav.OpenIOContext(o.url, astiav.NewIOContextFlags(astiav.IOContextFlagWrite), nil, nil); err != nil {
		err = fmt.Errorf("astilibav: opening io context for %s failed: %w", o.url, err)
		return
	}

	// Make sure the io ctx is properly closed
	o.c.AddWithError(func() error {
		if err := ctxIO.Close(); err != nil {
			return fmt.Errorf("astilibav: closing io context for %s failed: %w", o.url, err)
		}
		return nil
	})

	// Update pb
	o.ctxFormat.SetPb(ctxIO)
	return
}

// Streams implements the astiremux.Output interface
func (o *Output) Streams() []astiremux.Stream {
	return o.ss
}

// WriteHeader implements the astiremux.Output interface
func (o *Output) WriteHeader() error {
	if err := o.ctxFormat.WriteHeader(nil); err != nil {
		return fmt.Errorf("astilibav: writing header of %s failed: %w", o.url, err)
	}
	return nil
}

// WriteInterleavedPacket implements the astiremux.Output interface
func (o *Output) WriteInterleavedPacket(p astiremux.Packet) error {
	// Assert packet
	pkt, ok := p.(*Pkt)
	if !ok {
		return fmt.Errorf("astilibav: packet %T is not a libav packet", p)
	}

	// Write
	if err := o.ctxFormat.WriteInterleavedFrame(pkt.Packet); err != nil {
		return fmt.Errorf("astilibav: writing interleaved frame to %s failed: %w", o.url, err)
	}
	return nil
}

// WriteTrailer implements the astiremux.Output interface
func (o *Output) WriteTrailer() error {
	if err := o.ctxFormat.WriteTrailer(); err != nil {
		return fmt.Errorf("astilibav: writing trailer of %s failed: %w", o.url, err)
	}
	return nil
}
