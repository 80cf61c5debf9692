package astilibav

import (
	"errors"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
	"github.com/asticode/go-astiremux"
)

// Input represents an opened libav input
type Input struct {
	c         *astikit.Closer
	ctxFormat *astiav.FormatContext
	pkt       *Pkt
	ss        []astiremux.Stream
	url       string
}

func openInput(url string) (i *Input, err error) {
	// Create input
	i = &Input{
		c:   astikit.NewCloser(),
		url: url,
	}

	// Make sure to close everything in case of error
	defer func() {
		if err != nil {
			i.c.Close()
		}
	}()

	// Alloc format context
	if i.ctxFormat = astiav.AllocFormatContext(); i.ctxFormat == nil {
		err = errors.New("astilibav: allocating format context failed")
		return
	}
	i.c.Add(i.ctxFormat.Free)

	// Open input
	if err = i.ctxFormat.OpenInput(url, nil, nil); err != nil {
		err = fmt.Errorf("astilibav: opening input %s failed: %w", url, err)
		return
	}
	i.c.Add(i.ctxFormat.CloseInput)

	// Alloc pkt
	i.pkt = newPkt()
	i.c.Add(i.pkt.Free)
	return
}

// Close implements the astiremux.Input interface
func (i *Input) Close() error {
	return i.c.Close()
}

// CtxFormat returns the format ctx
func (i *Input) CtxFormat() *astiav.FormatContext {
	return i.ctxFormat
}

// Probe implements the astiremux.Input interface
func (i *Input) Probe() (err error) {
	// Retrieve stream information
	if err = i.ctxFormat.FindStreamInfo(nil); err != nil {
		err = fmt.Errorf("astilibav: finding stream info of %s failed: %w", i.url, err)
		return
	}

	// Index streams
	i.ss = []astiremux.Stream{}
	for _, s := range i.ctxFormat.Streams() {
		i.ss = append(i.ss, newStream(s))
	}
	return
}

// ReadPacket implements the astiremux.Input interface
func (i *Input) ReadPacket() (astiremux.Packet, error) {
	if err := i.ctxFormat.ReadFrame(i.pkt.Packet); err != nil {
		return nil, readFrameError(i.url, err)
	}
	return i.pkt, nil
}

// Streams implements the astiremux.Input interface
func (i *Input) Streams() []astiremux.Stream {
	return i.ss
}
