package astiremux

import (
	"errors"
	"fmt"

	"github.com/asticode/go-astikit"
)

// MaxIterations is the number of times the input is read from start to end
const MaxIterations = 10

// Remuxer copies the packets of an input into an output, reading the input MaxIterations times
// and rebuilding timestamps so that the output timeline is continuous
type Remuxer struct {
	c     Configuration
	d     *PktDumper
	l     astikit.CompleteLogger
	lib   Library
	m     StreamMapping
	o     Output
	stats Stats
	ts    TimestampState
}

// RemuxerOptions represents remuxer options
type RemuxerOptions struct {
	Configuration Configuration
	Library       Library
	Logger        astikit.StdLogger
}

// NewRemuxer creates a new remuxer
func NewRemuxer(o RemuxerOptions) *Remuxer {
	return &Remuxer{
		c:   o.Configuration,
		d:   NewPktDumper(o.Logger),
		l:   astikit.AdaptStdLogger(o.Logger),
		lib: o.Library,
	}
}

// Stats returns the counters of the last run
func (r *Remuxer) Stats() Stats {
	return r.stats
}

// TimestampState returns the timestamps of the last forwarded packet
func (r *Remuxer) TimestampState() TimestampState {
	return r.ts
}

// Run remuxes the input into the output.
// It returns nil if the last iteration reached the end of the input and the last iteration's
// error otherwise. Errors preventing the remuxing from going on are returned right away.
func (r *Remuxer) Run() (err error) {
	// Reset
	r.m = nil
	r.stats = Stats{}
	r.ts = TimestampState{}

	// Alloc output
	if r.o, err = r.lib.AllocOutput(r.c.OutputURL); err != nil {
		err = fmt.Errorf("astiremux: allocating output %s failed: %w", r.c.OutputURL, err)
		return
	}

	// We use an astikit.Closer to make sure the output is released on every path
	c := astikit.NewCloser()
	defer func() {
		if errC := c.Close(); errC != nil && err == nil {
			err = fmt.Errorf("astiremux: closing output %s failed: %w", r.c.OutputURL, errC)
		}
	}()
	c.AddWithError(r.o.Close)

	// Loop
	var errIteration error
	for r.stats.Iterations < MaxIterations {
		r.stats.Iterations++

		// Iterate
		var fatal bool
		if fatal, errIteration = r.iterate(); fatal {
			err = errIteration
			return
		}
	}

	// Write trailer
	if r.stats.HeaderWritten {
		if errT := r.o.WriteTrailer(); errT != nil {
			if errIteration == nil {
				errIteration = fmt.Errorf("astiremux: writing trailer of %s failed: %w", r.c.OutputURL, errT)
			}
		} else {
			r.stats.TrailerWritten = true
		}
	}

	// Log stats
	r.stats.log(r.l)

	// Only the last iteration matters
	err = errIteration
	return
}

func (r *Remuxer) iterate() (fatal bool, err error) {
	// Open input
	var i Input
	if i, err = r.lib.OpenInput(r.c.InputURL); err != nil {
		return true, fmt.Errorf("astiremux: opening input %s failed: %w", r.c.InputURL, err)
	}

	// Make sure to close input
	defer func() {
		if errC := i.Close(); errC != nil {
			r.l.Errorf("astiremux: closing input %s failed: %s", r.c.InputURL, errC)
		}
	}()

	// Probe
	if err = i.Probe(); err != nil {
		return true, fmt.Errorf("astiremux: probing input %s failed: %w", r.c.InputURL, err)
	}
	r.d.DumpStreams(r.c.InputURL, i.Streams())

	// Only the first time
	if r.m == nil {
		if err = r.initOutput(i); err != nil {
			return true, err
		}
	}

	// Loop through packets
	for {
		if err = r.remuxPkt(i); err != nil {
			if errors.Is(err, ErrEndOfStream) {
				err = nil
			}
			return
		}
	}
}

func (r *Remuxer) initOutput(i Input) (err error) {
	// Map streams
	var m StreamMapping
	if m, err = MapStreams(i.Streams(), r.o); err != nil {
		err = fmt.Errorf("astiremux: mapping streams failed: %w", err)
		return
	}
	r.m = m
	r.d.DumpStreams(r.c.OutputURL, r.o.Streams())

	// Open output
	if err = r.o.Open(); err != nil {
		err = fmt.Errorf("astiremux: opening output %s failed: %w", r.c.OutputURL, err)
		return
	}

	// Write header
	if err = r.o.WriteHeader(); err != nil {
		err = fmt.Errorf("astiremux: writing header of %s failed: %w", r.c.OutputURL, err)
		return
	}
	r.stats.HeaderWritten = true
	return
}

func (r *Remuxer) remuxPkt(i Input) (err error) {
	// Read packet
	var pkt Packet
	if pkt, err = i.ReadPacket(); err != nil {
		if !errors.Is(err, ErrEndOfStream) {
			err = fmt.Errorf("astiremux: reading packet of %s failed: %w", r.c.InputURL, err)
		}
		return
	}

	// Make sure the packet is unref
	defer pkt.Unref()

	// Increment read
	r.stats.PktsRead++

	// Get streams
	oIdx, ok := r.m.Lookup(pkt.StreamIndex())
	iss, oss := i.Streams(), r.o.Streams()
	if !ok || pkt.StreamIndex() >= len(iss) || oIdx >= len(oss) {
		r.stats.PktsSkipped++
		return
	}
	is, ost := iss[pkt.StreamIndex()], oss[oIdx]

	// Restamp
	r.d.Dump("in", pkt, is.TimeBase())
	r.ts.Normalize(pkt)
	r.d.Dump("MOD", pkt, is.TimeBase())

	// Rescale
	Rescale(pkt, is.TimeBase(), ost.TimeBase())
	pkt.SetStreamIndex(oIdx)
	r.d.Dump("out", pkt, ost.TimeBase())

	// Write
	if err = r.o.WriteInterleavedPacket(pkt); err != nil {
		r.stats.WriteFailures++
		err = fmt.Errorf("astiremux: writing packet to %s failed: %w", r.c.OutputURL, err)
		r.l.Error(err)
		return
	}
	r.stats.PktsForwarded++
	return
}
