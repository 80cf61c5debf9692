package astiremux

import (
	"strconv"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
)

// PktDumper represents an object capable of dumping packets metadata
type PktDumper struct {
	l astikit.CompleteLogger
}

// NewPktDumper creates a new pkt dumper
func NewPktDumper(l astikit.StdLogger) *PktDumper {
	return &PktDumper{l: astikit.AdaptStdLogger(l)}
}

// Dump logs the packet's metadata, timestamps being expressed in the provided timebase
func (d *PktDumper) Dump(tag string, pkt Packet, timeBase astiav.Rational) {
	d.l.Infof("%s: pts:%s pts_time:%s dts:%s dts_time:%s duration:%s duration_time:%s stream_index:%d key:%t",
		tag,
		tsString(pkt.Pts()), tsTimeString(pkt.Pts(), timeBase),
		tsString(pkt.Dts()), tsTimeString(pkt.Dts(), timeBase),
		tsString(pkt.Duration()), tsTimeString(pkt.Duration(), timeBase),
		pkt.StreamIndex(), pkt.KeyFrame())
}

// DumpStreams logs the streams of a container
func (d *PktDumper) DumpStreams(url string, ss []Stream) {
	d.l.Infof("%s: %d stream(s)", url, len(ss))
	for _, s := range ss {
		d.l.Infof("%s: stream #%d: type:%s time_base:%d/%d", url, s.Index(), s.MediaType(), s.TimeBase().Num(), s.TimeBase().Den())
	}
}

func tsString(ts int64) string {
	if ts == astiav.NoPtsValue {
		return "NOPTS"
	}
	return strconv.FormatInt(ts, 10)
}

func tsTimeString(ts int64, timeBase astiav.Rational) string {
	if ts == astiav.NoPtsValue || timeBase.Den() == 0 {
		return "NOPTS"
	}
	return strconv.FormatFloat(float64(ts)*float64(timeBase.Num())/float64(timeBase.Den()), 'g', 6, 64)
}
