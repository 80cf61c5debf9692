package astiremux

import (
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
)

func TestPktDumper(t *testing.T) {
	l := newMockedStdLogger()
	d := NewPktDumper(l)
	pkt := &mockedPacket{dts: 1000, duration: 40, key: true, pts: 1080, streamIndex: 1}
	d.Dump("in", pkt, astiav.NewRational(1, 1000))
	d.Dump("MOD", &mockedPacket{dts: astiav.NoPtsValue, pts: 3003, duration: 1001}, astiav.NewRational(1, 30000))
	require.Equal(t, []string{
		"in: pts:1080 pts_time:1.08 dts:1000 dts_time:1 duration:40 duration_time:0.04 stream_index:1 key:true",
		"MOD: pts:3003 pts_time:0.1001 dts:NOPTS dts_time:NOPTS duration:1001 duration_time:0.0333667 stream_index:0 key:false",
	}, l.ss)
	require.Equal(t, &mockedPacket{dts: 1000, duration: 40, key: true, pts: 1080, streamIndex: 1}, pkt)
}

func TestPktDumperDumpStreams(t *testing.T) {
	l := newMockedStdLogger()
	d := NewPktDumper(l)
	d.DumpStreams("input.ts", []Stream{&mockedStream{index: 0, mediaType: astiav.MediaTypeVideo, timeBase: astiav.NewRational(1, 90000)}})
	require.Len(t, l.ss, 2)
	require.Equal(t, "input.ts: 1 stream(s)", l.ss[0])
	require.Contains(t, l.ss[1], "input.ts: stream #0: type:")
	require.Contains(t, l.ss[1], "time_base:1/90000")
}
