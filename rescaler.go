package astiremux

import "github.com/asticode/go-astiav"

var rescaleTimestampRounding = astiav.RoundingNearInf | astiav.RoundingPassMinmax

// Rescale converts the packet's timestamps from src to dst timebase the way av_packet_rescale_ts does
func Rescale(pkt Packet, src, dst astiav.Rational) {
	// Nothing to do
	if src.Num() == dst.Num() && src.Den() == dst.Den() {
		return
	}

	// Rescale timestamps
	pkt.SetPts(RescaleTimestamp(pkt.Pts(), src, dst))
	pkt.SetDts(RescaleTimestamp(pkt.Dts(), src, dst))

	// Rescale duration
	if d := pkt.Duration(); d > 0 {
		pkt.SetDuration(astiav.RescaleQ(d, src, dst))
	}
}

// RescaleTimestamp rescales a pts or a dts. Unset timestamps are left untouched.
func RescaleTimestamp(ts int64, src, dst astiav.Rational) int64 {
	return astiav.RescaleQRnd(ts, src, dst, rescaleTimestampRounding)
}
