package astiremux

// TimestampState keeps track of the last timestamps written so that they keep increasing across input reopenings
type TimestampState struct {
	Dts int64
	Pts int64
}

// Normalize discards the packet's timestamps and derives new ones from the cumulative duration of forwarded packets
func (s *TimestampState) Normalize(pkt Packet) {
	s.Pts += pkt.Duration()
	s.Dts += pkt.Duration()
	pkt.SetPts(s.Pts)
	pkt.SetDts(s.Dts)
}
