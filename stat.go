package astiremux

import (
	"github.com/asticode/go-astikit"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats represents the counters of a remuxer run
type Stats struct {
	Iterations     int
	PktsForwarded  uint64
	PktsRead       uint64
	PktsSkipped    uint64
	WriteFailures  uint64
	HeaderWritten  bool
	TrailerWritten bool
}

type statPSUtilValue struct {
	cpu         float64
	memoryTotal uint64
	memoryUsed  uint64
}

func newStatPSUtilValue() (v statPSUtilValue, ok bool) {
	if vs, err := cpu.Percent(0, false); err == nil && len(vs) > 0 {
		v.cpu = vs[0]
		ok = true
	}
	if vv, err := mem.VirtualMemory(); err == nil {
		v.memoryTotal = vv.Total
		v.memoryUsed = vv.Used
		ok = true
	}
	return
}

func (s Stats) log(l astikit.CompleteLogger) {
	l.Infof("astiremux: %d iteration(s), %d pkt(s) read, %d forwarded, %d skipped, %d write failure(s)", s.Iterations, s.PktsRead, s.PktsForwarded, s.PktsSkipped, s.WriteFailures)
	if v, ok := newStatPSUtilValue(); ok {
		l.Debugf("astiremux: host cpu %.2f%%, memory %d/%d bytes", v.cpu, v.memoryUsed, v.memoryTotal)
	}
}
