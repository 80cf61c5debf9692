package astilibav

import (
	"github.com/asticode/go-astiav"
)

// Pkt wraps a libav packet so that it can be used by the remuxer
type Pkt struct {
	*astiav.Packet
}

func newPkt() *Pkt {
	return &Pkt{Packet: astiav.AllocPacket()}
}

// KeyFrame implements the astiremux.Packet interface
func (p *Pkt) KeyFrame() bool {
	return p.Flags().Has(astiav.PacketFlagKey)
}
