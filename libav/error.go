package astilibav

import (
	"errors"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astiremux"
)

// readFrameError maps libav's end of file onto the remuxer's end of stream
func readFrameError(url string, err error) error {
	if errors.Is(err, astiav.ErrEof) {
		return astiremux.ErrEndOfStream
	}
	return fmt.Errorf("astilibav: reading frame of %s failed: %w", url, err)
}
