package astilibav

import (
	"github.com/asticode/go-astiremux"
)

// Library implements the astiremux.Library interface on top of libav
type Library struct{}

// NewLibrary creates a new libav library
func NewLibrary() *Library {
	return &Library{}
}

// AllocOutput implements the astiremux.Library interface
func (l *Library) AllocOutput(url string) (astiremux.Output, error) {
	o, err := allocOutput(url)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// OpenInput implements the astiremux.Library interface
func (l *Library) OpenInput(url string) (astiremux.Input, error) {
	i, err := openInput(url)
	if err != nil {
		return nil, err
	}
	return i, nil
}
