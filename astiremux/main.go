package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astiremux"
	astilibav "github.com/asticode/go-astiremux/libav"
)

func main() {
	// Create logger
	l := log.New(log.Writer(), log.Prefix(), log.Flags())

	// Create configuration
	c, err := astiremux.NewConfigurationFromArgs(os.Args[1:])
	if err != nil {
		l.Printf("usage: %s input_file output_file", filepath.Base(os.Args[0]))
		l.Fatal(fmt.Errorf("main: creating configuration failed: %w", err))
	}

	// Handle libav logs
	astilibav.HandleLogs(l, astiav.LogLevelInfo)

	// Create remuxer
	r := astiremux.NewRemuxer(astiremux.RemuxerOptions{
		Configuration: c,
		Library:       astilibav.NewLibrary(),
		Logger:        l,
	})

	// Run
	if err = r.Run(); err != nil {
		l.Fatal(fmt.Errorf("main: remuxing %s into %s failed: %w", c.InputURL, c.OutputURL, err))
	}
}
