package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phanxgames/orrery"
)

func main() {
	var (
		title  = flag.String("title", "ORRERY", "window title and landing headline")
		width  = flag.Int("width", 1280, "initial window width")
		height = flag.Int("height", 720, "initial window height")
		fps    = flag.Bool("fps", false, "show the FPS/TPS counter")
		debug  = flag.Bool("debug", false, "log per-frame timing stats to stderr")
	)
	flag.Parse()

	err := orrery.Run(orrery.RunConfig{
		Title:   *title,
		Width:   *width,
		Height:  *height,
		ShowFPS: *fps,
		Debug:   *debug,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "orrery:", err)
		os.Exit(1)
	}
}
