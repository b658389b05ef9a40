package orrery

import (
	"fmt"
	"os"
	"time"
)

// debugStats collects per-frame timings and counts. Only populated when
// debug mode is on; logging every frame is the point, so it goes straight
// to stderr without buffering.
type debugStats struct {
	updateTime  time.Duration
	projectTime time.Duration
	submitTime  time.Duration
	drawCalls   int
	entities    int
}

func (s *Scene) debugLog() {
	fmt.Fprintf(os.Stderr, "[orrery] tick=%d update=%v project=%v submit=%v calls=%d entities=%d\n",
		s.tick, s.stats.updateTime, s.stats.projectTime, s.stats.submitTime,
		s.stats.drawCalls, s.stats.entities)
}
