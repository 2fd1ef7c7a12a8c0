package view

import (
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TclScheduler runs callbacks on the Tk event loop.
type TclScheduler struct{}

func (TclScheduler) After(d time.Duration, fn func()) string { return TclAfter(d, fn) }

func (TclScheduler) Cancel(id string) {
	if id != "" {
		TclAfterCancel(id)
	}
}
