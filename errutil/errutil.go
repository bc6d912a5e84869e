package errutil

import (
	"fmt"
	"os"
	"sync/atomic"
)

var debug atomic.Bool

func init() {
	debug.Store(os.Getenv("VEB_DEBUG") == "1")
}

// Debug reports whether debug checks are enabled.
func Debug() bool {
	return debug.Load()
}

// SetDebug toggles debug checks and returns the previous setting.
func SetDebug(on bool) bool {
	return debug.Swap(on)
}

func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("FATAL: %v", err))
}

func Bug(format string, msg ...any) {
	if debug.Load() {
		panic(fmt.Sprintf(format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if cond && debug.Load() {
		Bug(format, msg...)
	}
}
