// Package logging is the package-level structured logging surface shared
// by task and syntax. Grounded on the teacher's eventloop/logging.go
// package-level SetStructuredLogger/getGlobalLogger convention: logging is
// an infrastructure cross-cutting concern, so a single global logger
// avoids threading a logger parameter through every constructor. Unlike
// the teacher, the concrete logger is a real github.com/joeycumines/logiface
// Logger rather than a hand-rolled interface, since logiface is a wired
// ecosystem dependency here.
package logging

import (
	"log/slog"
	"os"
	"sync"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"
)

var global struct {
	sync.RWMutex
	logger *logiface.Logger[*islog.Event]
}

func init() {
	global.logger = logiface.New[*islog.Event](islog.NewLogger(
		slog.NewTextHandler(os.Stderr, nil),
		islog.WithLevel(logiface.LevelInformational),
	))
}

// SetLogger replaces the package-level logger. Safe for concurrent use;
// callers typically do this once during process startup.
func SetLogger(l *logiface.Logger[*islog.Event]) {
	global.Lock()
	defer global.Unlock()
	global.logger = l
}

// Logger returns the current package-level logger.
func Logger() *logiface.Logger[*islog.Event] {
	global.RLock()
	defer global.RUnlock()
	return global.logger
}
