package core

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "texelform: ", log.LstdFlags)

// SetLogger directs interaction traces (hover, focus, blur, click) to l.
// Passing nil silences them again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
