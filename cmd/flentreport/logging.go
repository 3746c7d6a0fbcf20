package main

//
// Diagnostics output
//

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
)

// logHandler implements the log handler required by github.com/apex/log.
// Every line carries an uppercase level tag so that our diagnostics and
// the bracketed output of the harness scripts that invoke this tool
// interleave cleanly in the same terminal.
type logHandler struct {
	// Writer is where we write log lines
	io.Writer
}

var _ log.Handler = &logHandler{}

// HandleLog implements log.Handler
func (h *logHandler) HandleLog(e *log.Entry) error {
	line := fmt.Sprintf("[%s] %s", strings.ToUpper(e.Level.String()), e.Message)
	if len(e.Fields) > 0 {
		line += fmt.Sprintf(" %+v", e.Fields)
	}
	_, err := fmt.Fprintln(h.Writer, line)
	return err
}
