package transcript

import (
	"fmt"
	"io"

	"chatlog/internal/logger"
)

var log = logger.Named("transcript")

// Options configures a Renderer.
type Options struct {
	// Mode forces a renderer; ModeAuto detects it from the document.
	Mode Mode
	// Warner receives unknown block warnings. Defaults to the transcript logger.
	Warner Warner
}

// Renderer turns a decoded Document into annotated transcript lines.
// It holds no per-document state and may be reused.
type Renderer struct {
	mode Mode
	warn Warner
}

func NewRenderer(opts Options) *Renderer {
	warn := opts.Warner
	if warn == nil {
		warn = log
	}
	return &Renderer{mode: opts.Mode, warn: warn}
}

// Render writes doc to w using the default renderer.
func Render(w io.Writer, doc Document) error {
	return NewRenderer(Options{}).Render(w, doc)
}

// Render writes doc to w line by line. It stops at the first write error or
// StructuralFault; lines already written stay written.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	mode := r.mode
	if mode == ModeAuto {
		mode = DetectMode(doc.Messages)
	}
	lw := &lineWriter{w: w}
	switch mode {
	case ModeThreaded:
		return r.renderThreads(lw, doc.Messages, "", false)
	default:
		return r.renderFlat(lw, doc.Messages)
	}
}

// lineWriter keeps the first write error so renderers can emit freely and
// check once.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}

func (lw *lineWriter) linef(format string, args ...any) {
	lw.line(fmt.Sprintf(format, args...))
}
