package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// Fallback geometry when the size query fails (pipes, odd terminals).
	DefaultRows = 24
	DefaultCols = 80
)

var (
	termGetSize    = term.GetSize
	termIsTerminal = term.IsTerminal
	termMakeRaw    = term.MakeRaw
	termRestore    = term.Restore
)

// Geometry is the terminal size sampled once at startup. Resize events
// are not tracked; the frame keeps its initial dimensions.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal owns the interactive stream pair: buffered key input and
// buffered escape-sequence output.
type Terminal struct {
	input  *os.File
	reader *bufio.Reader
	writer *bufio.Writer
}

// New wraps an input file and output writer. Pass os.Stdin/os.Stdout
// for the real terminal; tests substitute in-memory buffers via NewFrom.
func New(input *os.File, output io.Writer) *Terminal {
	return &Terminal{
		input:  input,
		reader: bufio.NewReader(input),
		writer: bufio.NewWriter(output),
	}
}

// NewFrom builds a Terminal over plain readers and writers. Raw-mode
// entry is unavailable on such a terminal; everything else works.
func NewFrom(input io.Reader, output io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(input),
		writer: bufio.NewWriter(output),
	}
}

// Interactive reports whether the input stream is a real terminal.
func (t *Terminal) Interactive() bool {
	return t.input != nil && termIsTerminal(int(t.input.Fd()))
}

// Size queries the terminal geometry, falling back to 24x80 when the
// query fails. It never returns an error to the caller.
func (t *Terminal) Size() Geometry {
	if t.input != nil {
		if cols, rows, err := termGetSize(int(t.input.Fd())); err == nil && cols > 0 && rows > 0 {
			return Geometry{Rows: rows, Cols: cols}
		}
	}
	return Geometry{Rows: DefaultRows, Cols: DefaultCols}
}

// EnterRaw switches the input stream to raw mode (no line buffering, no
// echo) and returns a restore func that reinstates the prior mode. The
// restore func is idempotent and must run on every exit path.
func (t *Terminal) EnterRaw() (func(), error) {
	if t.input == nil {
		return nil, fmt.Errorf("input is not a terminal")
	}
	fd := int(t.input.Fd())
	prev, err := termMakeRaw(fd)
	if err != nil {
		return nil, err
	}
	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		_ = termRestore(fd, prev)
	}, nil
}

// HideCursor makes the cursor invisible until ShowCursor runs.
func (t *Terminal) HideCursor() {
	t.WriteString("\x1b[?25l")
}

// ShowCursor restores cursor visibility.
func (t *Terminal) ShowCursor() {
	t.WriteString("\x1b[?25h")
}

// ClearScreen wipes the display and homes the cursor.
func (t *Terminal) ClearScreen() {
	t.WriteString("\x1b[2J\x1b[H")
}

func (t *Terminal) WriteString(s string) {
	_, _ = t.writer.WriteString(s)
}

func (t *Terminal) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.writer, format, args...)
}

// Flush pushes buffered output to the terminal.
func (t *Terminal) Flush() {
	_ = t.writer.Flush()
}
