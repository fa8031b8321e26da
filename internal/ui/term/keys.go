package term

import "bufio"

// Kind classifies one logical keypress.
type Kind int

const (
	KeyUnknown Kind = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyQuit
	KeyEscape
	KeyCtrlC
)

// Key is a decoded keypress. Byte carries the raw byte for KeyUnknown.
type Key struct {
	Kind Kind
	Byte byte
}

// ReadKey blocks until one logical key is available. A failed read
// (closed stream, not a terminal) surfaces as an error; callers treat
// it as fatal rather than retrying.
func (t *Terminal) ReadKey() (Key, error) {
	return decodeKey(t.reader)
}

// decodeKey reads one raw byte and resolves escape sequences. Arrow
// keys arrive as ESC [ A/B; a lone ESC with no buffered follow-up is a
// bare Escape press, so no timer is needed to disambiguate.
func decodeKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case 0x1b:
		return decodeEscape(r), nil
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case 'q':
		return Key{Kind: KeyQuit}, nil
	case 'j':
		return Key{Kind: KeyDown}, nil
	case 'k':
		return Key{Kind: KeyUp}, nil
	case 0x03:
		return Key{Kind: KeyCtrlC}, nil
	}
	return Key{Kind: KeyUnknown, Byte: b}, nil
}

func decodeEscape(r *bufio.Reader) Key {
	if r.Buffered() == 0 {
		return Key{Kind: KeyEscape}
	}
	next, err := r.ReadByte()
	if err != nil {
		return Key{Kind: KeyEscape}
	}
	if next != '[' {
		return Key{Kind: KeyEscape}
	}

	final, err := r.ReadByte()
	if err != nil {
		return Key{Kind: KeyEscape}
	}
	switch final {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	}
	return Key{Kind: KeyUnknown, Byte: final}
}
