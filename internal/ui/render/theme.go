package render

// Theme holds the ANSI style fragments for each frame element. Styles
// wrap cell content only; they never occupy columns, so layout math
// works on unstyled text.
type Theme struct {
	Border   string
	Title    string
	Empty    string
	Name     string
	Detail   string
	Selected string
	Info     string
	Hint     string
	Reset    string

	// Banner styles used outside the frame during activation.
	Banner  string
	Target  string
	Success string
	Warn    string
	Error   string
	Prompt  string
}

// DefaultTheme returns the standard color scheme: cyan frame, yellow
// title, green names, inverse blue selection.
func DefaultTheme() Theme {
	return Theme{
		Border:   "\x1b[36m",
		Title:    "\x1b[1;33m",
		Empty:    "\x1b[31m",
		Name:     "\x1b[32m",
		Detail:   "\x1b[37m",
		Selected: "\x1b[1;37;44m",
		Info:     "\x1b[33m",
		Hint:     "\x1b[35m",
		Reset:    "\x1b[0m",

		Banner:  "\x1b[1;36m",
		Target:  "\x1b[1;32m",
		Success: "\x1b[1;32m",
		Warn:    "\x1b[1;33m",
		Error:   "\x1b[1;31m",
		Prompt:  "\x1b[35m",
	}
}

// PlainTheme disables all styling; every fragment is empty. Tests use
// it to assert layout without stripping escapes.
func PlainTheme() Theme {
	return Theme{}
}
