package apps

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Application represents a launchable desktop entry
type Application struct {
	Name        string // Display name (Name= or first Name[locale]=)
	Description string // Comment=, falling back to GenericName=
	Exec        string // Raw Exec= line, field codes included
	Terminal    bool   // Terminal=true, must be run inside a terminal emulator
	RunCount    int    // Times launched, supplied by the caller
	Icon        string // Icon= name or path
	Path        string // Full path to the .desktop file
}

// CommandLine returns the Exec line as a shell command with freedesktop field codes removed.
// Arguments are split by the Desktop Entry quoting rules, so quoted whitespace survives,
// and "%%" is unescaped to a literal "%". A line with unbalanced quotes falls back to
// whitespace splitting.
func (a Application) CommandLine() string {
	args, err := shellquote.Split(a.Exec)
	if err != nil {
		args = strings.Fields(a.Exec)
	}

	cleaned := make([]string, 0, len(args))
	for _, arg := range args {
		expanded, hadCode := stripFieldCodes(arg)
		if hadCode && expanded == "" {
			continue
		}
		cleaned = append(cleaned, expanded)
	}
	return shellquote.Join(cleaned...)
}

// stripFieldCodes removes field codes like %u or %F anywhere in arg and unescapes "%%".
// hadCode reports whether anything was removed.
func stripFieldCodes(arg string) (string, bool) {
	if !strings.Contains(arg, "%") {
		return arg, false
	}

	var (
		b       strings.Builder
		hadCode bool
	)
	for i := 0; i < len(arg); i++ {
		if arg[i] != '%' || i+1 == len(arg) {
			b.WriteByte(arg[i])
			continue
		}
		switch next := arg[i+1]; {
		case next == '%':
			b.WriteByte('%')
			i++
		case strings.IndexByte(fieldCodes, next) >= 0:
			hadCode = true
			i++
		default:
			b.WriteByte('%')
		}
	}
	return b.String(), hadCode
}

// fieldCodes are the letters that may follow % in an Exec value
const fieldCodes = "fFuUdDnNickvm"

// WithRunCounts returns a copy of items with RunCount filled from counts, keyed by name.
// Items absent from counts keep their existing value.
func WithRunCounts(items []Application, counts map[string]int) []Application {
	out := make([]Application, len(items))
	copy(out, items)
	for i := range out {
		if n, ok := counts[out[i].Name]; ok && n >= 0 {
			out[i].RunCount = n
		}
	}
	return out
}
