package client

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
)

// formatter applies semantic coloring to text. Without color the prefix
// and suffix stand in for it.
type formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	successText = formatter{color.New(color.FgGreen), "", ""}
	warningText = formatter{color.New(color.FgYellow), "", ""}
	errorText   = formatter{color.New(color.FgRed), "", ""}
	accentText  = formatter{color.New(color.FgCyan), "", ""}
	secretText  = formatter{color.New(color.FgMagenta, color.Bold), "", ""}
	mutedText   = formatter{color.New(color.Faint), "", ""}
)

// printer is the command line's [app.Notifier]. Outcomes and listings go to
// out; details of failures only appear in the log.
type printer struct {
	out io.Writer
}

func newPrinter(out io.Writer) *printer {
	return &printer{out: out}
}

func (p *printer) Notify(o app.Outcome) {
	switch o.Kind {
	case app.OutcomeSuccess:
		fmt.Fprintln(p.out, successText.Sprint("✓ "+o.Message))
	case app.OutcomeWarning:
		fmt.Fprintln(p.out, warningText.Sprint("! "+o.Message))
	default:
		fmt.Fprintln(p.out, errorText.Sprint("✗ "+o.Message))
	}
}

// Printf writes a plain line.
func (p *printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}
