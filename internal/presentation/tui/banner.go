package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"     _                             _", "#818cf8"},
	{"  __| | _____   _____  ___  ___ ___(_) ___  _ __", "#a78bfa"},
	{" / _` |/ _ \\ \\ / / __|/ _ \\/ __/ __| |/ _ \\| '_ \\", "#c084fc"},
	{"| (_| |  __/\\ V /\\__ \\  __/\\__ \\__ \\ | (_) | | | |", "#e879f9"},
	{" \\__,_|\\___| \\_/ |___/\\___||___/___/_|\\___/|_| |_|", "#f472b6"},
}

// PrintBanner writes the ASCII art banner and version to w.
// Colors are only emitted when w is a terminal that supports them.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
