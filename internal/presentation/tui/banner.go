package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// PrintBanner outputs the startup banner. Piped output stays plain.
func PrintBanner() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("deskpilot")
		return
	}
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`     _           _          _ _       _   `, "#38bdf8"},
		{`  __| | ___  ___| | ___ __ (_) | ___ | |_ `, "#22d3ee"},
		{` / _' |/ _ \/ __| |/ / '_ \| | |/ _ \| __|`, "#2dd4bf"},
		{`| (_| |  __/\__ \   <| |_) | | | (_) | |_ `, "#34d399"},
		{` \__,_|\___||___/_|\_\ .__/|_|_|\___/ \__|`, "#4ade80"},
		{`                     |_|                  `, "#a3e635"},
	}
	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}

// StatusLine renders a result line, green for success and red for failure,
// falling back to plain text off-terminal.
func StatusLine(ok bool, text string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	p := termenv.ColorProfile()
	color := "#f87171"
	if ok {
		color = "#4ade80"
	}
	return termenv.String(text).Foreground(p.Color(color)).String()
}
