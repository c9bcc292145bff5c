package display

import (
	"fmt"
	"os"

	"gifnorm/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Cyan != "" {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, `  ____ _  __ _   _
 / ___(_)/ _| \ | | ___  _ __ _ __ ___
| |  _| | |_|  \| |/ _ \| '__| '_ `+"`"+` _ \
| |_| | |  _| |\  | (_) | |  | | | | | |
 \____|_|_| |_| \_|\___/|_|  |_| |_| |_|
`)
	if term.Cyan != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
