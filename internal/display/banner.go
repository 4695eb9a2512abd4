package display

import (
	"fmt"
	"os"

	"github.com/backmassage/trackmaster/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, ` _____               _    __  __           _
|_   _| __ __ _  ___| | _|  \/  | __ _ ___| |_ ___ _ __
  | || '__/ _`+"`"+` |/ __| |/ / |\/| |/ _`+"`"+` / __| __/ _ \ '__|
  | || | | (_| | (__|   <| |  | | (_| \__ \ ||  __/ |
  |_||_|  \__,_|\___|_|\_\_|  |_|\__,_|___/\__\___|_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
