package render

import (
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/term"
)

// Preview prints the PNG at path inline when out is a terminal (iTerm image
// protocol). It reports whether anything was printed.
func Preview(path string, out *os.File) bool {
	if !IsTerminal(out) {
		return false
	}
	imgcat.CatFile(path, out)
	return true
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
