package report

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// NewProgress returns a progress bar sized for total files, or nil when
// stderr is not an interactive terminal. Callers nil-check before use so
// piped and scripted runs stay quiet.
func NewProgress(total int) *progressbar.ProgressBar {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return progressbar.Default(int64(total), "organizing")
}
