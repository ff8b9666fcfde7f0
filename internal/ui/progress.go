package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders download progress on stderr
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewDownloadBar creates a byte progress bar. total is -1 when the size is unknown.
func NewDownloadBar(total int64) *ProgressBar {
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(color.CyanString("Fetching expectations")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionShowBytes(true),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Write advances the bar by len(p) bytes
func (p *ProgressBar) Write(b []byte) (int, error) {
	return p.bar.Write(b)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// DownloadProgress adapts NewDownloadBar to the source progress hook
func DownloadProgress(total int64) io.Writer {
	return NewDownloadBar(total)
}
