package experiments

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// progressOutput receives the progress bar; tests silence it.
var progressOutput io.Writer = os.Stderr

type bar progressbar.ProgressBar

func newBar(total int, description string) *bar {
	return (*bar)(progressbar.NewOptions(total,
		progressbar.OptionSetWriter(progressOutput),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *bar) Add(i int) {
	(*progressbar.ProgressBar)(b).Add(i)
}

func (b *bar) Close() {
	(*progressbar.ProgressBar)(b).Finish()
	(*progressbar.ProgressBar)(b).Close()
}
