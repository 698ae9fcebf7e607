package display

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

// NewThinkingSpinner returns an indeterminate spinner shown while a query is
// being dispatched.
func NewThinkingSpinner() *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("thinking"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// NewPlanProgress returns a determinate bar for a plan of the given size
func NewPlanProgress(totalTools int) *progressbar.ProgressBar {
	return progressbar.NewOptions(totalTools,
		progressbar.OptionSetDescription("executing plan"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
