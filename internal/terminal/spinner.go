package terminal

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerLine is the default spinner
var SpinnerLine = []string{"-", "\\", "|", "/"}

const defaultSpinnerInterval = 200 * time.Millisecond

// SpinnerOptions represents the spinner options
type SpinnerOptions struct {
	Icon     []string
	Duration time.Duration
}

// Spinner is a spinner
type Spinner interface {
	Start()
	Stop()
	SetMessage(message string)
}

// Spin shows the message with a spinner while fn runs
func Spin(ui UI, message string, fn func() error) error {
	s := ui.Spinner(message, SpinnerOptions{})
	s.Start()
	err := fn()
	s.Stop()
	return err
}

type uiSpinner struct {
	s *spinner.Spinner
}

func newUISpinner(message string, w io.Writer, opts SpinnerOptions) *uiSpinner {
	if len(opts.Icon) == 0 {
		opts.Icon = SpinnerLine
	}
	if opts.Duration == 0 {
		opts.Duration = defaultSpinnerInterval
	}

	s := &uiSpinner{spinner.New(opts.Icon, opts.Duration, spinner.WithWriter(w))}
	s.SetMessage(message)
	return s
}

func (s *uiSpinner) Start()                    { s.s.Start() }
func (s *uiSpinner) Stop()                     { s.s.Stop() }
func (s *uiSpinner) SetMessage(message string) { s.s.Suffix = " " + message }

type noopSpinner struct{}

func (s noopSpinner) Start()                    {}
func (s noopSpinner) Stop()                     {}
func (s noopSpinner) SetMessage(message string) {}
