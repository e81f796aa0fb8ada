package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/tui/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	out     io.Writer
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		out:     os.Stderr,
	}
}

// WithWriter redirects the handler output.
func (h *ErrorHandler) WithWriter(w io.Writer) *ErrorHandler {
	h.out = w
	return h
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	icon := theme.DefaultTheme.Error.Render(theme.IconError)
	detail := func(key string) interface{} {
		if e, ok := err.(*errors.Error); ok {
			return e.Details[key]
		}
		return ""
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.out, "%s Configuration not found: %v\n", icon, detail("path"))
		fmt.Fprintln(h.out, "Create a jobslots.yml or pass --config.")

	case errors.ErrCodeCatalogNotFound:
		fmt.Fprintf(h.out, "%s Catalog manifest not found: %v\n", icon, detail("path"))
		fmt.Fprintln(h.out, "Set 'catalog' in jobslots.yml or pass --catalog.")

	case errors.ErrCodeUnknownJob:
		fmt.Fprintf(h.out, "%s Job '%v' is not in the console state\n", icon, detail("job"))
		fmt.Fprintln(h.out, "Run 'jobslots list' to see managed jobs.")

	case errors.ErrCodeUnknownAdjustment:
		fmt.Fprintf(h.out, "%s Unknown adjustment '%v'\n", icon, detail("kind"))
		fmt.Fprintln(h.out, "Valid adjustments: increase, decrease, set-unlimited, set-finite, toggle-blacklist.")

	default:
		fmt.Fprintf(h.out, "%s Error: %v\n", icon, err)
	}

	if h.Verbose {
		if e, ok := err.(*errors.Error); ok {
			fmt.Fprintf(h.out, "\nError details:\n%s\n", e.ToJSON())
		}
	}
	return err
}
