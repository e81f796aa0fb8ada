package profiling

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

type timerKey struct{}

// CobraProfiler adds --timing and --cpu-profile to a command tree.
type CobraProfiler struct {
	cpuProfilePath string
	cpuProfileFile *os.File
	timing         bool
	timer          *Timer
}

// NewCobraProfiler creates a profiler with no flags set.
func NewCobraProfiler() *CobraProfiler {
	return &CobraProfiler{}
}

// AddFlags registers the profiling flags as persistent flags of cmd.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&p.cpuProfilePath, "cpu-profile", "", "Write a CPU profile to file")
	cmd.PersistentFlags().BoolVar(&p.timing, "timing", false, "Print a timing summary on exit")
}

// PreRun starts profiling and stores the timer in the command context. Use
// it as PersistentPreRunE.
func (p *CobraProfiler) PreRun(cmd *cobra.Command, args []string) error {
	p.timer = NewTimer(p.timing)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, timerKey{}, p.timer))

	if p.cpuProfilePath != "" {
		f, err := os.Create(p.cpuProfilePath)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		p.cpuProfileFile = f
	}
	return nil
}

// PostRun stops profiling and prints the timing summary. Use it as
// PersistentPostRun.
func (p *CobraProfiler) PostRun(cmd *cobra.Command, args []string) {
	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		p.cpuProfileFile.Close()
		p.cpuProfileFile = nil
		fmt.Fprintf(cmd.ErrOrStderr(), "CPU profile written to %s\n", p.cpuProfilePath)
	}
	p.timer.Summarize(cmd.ErrOrStderr())
}

// FromContext returns the timer stored by PreRun, or a disabled one.
func FromContext(ctx context.Context) *Timer {
	if ctx != nil {
		if t, ok := ctx.Value(timerKey{}).(*Timer); ok {
			return t
		}
	}
	return NewTimer(false)
}
