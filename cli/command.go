package cli

import (
	"os"

	"github.com/grovetools/jobslots/config"
	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the persistent flags shared by every command.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command carrying the standard flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to jobslots.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the CLI logger, raised to debug level by --verbose.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("cli")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}
	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig loads the file named by --config, or discovers one from the
// working directory. Having no config at all is fine: defaults are used and
// paths must come from flags.
func LoadConfig(opts CommandOptions) (*config.Config, error) {
	if opts.ConfigFile != "" {
		return config.Load(opts.ConfigFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFrom(cwd)
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		cfg = &config.Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	return cfg, err
}

// Execute runs root and reports a failure through the error handler. It
// returns the process exit code.
func Execute(root *cobra.Command) int {
	ApplyStyledHelpRecursive(root)
	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	NewErrorHandler(verbose).WithWriter(cmd.ErrOrStderr()).Handle(err)
	if errors.GetCode(err) == "" {
		PrintHint(cmd)
	}
	return 1
}
