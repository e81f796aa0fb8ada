package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/jobslots/cli"
	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/logging"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/session"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/spf13/cobra"
)

// NewAdjustCmd applies a single adjustment to the loaded state. The
// snapshot file is left untouched.
func NewAdjustCmd() *cobra.Command {
	var flags cli.SourceFlags

	cmd := &cobra.Command{
		Use:   "adjust <job> <kind>",
		Short: "Apply one slot adjustment and print the result",
		Long: `Apply one slot adjustment and print the result.

Kinds: increase, decrease, set-unlimited, set-finite, toggle-blacklist.
set-finite and toggle-blacklist need debug controls (--debug).`,
		Example: `  jobslots adjust Warden increase
  jobslots adjust Cook set-unlimited --state station.state.yml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := slots.ParseAdjustmentKind(args[1])
			if err != nil {
				return errors.UnknownAdjustment(args[1])
			}

			ws, err := loadWorkspace(cmd, &flags)
			if err != nil {
				return err
			}
			state, err := ws.loadState()
			if err != nil {
				return err
			}

			sess := session.New(state).WithLogger(ws.logger.WithField("component", "session"))
			intent := slots.AdjustmentIntent{Job: catalog.JobID(args[0]), Kind: kind}
			next, err := sess.Apply(intent)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(next, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			name := string(intent.Job)
			if def, ok := ws.catalog.ResolveJob(intent.Job); ok {
				name = def.DisplayName
			}
			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			pretty.Success(fmt.Sprintf("%s: %s", intent.Kind, name))
			pretty.Field("slots", next.Jobs[intent.Job].String())
			pretty.Field("blacklisted", next.IsBlacklisted(intent.Job))
			return nil
		},
	}
	flags.Register(cmd.Flags())
	return cmd
}
