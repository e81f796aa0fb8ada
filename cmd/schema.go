package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/jobslots/config"
	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/logging"
	"github.com/grovetools/jobslots/schema"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewSchemaCmd prints the config JSON schema and validates config files.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of jobslots.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.AddCommand(newSchemaValidateCmd())
	return cmd
}

func newSchemaValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a config file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return errors.ConfigNotFound(path)
				}
				return err
			}

			var raw map[string]interface{}
			if config.FormatOf(path) == "toml" {
				err = toml.Unmarshal(data, &raw)
			} else {
				err = yaml.Unmarshal(data, &raw)
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config").
					WithDetail("path", path)
			}

			v, err := schema.NewValidator()
			if err != nil {
				return err
			}
			if err := v.Validate(raw); err != nil {
				if e, ok := err.(*errors.Error); ok {
					return e.WithDetail("path", path)
				}
				return err
			}

			logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).Success(fmt.Sprintf("%s is valid", path))
			return nil
		},
	}
}
