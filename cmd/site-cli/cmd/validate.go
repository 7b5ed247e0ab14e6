package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nfrund/b2bsite/cmd/site-cli/internal/report"
	"github.com/nfrund/b2bsite/internal/contact"
)

func newValidateCmd() *cobra.Command {
	var (
		fields contact.Fields
		submit bool
		delay  time.Duration
		format string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the contact form validator",
		Long: `Check a set of contact form values with the same rules the site applies,
and print the error of every invalid field. With --submit a valid form is also
sent through the simulated submission and its acknowledgment printed.

Exits with status 1 when the values are invalid.

Examples:
  site-cli validate --name Ada --email ada@example.com --subject Hi --message "Hello there, team"
  site-cli validate --email a@b --format json
  site-cli validate --name Ada --email ada@example.com --subject Hi --message "Hello there, team" --submit --delay 0s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			result := report.Validation{Errors: contact.Validate(fields)}
			result.Valid = len(result.Errors) == 0

			if result.Valid && submit {
				form := contact.NewForm()
				for _, f := range contact.AllFields {
					form.Change(f, fields.Get(f))
				}
				ack, _ := form.Submit(cmd.Context(), contact.NewSimulatedSubmitter(delay))
				result.Acknowledgment = ack.Message
			}

			var err error
			if format == "json" {
				err = report.WriteJSON(cmd.OutOrStdout(), result)
			} else {
				err = report.WriteValidation(cmd.OutOrStdout(), result)
			}
			if err != nil {
				return err
			}
			if !result.Valid {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fields.Name, "name", "", "Name field")
	cmd.Flags().StringVar(&fields.Email, "email", "", "Email field")
	cmd.Flags().StringVar(&fields.Subject, "subject", "", "Subject field")
	cmd.Flags().StringVar(&fields.Message, "message", "", "Message field")
	cmd.Flags().BoolVar(&submit, "submit", false, "Also run the simulated submission when valid")
	cmd.Flags().DurationVar(&delay, "delay", contact.DefaultSubmitDelay, "Simulated submission delay")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}
