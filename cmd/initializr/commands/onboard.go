package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shubham-dpworld/initializr-ui/pkg/onboarding"
)

func (c *CLI) newOnboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Submit an integration description to the onboarding endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			contact, _ := cmd.Flags().GetString("contact")
			description, _ := cmd.Flags().GetString("description")

			var options []onboarding.Option
			if c.config.OnboardingPath != "" {
				options = append(options, onboarding.WithPath(c.config.OnboardingPath))
			}
			client := onboarding.NewClient(c.config.Server, options...)

			if err := client.Submit(cmd.Context(), onboarding.Description{
				ClientName:  name,
				Contact:     contact,
				Description: description,
			}); err != nil {
				return err
			}

			_, werr := fmt.Fprintln(cmd.OutOrStdout(), "Submitted.")
			return werr
		},
	}

	cmd.Flags().String("name", "", "Client name")
	cmd.Flags().String("contact", "", "Contact address")
	cmd.Flags().String("description", "", "Integration description")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "initializr version %s\n", versionString())
		},
	}
}
