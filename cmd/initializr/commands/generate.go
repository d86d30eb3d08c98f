package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shubham-dpworld/initializr-ui/pkg/composer"
	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
	"github.com/shubham-dpworld/initializr-ui/pkg/prompt"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compose a generation request interactively and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			rendererName, _ := cmd.Flags().GetString("renderer")
			output, _ := cmd.Flags().GetString("output")
			urlOnly, _ := cmd.Flags().GetBool("url-only")
			nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
			overrides, _ := cmd.Flags().GetStringArray("set")

			if source == "" {
				source = c.config.MetadataURL()
			}
			if rendererName == "" {
				rendererName = c.config.Renderer
			}

			comp := composer.New(
				composer.WithBaseURL(c.config.Server),
				composer.WithRequestTimeout(c.config.Timeout.Std()),
				composer.WithDefaultRenderer(rendererName),
			)

			session, err := comp.Load(cmd.Context(), parseSource(source))
			if err != nil {
				return err
			}

			if !nonInteractive {
				interview := prompt.NewInterview(prompt.NewSurveyDriver())
				if err := interview.Run(cmd.Context(), session); err != nil {
					return err
				}
			}

			for _, override := range overrides {
				if err := applyOverride(session, override); err != nil {
					return err
				}
			}

			if urlOnly {
				url, err := session.GenerateURL()
				if err != nil {
					return err
				}
				_, werr := fmt.Fprintln(cmd.OutOrStdout(), url)
				return werr
			}

			rendered, err := comp.Render(cmd.Context(), session, rendererName)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, rendered, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				_, werr := fmt.Fprintf(cmd.OutOrStdout(), "Summary written to %s\n", output)
				return werr
			}

			_, werr := cmd.OutOrStdout().Write(rendered)
			return werr
		},
	}

	cmd.Flags().String("source", "", "Metadata document path or URL (defaults to the configured service)")
	cmd.Flags().StringP("renderer", "r", "", "Summary renderer to use (text, html)")
	cmd.Flags().StringP("output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().Bool("url-only", false, "Print only the generation URL")
	cmd.Flags().Bool("non-interactive", false, "Skip the interview; rely on schema defaults and --set overrides")
	cmd.Flags().StringArray("set", nil, "Override a selection, e.g. --set language=kotlin or --set dependencies=web,data-jpa:3.3")
	return cmd
}

// parseSource treats http(s) strings as remote endpoints and everything else
// as a file path.
func parseSource(raw string) metadata.Source {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return metadata.SourceFromURL(trimmed)
	}
	return metadata.SourceFromFile(trimmed)
}
