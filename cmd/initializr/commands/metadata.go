package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	internalloader "github.com/shubham-dpworld/initializr-ui/internal/metadata/loader"
	"github.com/shubham-dpworld/initializr-ui/pkg/metadata"
)

func (c *CLI) newMetadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Fetch the capability schema and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, _ := cmd.Flags().GetString("source")
			raw, _ := cmd.Flags().GetBool("raw")

			if source == "" {
				source = c.config.MetadataURL()
			}

			loader := internalloader.New(metadata.NewLoaderOptions(
				metadata.WithDefaultSources(),
				metadata.WithHTTPFallback(c.config.Timeout.Std()),
			))

			doc, err := loader.Load(cmd.Context(), parseSource(source))
			if err != nil {
				return err
			}

			if raw {
				_, werr := cmd.OutOrStdout().Write(doc.Raw())
				return werr
			}

			// Round-trip through the parser so the dump reflects what the
			// composer will actually see.
			schema, err := metadata.ParseSchema(doc)
			if err != nil {
				return err
			}
			encoded, err := json.Marshal(schema)
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, encoded, "", "  "); err != nil {
				return err
			}
			_, werr := fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
			return werr
		},
	}

	cmd.Flags().String("source", "", "Metadata document path or URL (defaults to the configured service)")
	cmd.Flags().Bool("raw", false, "Print the unparsed payload")
	return cmd
}
