package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/storeops/shopify-catalog/pkg/catalog"
)

var flagAllStatus string

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Fetch the full catalog, following pagination",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)

	allCmd.Flags().StringVar(&flagAllStatus, "status", "active", "status filter: active, archived, draft")
}

func runAll(cmd *cobra.Command, args []string) error {
	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	result, err := client.AllProducts(cmd.Context(), catalog.Status(flagAllStatus))
	if err != nil {
		return err
	}

	renderTable(os.Stdout, result.Records)
	reportIncomplete(result)
	return nil
}
