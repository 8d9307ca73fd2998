package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/storeops/shopify-catalog/pkg/catalog"
)

var (
	flagListLimit  int
	flagListStatus string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the first page of products",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&flagListLimit, "limit", 50, "number of products to fetch (max 250)")
	listCmd.Flags().StringVar(&flagListStatus, "status", "active", "status filter: active, archived, draft")
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	result, err := client.Products(cmd.Context(), flagListLimit, catalog.Status(flagListStatus))
	if err != nil {
		return err
	}

	renderTable(os.Stdout, result.Records)
	reportIncomplete(result)
	return nil
}
