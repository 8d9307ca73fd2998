package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var flagSearchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search products by title substring",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 50, "number of products to return (max 250)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	result, err := client.Search(cmd.Context(), args[0], flagSearchLimit)
	if err != nil {
		return err
	}

	renderTable(os.Stdout, result.Records)
	reportIncomplete(result)
	return nil
}
