package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/storeops/shopify-catalog/pkg/catalog"
)

// Column widths for the product table.
const (
	titleWidth  = 30
	vendorWidth = 15
	typeWidth   = 15
)

// renderTable prints records as a fixed-width table, truncating long values.
func renderTable(w io.Writer, records []catalog.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No products found.")
		return
	}

	fmt.Fprintf(w, "Found %d products:\n", len(records))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tVENDOR\tTYPE\tPRICE\tSTOCK\tSTATUS")
	for _, record := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			record.ID,
			truncate(record.Title, titleWidth),
			truncate(record.Vendor, vendorWidth),
			truncate(record.ProductType, typeWidth),
			formatPrice(record.Price),
			formatQuantity(record.InventoryQuantity),
			record.Status,
		)
	}
	tw.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func formatPrice(price *string) string {
	if price == nil {
		return "N/A"
	}
	return "$" + *price
}

func formatQuantity(quantity *int64) string {
	if quantity == nil {
		return "N/A"
	}
	return strconv.FormatInt(*quantity, 10)
}
