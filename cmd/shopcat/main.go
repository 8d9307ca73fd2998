package main

import "github.com/storeops/shopify-catalog/internal/cli"

func main() {
	cli.Execute()
}
