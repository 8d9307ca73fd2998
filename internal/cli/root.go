// Package cli implements the shopcat commands using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/storeops/shopify-catalog/internal/config"
	"github.com/storeops/shopify-catalog/pkg/catalog"
	"github.com/storeops/shopify-catalog/pkg/logging"
)

// Build info, set via -ldflags at build time.
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

var (
	cfgFile      string
	flagShop     string
	flagToken    string
	flagLogLevel string
	flagJSONLogs bool

	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shopcat",
	Short: "Inspect and export a Shopify store's product catalog",
	Long: `shopcat fetches product catalog data from the Shopify Admin API,
normalizes it into fixed-shape records, and offers listing, searching,
and JSON export.

Credentials come from SHOPIFY_SHOP_NAME and SHOPIFY_ACCESS_TOKEN, the
--shop/--token flags, or a config file under ~/.config/shopcat/.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		if flagShop != "" {
			cfg.ShopName = flagShop
		}
		if flagToken != "" {
			cfg.AccessToken = flagToken
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}

		logging.Setup(logging.Config{
			Level:  logging.LogLevel(cfg.LogLevel),
			Pretty: !flagJSONLogs,
			Output: os.Stderr,
		})
		logger = logging.NewLogger("cli")

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagShop, "shop", "", "store subdomain (without .myshopify.com)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Admin API access token")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "emit JSON logs instead of console output")
}

// newCatalogClient builds the catalog client from the resolved config.
func newCatalogClient() (*catalog.Client, error) {
	if cfg.ShopName == "" || cfg.AccessToken == "" {
		return nil, fmt.Errorf("shop name and access token are required " +
			"(set SHOPIFY_SHOP_NAME and SHOPIFY_ACCESS_TOKEN or use --shop/--token)")
	}

	clientCfg := catalog.DefaultConfig(cfg.ShopName, cfg.AccessToken)
	clientCfg.APIVersion = cfg.APIVersion
	return catalog.New(clientCfg)
}

// reportIncomplete surfaces a fetch that ended early. Whatever was
// accumulated has already been shown; the warning tells the operator the
// data may be partial.
func reportIncomplete(result *catalog.Result) {
	if result.Complete() {
		return
	}
	logger.Warn().
		Err(result.Err).
		Int("records", len(result.Records)).
		Msg("Fetch ended early; output may be incomplete")
}
