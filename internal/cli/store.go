package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/storeops/shopify-catalog/pkg/catalog"
	"github.com/storeops/shopify-catalog/pkg/store"
)

var flagSyncStatus string

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Secondary store operations",
}

var storeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check connectivity to the secondary store and count records",
	Args:  cobra.NoArgs,
	RunE:  runStoreCheck,
}

var storeSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the full catalog and save a snapshot to the secondary store",
	Args:  cobra.NoArgs,
	RunE:  runStoreSync,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeCheckCmd)
	storeCmd.AddCommand(storeSyncCmd)

	storeSyncCmd.Flags().StringVar(&flagSyncStatus, "status", "active", "status filter: active, archived, draft")
}

// newStore builds the secondary store from the resolved config. The caller
// owns the returned close function.
func newStore() (*store.Store, func()) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	return store.New(redisClient), func() { redisClient.Close() }
}

func runStoreCheck(cmd *cobra.Command, args []string) error {
	st, closeStore := newStore()
	defer closeStore()

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	report, err := st.Check(ctx)
	if err != nil {
		return fmt.Errorf("store check failed: %w", err)
	}

	fmt.Printf("Connection successful (%s)\n", cfg.RedisAddr)
	fmt.Printf("  %s: %d records\n", store.ProductsKey, report.Products)
	fmt.Printf("  %s: %d entries\n", store.SyncLogKey, report.SyncLog)
	return nil
}

func runStoreSync(cmd *cobra.Command, args []string) error {
	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	result, err := client.AllProducts(cmd.Context(), catalog.Status(flagSyncStatus))
	if err != nil {
		return err
	}

	// A partial snapshot would silently shadow records that exist upstream,
	// so an incomplete fetch aborts the sync.
	if !result.Complete() {
		return fmt.Errorf("fetch incomplete after %d records, not syncing: %w",
			len(result.Records), result.Err)
	}

	st, closeStore := newStore()
	defer closeStore()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	if err := st.SaveSnapshot(ctx, result.Records); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	fmt.Printf("Synced %d products to %s\n", len(result.Records), cfg.RedisAddr)
	return nil
}
