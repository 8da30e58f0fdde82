package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kastproductions/printify-client/client"
	"github.com/kastproductions/printify-client/internal/config"
)

var (
	apiKey      string
	shopID      string
	baseURL     string
	httpTimeout time.Duration
	debug       bool

	cfg *config.Config
)

const commandTimeout = 30 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "printifyctl",
		Short:         "printifyctl talks to the Printify API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.InitLogger()

			loaded, err := config.New()
			if err != nil {
				return err
			}
			// Flags win over the environment.
			flags := cmd.Flags()
			if flags.Changed("api-key") {
				loaded.APIKey = apiKey
			}
			if flags.Changed("shop-id") {
				loaded.ShopID = shopID
			}
			if flags.Changed("base-url") {
				loaded.BaseURL = baseURL
			}
			if flags.Changed("timeout") {
				loaded.HTTPTimeout = httpTimeout
			}
			if flags.Changed("debug") {
				loaded.Debug = debug
			}
			cfg = loaded

			if cfg.Debug {
				config.SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
				return nil
			}
			lvl, err := config.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			config.SetLogLevel(lvl)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&apiKey, "api-key", "", "Printify API token (default $PRINTIFY_API_KEY)")
	pf.StringVar(&shopID, "shop-id", "", "Shop to operate on (default $PRINTIFY_SHOP_ID)")
	pf.StringVar(&baseURL, "base-url", client.DefaultBaseURL, "API base URL (default $PRINTIFY_BASE_URL)")
	pf.DurationVar(&httpTimeout, "timeout", 0, "HTTP client timeout, 0 for none (default $PRINTIFY_HTTP_TIMEOUT)")
	pf.BoolVarP(&debug, "debug", "d", false, "Dump HTTP traffic and enable debug logs")

	// Sub-commands
	rootCmd.AddCommand(newListShopsCmd())
	rootCmd.AddCommand(newListWebhooksCmd())
	rootCmd.AddCommand(newCreateWebhooksCmd())
	rootCmd.AddCommand(newDeleteWebhookCmd())
	rootCmd.AddCommand(newListProductsCmd())
	rootCmd.AddCommand(newGetProductCmd())
	rootCmd.AddCommand(newCreateOrderCmd())
	rootCmd.AddCommand(newSendToProductionCmd())
	rootCmd.AddCommand(newPublishCmd())
	rootCmd.AddCommand(newUnpublishCmd())
	rootCmd.AddCommand(newPublishFailedCmd())
	rootCmd.AddCommand(newPublishSucceededCmd())

	return rootCmd
}

// newClient builds a client from the resolved configuration.
func newClient() (*client.Client, error) {
	return cfg.NewClient()
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, commandTimeout)
}
