package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kastproductions/printify-client/client"
)

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// run builds a client, performs call under the command timeout, logs the
// outcome and prints the result.
func run[T any](cmd *cobra.Command, op string, call func(ctx context.Context, c *client.Client) (T, error)) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	log.Debug().Str("op", op).Str("shop_id", c.ShopID()).Str("base_url", c.BaseURL()).Msg("calling api")
	start := time.Now()
	out, err := call(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		ev := log.Error().Err(err).Str("op", op).Dur("elapsed", elapsed)
		if code, ok := client.StatusCode(err); ok {
			ev = ev.Int("status_code", code)
		}
		ev.Msg("request failed")
		return err
	}
	log.Debug().Str("op", op).Dur("elapsed", elapsed).Msg("request completed")
	return printJSON(cmd, out)
}
