package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kastproductions/printify-client/client"
)

func newListWebhooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-webhooks",
		Short: "List the shop's webhooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "list-webhooks", func(ctx context.Context, c *client.Client) ([]client.Object, error) {
				return c.GetWebhooks(ctx)
			})
		},
	}
}

func newCreateWebhooksCmd() *cobra.Command {
	var topics, url, secret string

	cmd := &cobra.Command{
		Use:   "create-webhooks",
		Short: "Register one webhook per topic, all pointing at the same URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := client.ParseTopics(topics)
			if err != nil {
				return err
			}
			regs := make([]client.WebhookRegistration, len(parsed))
			for i, t := range parsed {
				regs[i] = client.WebhookRegistration{Topic: t, URL: url, Secret: secret}
			}
			return run(cmd, "create-webhooks", func(ctx context.Context, c *client.Client) ([]client.Object, error) {
				return c.CreateWebhooks(ctx, regs)
			})
		},
	}

	cmd.Flags().StringVar(&topics, "topics", "", "Comma separated topics, e.g. order:created,order:shipment:created (required)")
	cmd.Flags().StringVar(&url, "url", "", "Callback URL (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Shared secret sent with each registration")
	_ = cmd.MarkFlagRequired("topics")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newDeleteWebhookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-webhook WEBHOOK_ID",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "delete-webhook", func(ctx context.Context, c *client.Client) (client.Value, error) {
				return c.DeleteWebhook(ctx, args[0])
			})
		},
	}
}
