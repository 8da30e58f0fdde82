package mcp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastproductions/printify-client/client"
	"github.com/kastproductions/printify-client/printifytest"
)

// TestServerOverInProcessTransport lists the tools and calls one through a
// real MCP client session.
func TestServerOverInProcessTransport(t *testing.T) {
	fake := printifytest.New("k")
	defer fake.Close()
	fake.AddShop("1", "Only Shop", "custom_integration")

	pc, err := client.New("k", client.WithBaseURL(fake.URL()), client.WithShopID("1"))
	require.NoError(t, err)
	s, err := NewServer(pc, "test-mcp-server", "1.0.0")
	require.NoError(t, err)

	tr := transport.NewInProcessTransport(s)
	require.NoError(t, tr.Start(context.Background()))
	defer tr.Close()

	mc := mcpclient.NewClient(tr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = mc.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: "2024-11-05",
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo:      mcp.Implementation{Name: "test-client", Version: "1.0.0"},
		},
	})
	require.NoError(t, err)

	tools, err := mc.ListTools(ctx, mcp.ListToolsRequest{})
	require.NoError(t, err)
	names := map[string]bool{}
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"list_shops", "list_products", "get_product",
		"list_webhooks", "create_webhooks", "delete_webhook",
		"create_order", "send_order_to_production",
		"publish_product", "unpublish_product", "set_publish_failed", "set_publish_succeeded",
	} {
		assert.True(t, names[want], "missing tool %s", want)
	}

	res, err := mc.CallTool(ctx, mcp.CallToolRequest{Params: mcp.CallToolParams{Name: "list_shops"}})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Only Shop")
}

func TestBuildRouter(t *testing.T) {
	var hits int
	r := buildRouter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"UP"}`, string(body))

	// Issue one client request so the client collectors have a sample.
	fake := printifytest.New("k")
	defer fake.Close()
	pc, err := client.New("k", client.WithBaseURL(fake.URL()))
	require.NoError(t, err)
	_, err = pc.GetShops(context.Background())
	require.NoError(t, err)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), "printify_client_requests_total")

	resp, err = http.Post(srv.URL+"/mcp", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, 1, hits)
}
