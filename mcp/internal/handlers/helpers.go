package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
)

// shopIDArg is accepted by every shop-scoped tool; it overrides the shop the
// server's client was configured with.
const shopIDArg = "shop_id"

func withShopID() mcp.ToolOption {
	return mcp.WithString(shopIDArg, mcp.Description("Shop id; defaults to PRINTIFY_SHOP_ID"))
}

// forShop returns c, rebound to the shop_id argument when one is given.
func forShop(c *client.Client, req mcp.CallToolRequest) *client.Client {
	if id := strings.TrimSpace(optionalString(req, shopIDArg)); id != "" {
		return c.ForShop(id)
	}
	return c
}

func optionalString(req mcp.CallToolRequest, key string) string {
	v, _ := req.GetArguments()[key].(string)
	return v
}

// numberArg reads a numeric argument. JSON callers send float64; Go callers
// often pass ints or numeric strings.
func numberArg(req mcp.CallToolRequest, key string, def int64) (int64, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		return v.Int64()
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

// jsonResult renders v as the tool's text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// finish logs the outcome of tool and converts it into a tool result. API
// failures become error results, not protocol errors.
func finish(tool string, start time.Time, v any, err error) (*mcp.CallToolResult, error) {
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("tool", tool).Dur("elapsed", elapsed).Msg("tool call failed")
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err)), nil
	}
	log.Debug().Str("tool", tool).Dur("elapsed", elapsed).Msg("tool call completed")
	return jsonResult(v)
}
