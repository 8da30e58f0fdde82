package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs request and response dumps at debug level.
//
// Enable it with WithDebugLogging(true), or without code changes by setting
// PRINTIFY_DEBUG=true or DEBUG=true. It sits beneath the Authorization
// wrapper, so the API key is never part of a dump. Bodies are logged in full;
// keep it out of production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether PRINTIFY_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("PRINTIFY_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
