// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/keymint/adminclient/auth"
)

// NewTestingHTTPClient creates an HTTP test server (with a configurable
// request handler), an API Client using the supplied authenticator, and
// connects them together.  The API client and the server's shutdown switch
// are returned.
func NewTestingHTTPClient(handler http.Handler, a auth.IAuthenticator) (cli *Client, closerFn func()) {
	srv := httptest.NewServer(handler)

	cli = NewClient(a)
	cli.HTTPClient = http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, network, _ string) (net.Conn, error) {
				return net.Dial(network, srv.Listener.Addr().String())
			},
		},
	}

	closerFn = srv.Close

	return
}
