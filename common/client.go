// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0

// Package common holds the HTTP plumbing shared by the Keymint API surfaces.
package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/keymint/adminclient/auth"
)

// Client holds configuration data associated with the HTTP(s) session
type Client struct {
	HTTPClient http.Client
	Auth       auth.IAuthenticator
}

// NewClient instantiates a new Client using the supplied authenticator. A
// nil authenticator means requests carry no Authorization header.
func NewClient(a auth.IAuthenticator) *Client {
	if a == nil {
		a = &auth.NullAuthenticator{}
	}

	return &Client{
		HTTPClient: http.Client{
			Timeout: 5 * time.Second,
		},
		Auth: a,
	}
}

// PostJSON serializes reqBody as JSON, POSTs it to uri with the configured
// authentication, and decodes the 200 response body into resBody. Exactly
// one request goes out per invocation; there are no retries. Every failure
// -- transport fault, non-200 status, or an undecodable body -- is returned
// as a *RequestError. The body of a non-200 response is not read.
func (c *Client) PostJSON(uri string, reqBody, resBody interface{}) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return transportError(fmt.Errorf("marshaling request body: %w", err))
	}

	req, err := http.NewRequest(http.MethodPost, uri, bytes.NewReader(payload))
	if err != nil {
		return transportError(fmt.Errorf("POST %q, request creation failed: %w", uri, err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	header, err := c.Auth.EncodeHeader()
	if err != nil {
		return transportError(fmt.Errorf("encoding authorization header: %w", err))
	}
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	hc := &c.HTTPClient

	res, err := hc.Do(req)
	if err != nil {
		return transportError(err)
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return httpError(res)
	}

	if err := DecodeJSONBody(res, resBody); err != nil {
		return transportError(fmt.Errorf("decoding response body: %w", err))
	}

	return nil
}

// DecodeJSONBody decodes the response body into j, closing it afterwards.
func DecodeJSONBody(res *http.Response, j interface{}) error {
	defer res.Body.Close()

	return json.NewDecoder(res.Body).Decode(&j)
}
