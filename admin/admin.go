// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/keymint/adminclient/auth"
	"github.com/keymint/adminclient/common"
)

const (
	createUserPath = "v1/create-user"
	userTokenPath  = "v1/user-token"
)

// DefaultTokenLifetime is the validity period, in seconds, requested for
// user tokens when the caller does not specify one. It is applied by the
// client: the lifetime field is always present in the outgoing request.
const DefaultTokenLifetime = 3600

// Service is the primary interface to the administrative API of a Keymint
// node. It holds no per-call state, so a single instance may be used from
// multiple goroutines.
type Service struct {
	// Client is the underlying client used for HTTP requests.
	Client *common.Client

	// EndPointURI is the node's base API URL. Individual operation
	// endpoints are relative to this.
	EndPointURI *url.URL
}

// NewService creates a new Service instance using the provided endpoint URI
// and authenticator, and the default HTTP client.
func NewService(uri string, a auth.IAuthenticator) (*Service, error) {
	o := Service{Client: common.NewClient(a)}

	if err := o.SetEndpointURI(uri); err != nil {
		return nil, err
	}

	return &o, nil
}

// NewTLSService creates a new Service like NewService, additionally
// trusting the PEM certs found at certPaths (alongside the system roots)
// when verifying the node. The endpoint URI must use the HTTPS scheme.
func NewTLSService(uri string, a auth.IAuthenticator, certPaths []string) (*Service, error) {
	o, err := newHTTPSService(uri, a)
	if err != nil {
		return nil, err
	}

	transport, err := auth.NewTLSTransport(certPaths)
	if err != nil {
		return nil, err
	}

	o.Client.HTTPClient.Transport = transport

	return o, nil
}

// NewInsecureTLSService creates a new Service like NewService, but skipping
// verification of the node's certificate. This is intended for development
// setups only.
func NewInsecureTLSService(uri string, a auth.IAuthenticator) (*Service, error) {
	o, err := newHTTPSService(uri, a)
	if err != nil {
		return nil, err
	}

	o.Client.HTTPClient.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
			MinVersion:         tls.VersionTLS12,
		},
	}

	return o, nil
}

func newHTTPSService(uri string, a auth.IAuthenticator) (*Service, error) {
	o, err := NewService(uri, a)
	if err != nil {
		return nil, err
	}

	if o.EndPointURI.Scheme != "https" {
		return nil, fmt.Errorf("expected HTTPS scheme in URI %q", uri)
	}

	return o, nil
}

// SetClient sets the HTTP(s) client connection configuration
func (o *Service) SetClient(client *common.Client) error {
	if client == nil {
		return errors.New("no client supplied")
	}
	o.Client = client
	return nil
}

// SetEndpointURI sets the URI of the node's administrative API endpoint.
func (o *Service) SetEndpointURI(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("malformed URI: %w", err)
	}

	if !u.IsAbs() {
		return fmt.Errorf("URI is not absolute: %q", uri)
	}

	o.EndPointURI = u

	return nil
}

// CreateUser provisions a new user account with the supplied display name
// and returns the identifier the node assigned to it. The name is not
// validated locally; the node is authoritative.
func (o *Service) CreateUser(name string) (uint64, error) {
	postURI := o.EndPointURI.JoinPath(createUserPath)

	var res createUserResponse

	req := createUserRequest{Name: name}
	if err := o.Client.PostJSON(postURI.String(), &req, &res); err != nil {
		return 0, err
	}

	return res.UserID, nil
}

// GenerateUserToken is a wrapper around GenerateUserTokenWithLifetime that
// requests the default token lifetime.
func (o *Service) GenerateUserToken(userID uint64) (string, error) {
	return o.GenerateUserTokenWithLifetime(userID, DefaultTokenLifetime)
}

// GenerateUserTokenWithLifetime mints an authentication token for the
// specified user, valid for lifetime seconds. The user must have been
// previously created; the node rejects unknown IDs.
func (o *Service) GenerateUserTokenWithLifetime(userID uint64, lifetime uint32) (string, error) {
	postURI := o.EndPointURI.JoinPath(userTokenPath)

	var res userTokenResponse

	req := userTokenRequest{UserID: userID, Lifetime: lifetime}
	if err := o.Client.PostJSON(postURI.String(), &req, &res); err != nil {
		return "", err
	}

	return res.Token, nil
}
