// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Oauth2Authenticator obtains bearer tokens from an OAuth2 provider using
// the client credentials grant, for deployments where Keymint admin access
// is brokered by an identity provider rather than a static admin token. The
// obtained token is cached and re-fetched on expiry, so unlike the other
// authenticators an instance is not read-only across requests.
type Oauth2Authenticator struct {
	TokenURL     string
	ClientID     string
	ClientSecret string

	Token *oauth2.Token
}

func (o *Oauth2Authenticator) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		TokenURL     string                 `mapstructure:"token_url"`
		ClientID     string                 `mapstructure:"client_id"`
		ClientSecret string                 `mapstructure:"client_secret"`
		Rest         map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.TokenURL = decoded.TokenURL
	o.ClientID = decoded.ClientID
	o.ClientSecret = decoded.ClientSecret

	if err := o.validate(); err != nil {
		return err
	}

	return unexpectedFields(decoded.Rest)
}

func (o *Oauth2Authenticator) EncodeHeader() (string, error) {
	var err error

	if o.Token == nil || o.Token.Expiry.Before(time.Now()) {
		o.Token, err = o.obtainToken()
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Bearer %s", o.Token.AccessToken), nil
}

func (o *Oauth2Authenticator) obtainToken() (*oauth2.Token, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	conf := &clientcredentials.Config{
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		TokenURL:     o.TokenURL,
	}

	return conf.Token(context.Background())
}

func (o *Oauth2Authenticator) validate() error {
	if o.ClientID == "" {
		return errors.New("missing client_id")
	}

	if o.ClientSecret == "" {
		return errors.New("missing client_secret")
	}

	if o.TokenURL == "" {
		return errors.New("missing token_url")
	}

	if _, err := url.Parse(o.TokenURL); err != nil {
		return fmt.Errorf("invalid token_url: %w", err)
	}

	return nil
}
