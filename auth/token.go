// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// TokenAuthenticator authenticates requests with a pre-issued bearer secret,
// such as the admin token provisioned alongside a Keymint node. The token is
// read-only after configuration, so a single instance is safe to share across
// concurrent requests.
type TokenAuthenticator struct {
	Token string
}

func (o *TokenAuthenticator) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		Token string                 `mapstructure:"token"`
		Rest  map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.Token = decoded.Token

	if err := o.validate(); err != nil {
		return err
	}

	return unexpectedFields(decoded.Rest)
}

func (o *TokenAuthenticator) EncodeHeader() (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}

	return fmt.Sprintf("Bearer %s", o.Token), nil
}

func (o *TokenAuthenticator) validate() error {
	if o.Token == "" {
		return errors.New("missing token")
	}

	return nil
}
