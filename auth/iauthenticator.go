// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"fmt"
	"strings"
)

// IAuthenticator is implemented by the authentication methods supported by
// the Keymint service. EncodeHeader returns the value for the request's
// Authorization header ("" means the header is not set).
type IAuthenticator interface {
	Configure(cfg map[string]interface{}) error
	EncodeHeader() (string, error)
}

func unexpectedFields(rest map[string]interface{}) error {
	if len(rest) == 0 {
		return nil
	}

	var unexpected []string
	for k := range rest {
		unexpected = append(unexpected, k)
	}

	return fmt.Errorf("unexpected fields in config: %s",
		strings.Join(unexpected, ", "))
}
