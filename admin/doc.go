// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0

/*
Package admin implements the client side of the Keymint administrative API.

The user creates a Service supplying the node's base URI and the bearer
credential issued for privileged access:

	service, err := admin.NewService(
		"https://keymint.example:8080",
		&auth.TokenAuthenticator{Token: adminToken},
	)

A user account is provisioned with:

	userID, err := service.CreateUser("John Doe")

and a token for that account is minted with:

	token, err := service.GenerateUserToken(userID)

or, to control the validity period:

	token, err := service.GenerateUserTokenWithLifetime(userID, 600)

Each method performs a single POST exchange against the node and either
returns the decoded result or a *common.RequestError describing the failed
exchange.
*/
package admin
