// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0

/*
Package adminclient provides Go bindings for the administrative API exposed
by a Keymint signing/identity service node.

The administrative API is consumed through the admin package. The user
creates an admin.Service supplying the node's base URI and the bearer
credential issued for privileged access:

	service, err := admin.NewService(
		"https://keymint.example:8080",
		&auth.TokenAuthenticator{Token: adminToken},
	)

User accounts are provisioned with CreateUser:

	userID, err := service.CreateUser("John Doe")

and short-lived user tokens are minted with GenerateUserToken (one hour
lifetime) or GenerateUserTokenWithLifetime:

	token, err := service.GenerateUserToken(userID)
	token, err := service.GenerateUserTokenWithLifetime(userID, 600)

Each call performs exactly one HTTP exchange. Any failure -- a transport
fault, a non-200 status, or an undecodable response -- is surfaced as a
*common.RequestError; there are no retries and no partial results.

The user can supply a custom Client object, for example to adjust the
request timeout:

	client := common.NewClient(&auth.TokenAuthenticator{Token: adminToken})
	client.HTTPClient.Timeout = 30 * time.Second
	err := service.SetClient(client)

For nodes fronted by a privately-rooted HTTPS endpoint, NewTLSService
accepts additional PEM certificates to trust, and NewInsecureTLSService
disables verification altogether (for development only).
*/
package adminclient
