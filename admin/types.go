// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0

package admin

// Wire shapes for the administrative API. Field casing on the wire
// (user_id, lifetime) differs from the exported method signatures; the
// translation happens here.

type createUserRequest struct {
	Name string `json:"name"`
}

type createUserResponse struct {
	UserID uint64 `json:"user_id"`
}

type userTokenRequest struct {
	UserID   uint64 `json:"user_id"`
	Lifetime uint32 `json:"lifetime"`
}

type userTokenResponse struct {
	Token string `json:"token"`
}
