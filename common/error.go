// Copyright 2025 Contributors to the Keymint project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"fmt"
	"net/http"
)

// Cause discriminates the failure source behind a RequestError.
type Cause int

const (
	// CauseTransport covers failures where no usable response was
	// obtained: network faults, request construction, and response
	// decoding.
	CauseTransport Cause = iota + 1

	// CauseHTTP covers responses carrying an unexpected status code.
	CauseHTTP
)

// RequestError is the single error kind surfaced for a failed API exchange.
// Callers that need to distinguish failure sources inspect the Cause tag
// (and, for CauseHTTP, the status fields) rather than the message text.
type RequestError struct {
	Cause Cause

	// StatusCode and Status describe the response for CauseHTTP failures,
	// e.g. 404 and "404 Not Found".
	StatusCode int
	Status     string

	// Err is the underlying error for CauseTransport failures.
	Err error
}

func (o *RequestError) Error() string {
	if o.Cause == CauseHTTP {
		return fmt.Sprintf("unexpected HTTP response status %q", o.Status)
	}

	return fmt.Sprintf("request failed: %v", o.Err)
}

func (o *RequestError) Unwrap() error {
	return o.Err
}

func transportError(err error) *RequestError {
	return &RequestError{Cause: CauseTransport, Err: err}
}

func httpError(res *http.Response) *RequestError {
	return &RequestError{
		Cause:      CauseHTTP,
		StatusCode: res.StatusCode,
		Status:     res.Status,
	}
}
