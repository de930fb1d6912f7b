// Copyright (c) 2019-2025 Red Hat, Inc.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dwerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// UnsupportedLocationError is returned when a location is neither an SSH nor an HTTP(S) git location.
type UnsupportedLocationError struct {
	Location string
}

func (e *UnsupportedLocationError) Error() string {
	return fmt.Sprintf("Failed to get project from location: '%s'.", e.Location)
}

// MissingDevfileError is returned when a factory resolver response does not carry a devfile.
type MissingDevfileError struct{}

func (e *MissingDevfileError) Error() string {
	return "The specified link does not contain any Devfile."
}

type AnnotationParseError struct {
	// Err is the underlying error causing the problem. If nil, it is not included in the output of Error()
	Err error
	// Message is a user-friendly string explaining why the error occurred
	Message string
}

func (e *AnnotationParseError) Error() string {
	if e.Err != nil {
		if e.Message != "" {
			return fmt.Sprintf("%s: %s", e.Message, e.Err)
		}
		return e.Err.Error()
	}
	return e.Message
}

func (e *AnnotationParseError) Unwrap() error {
	return e.Err
}

// FetchError is returned when a remote file or endpoint could not be retrieved.
type FetchError struct {
	// URL is the location that was requested
	URL string
	// StatusCode is the HTTP status of the response, or zero if no response was received
	StatusCode int
	// Body is the response body, if any
	Body string
	// Err is the transport error, if any
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("could not fetch %s: got status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("could not fetch %s: got status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err is a FetchError for a response with status 404.
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode == http.StatusNotFound
	}
	return false
}
