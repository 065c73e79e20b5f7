// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSONBody is returned when a create or update body is not a JSON
// object matching the record payload.
var ErrInvalidJSONBody = errors.New("invalid JSON body")
