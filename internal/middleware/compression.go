// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// CompressionLevel is the gzip/deflate level used for API responses.
const CompressionLevel = 5

// compressibleTypes lists the response types the API emits. Anything else
// (already compressed assets, binary bodies) is written as-is.
var compressibleTypes = []string{"application/json", "text/plain"}

// Compression encodes JSON and plain-text responses with gzip or deflate,
// whichever the client's Accept-Encoding prefers. Responses that already
// carry a Content-Encoding pass through.
func Compression() func(http.Handler) http.Handler {
	return chimiddleware.Compress(CompressionLevel, compressibleTypes...)
}
