// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] so the logging middleware
// can read the status code and body size after the downstream handler
// returns. The response itself streams through untouched; nothing is
// buffered.
//
// The standard library allows WriteHeader only once per response, so the
// decorator forwards the first call and swallows any repeat.
type responseWriter struct {
	http.ResponseWriter

	// status holds the code from the first WriteHeader call, or zero while
	// no header has been written yet.
	status int

	// wroteHeader flips on the first WriteHeader and blocks later ones from
	// reaching the underlying writer.
	wroteHeader bool

	// size accumulates bytes written across every Write call.
	size int
}

// WriteHeader forwards the first status code to the wrapped writer and
// records it. Later calls are dropped, matching the one-shot contract of
// [http.ResponseWriter].
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write passes b through to the wrapped writer and adds the written byte
// count to size. A Write with no prior WriteHeader implies a 200, exactly as
// the standard library's writer behaves, so the implied status is recorded
// too.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
