// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package engagement_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-app/inkwell/internal/blog/engagement"
)

// Anonymous writes are an authorization failure, not a validation one.
func TestAnonymousWritesForbidden(t *testing.T) {
	f := newFixture()
	router := engagement.NewHandler(f.service).Routes()

	for _, path := range []string{"/comments", "/likes"} {
		body := strings.NewReader(`{"post_id":"` + postID + `","description":"hi"}`)
		request := httptest.NewRequest(http.MethodPost, path, body)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusForbidden, recorder.Code, path)
	}
}

func TestDetailEndpoint_UnknownHandle(t *testing.T) {
	f := newFixture()
	router := engagement.NewHandler(f.service).Routes()

	request := httptest.NewRequest(http.MethodGet, "/?urlHandle=missing", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
