package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/config"
	"github.com/fundledger/backend/internal/events"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Config returns the configuration used for API tests.
//
// The API URL is read from the API_URL environment variable and defaults
// to http://example.com.
func Config() config.Config {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://example.com"
	}

	return config.Config{
		APIURL:                  apiURL,
		DBPath:                  ":memory:",
		JWTSecret:               "fundledger-test-secret",
		JWTIssuer:               "fundledger",
		TokenTTL:                time.Hour,
		Currency:                "USD",
		FundingIncomeAccount:    "4000",
		AllocationDebitAccount:  "3000",
		AllocationCreditAccount: "3100",
	}
}

// Token returns a bearer token for a caller with the role.
func Token(t *testing.T, role auth.Role) string {
	cfg := Config()

	token, err := auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL).Issue(string(role)+"@example.org", role)
	require.Nil(t, err, "Token could not be issued")

	return token
}

// As returns the headers to send a request as a caller with the role.
func As(t *testing.T, role auth.Role) map[string]string {
	return map[string]string{"Authorization": "Bearer " + Token(t, role)}
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// Requests are authenticated as an admin unless the headers set
// the Authorization header.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	// If the body is a string, convert it to bytes
	if reflect.TypeOf(body).Kind() == reflect.String {
		byteBuffer = bytes.NewBufferString(body.(string))
	} else if reflect.TypeOf(body).Kind() == reflect.Struct || reflect.TypeOf(body).Kind() == reflect.Map || reflect.TypeOf(body).Kind() == reflect.Slice {
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	} else {
		// Assume we got sent a *bytes.Buffer
		byteBuffer = body.(*bytes.Buffer)
	}

	cfg := Config()
	r, teardown, err := router.Config(cfg)
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err.Error())
	}
	router.AttachRoutes(cfg, events.Noop{}, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	// Set like the server does, swagger matches its files against it
	req.RequestURI = req.URL.RequestURI()
	req.Header.Set("Authorization", "Bearer "+Token(t, auth.RoleAdmin))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of an error response body.
func DecodeError(t *testing.T, s []byte) string {
	var r httputil.HTTPError
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
