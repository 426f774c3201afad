package discord

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestGetUserUnknownUser(t *testing.T) {
	httpClient := NewTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(404, `{"message": "Unknown User", "code": 10013}`)
	})

	client := New("", WithHTTPClient(httpClient))
	user, err := client.Users.GetUser(context.Background(), snowflake.ID(1))
	assert.Nil(t, user)
	require.Error(t, err)

	var apiErr APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, 10013, apiErr.Code)
	assert.Equal(t, "Unknown User", apiErr.Message)
	assert.Equal(t, "[404] Unknown User (code 10013)", err.Error())
}

func TestGetUserUnauthorizedPlainText(t *testing.T) {
	httpClient := NewTestClient(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: 401,
			Body:       ioutil.NopCloser(bytes.NewBufferString("401: Unauthorized\n")),
			Header:     make(http.Header),
		}
	})

	client := New("bad", WithHTTPClient(httpClient))
	_, err := client.Users.GetUser(context.Background(), snowflake.ID(1))
	require.Error(t, err)
	assert.Equal(t, APIError{StatusCode: 401, Message: "401: Unauthorized"}, errors.Cause(err))
}

func TestGetUserEmptyErrorBody(t *testing.T) {
	httpClient := NewTestClient(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: 502,
			Body:       ioutil.NopCloser(bytes.NewBufferString("")),
			Header:     make(http.Header),
		}
	})

	client := New("", WithHTTPClient(httpClient))
	_, err := client.Users.GetUser(context.Background(), snowflake.ID(1))
	assert.EqualError(t, err, "[502] Bad Gateway")
}

func TestGetUserMalformedJSON(t *testing.T) {
	httpClient := NewTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"id": "1", "username": `)
	})

	client := New("", WithHTTPClient(httpClient))
	_, err := client.Users.GetUser(context.Background(), snowflake.ID(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "while decoding response")
}

func TestGetUserTransportFailure(t *testing.T) {
	client := New("", WithHTTPClient(&http.Client{Transport: failingTransport{}}))
	_, err := client.Users.GetUser(context.Background(), snowflake.ID(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "while executing request")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRedactToken(t *testing.T) {
	client := New("sekrit")
	assert.Equal(t, "Authorization: Bot <redacted>", client.redact("Authorization: Bot sekrit"))

	anonymous := New("")
	assert.Equal(t, "Authorization: Bot ", anonymous.redact("Authorization: Bot "))
}
