package transport_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/transport"
)

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestGetAttachesBearerToken(t *testing.T) {
	var seen *http.Request
	hc := NewTestClient(func(req *http.Request) *http.Response {
		seen = req
		return jsonResponse(200, `[]`)
	})

	c := transport.New("http://api.test", staticToken("tok-123"), transport.WithHTTPClient(hc))
	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/projects/admin/all", nil, &out))
	require.Equal(t, "Bearer tok-123", seen.Header.Get("Authorization"))
	require.Equal(t, "http://api.test/projects/admin/all", seen.URL.String())
}

func TestGetWithoutTokenOmitsHeader(t *testing.T) {
	var seen *http.Request
	hc := NewTestClient(func(req *http.Request) *http.Response {
		seen = req
		return jsonResponse(200, `[]`)
	})

	c := transport.New("http://api.test", staticToken(""), transport.WithHTTPClient(hc))
	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/projects", nil, &out))
	require.Empty(t, seen.Header.Get("Authorization"))
}

func TestErrorResponseBecomesAPIError(t *testing.T) {
	hc := NewTestClient(func(req *http.Request) *http.Response {
		return jsonResponse(404, `{"error":"no such record"}`)
	})

	c := transport.New("http://api.test", nil, transport.WithHTTPClient(hc))
	err := c.Get(context.Background(), "/projects/99", nil, &struct{}{})
	require.Error(t, err)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
	require.Contains(t, apiErr.Body, "no such record")
	require.True(t, transport.IsNotFound(err))
}

func TestPostEncodesMultipart(t *testing.T) {
	var seen *http.Request
	var body []byte
	hc := NewTestClient(func(req *http.Request) *http.Response {
		seen = req
		body, _ = io.ReadAll(req.Body)
		return jsonResponse(201, `{"id":1}`)
	})

	payload := forms.NewPayload().
		Set("title", "New project").
		Attach(forms.FileFromBytes(forms.FieldImage, "shot.png", []byte("img")))

	c := transport.New("http://api.test", staticToken("tok"), transport.WithHTTPClient(hc))
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, c.Post(context.Background(), "/projects", payload, &created))
	require.Equal(t, int64(1), created.ID)
	require.Contains(t, seen.Header.Get("Content-Type"), "multipart/form-data")
	require.Contains(t, string(body), `name="title"`)
	require.Contains(t, string(body), `filename="shot.png"`)
}

func TestGetQueryParams(t *testing.T) {
	var seen *http.Request
	hc := NewTestClient(func(req *http.Request) *http.Response {
		seen = req
		return jsonResponse(200, `[]`)
	})

	c := transport.New("http://api.test", nil, transport.WithHTTPClient(hc))
	q := map[string][]string{"domainId": {"2"}, "courseId": {"7"}}
	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/testimonials", q, &out))
	require.Equal(t, "2", seen.URL.Query().Get("domainId"))
	require.Equal(t, "7", seen.URL.Query().Get("courseId"))
}

func TestContextCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := transport.New("http://api.test", nil)
	err := c.Get(ctx, "/projects", nil, &struct{}{})
	require.ErrorIs(t, err, context.Canceled)
}
