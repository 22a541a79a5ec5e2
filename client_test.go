package adminkit_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edusite/adminkit"
	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/session"
	"github.com/edusite/adminkit/pkg/transport"
)

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func testClient(t *testing.T, fn RoundTripFunc) *adminkit.Client {
	t.Helper()
	sess := session.NewStore(filepath.Join(t.TempDir(), "token"))
	return adminkit.New("http://api.test", sess,
		transport.WithHTTPClient(&http.Client{Transport: fn}))
}

func TestAllHitsAdminEndpoint(t *testing.T) {
	var seen *http.Request
	c := testClient(t, func(req *http.Request) *http.Response {
		seen = req
		return jsonResponse(200, `[{"id":1,"title":"Shop","isActive":false}]`)
	})

	projects, err := c.Projects.All(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/projects/admin/all", seen.URL.Path)
	require.Len(t, projects, 1)
	require.Equal(t, "Shop", projects[0].Title)
	require.False(t, projects[0].IsActive, "admin listing includes drafts")
}

func TestAllCoercesNullToEmptyList(t *testing.T) {
	c := testClient(t, func(req *http.Request) *http.Response {
		return jsonResponse(200, `null`)
	})

	materials, err := c.Materials.All(context.Background())
	require.NoError(t, err)
	require.NotNil(t, materials)
	require.Empty(t, materials)
}

func TestActivePassesFilters(t *testing.T) {
	var seen *http.Request
	c := testClient(t, func(req *http.Request) *http.Response {
		seen = req
		return jsonResponse(200, `[]`)
	})

	_, err := c.Testimonials.Active(context.Background(), adminkit.Filter{DomainID: 2, CourseID: 9})
	require.NoError(t, err)
	require.Equal(t, "/testimonials", seen.URL.Path)
	require.Equal(t, "2", seen.URL.Query().Get("domainId"))
	require.Equal(t, "9", seen.URL.Query().Get("courseId"))
}

func TestActiveZeroFilterSendsNoParams(t *testing.T) {
	var seen *http.Request
	c := testClient(t, func(req *http.Request) *http.Response {
		seen = req
		return jsonResponse(200, `[]`)
	})

	_, err := c.Videos.Active(context.Background(), adminkit.Filter{})
	require.NoError(t, err)
	require.Empty(t, seen.URL.RawQuery)
}

func TestGetNotFound(t *testing.T) {
	c := testClient(t, func(req *http.Request) *http.Response {
		return jsonResponse(404, `{"error":"not found"}`)
	})

	_, err := c.Courses.Get(context.Background(), 99)
	require.Error(t, err)
	require.True(t, transport.IsNotFound(err))
}

func TestCreateSendsMultipart(t *testing.T) {
	var seen *http.Request
	var body []byte
	c := testClient(t, func(req *http.Request) *http.Response {
		seen = req
		body, _ = io.ReadAll(req.Body)
		return jsonResponse(201, `{"id":5,"title":"New"}`)
	})

	form := forms.ProjectForm{
		Title:       "New",
		Description: "d",
		Image:       forms.FileFromBytes(forms.FieldImage, "a.png", []byte("x")),
	}
	require.NoError(t, form.Validate())

	created, err := c.Projects.Create(context.Background(), form.Payload())
	require.NoError(t, err)
	require.Equal(t, int64(5), created.ID)
	require.Equal(t, http.MethodPost, seen.Method)
	require.Contains(t, seen.Header.Get("Content-Type"), "multipart/form-data")
	require.Contains(t, string(body), `name="title"`)
}

func TestUpdateAllowsPartialPayload(t *testing.T) {
	var seen *http.Request
	var body []byte
	c := testClient(t, func(req *http.Request) *http.Response {
		seen = req
		body, _ = io.ReadAll(req.Body)
		return jsonResponse(200, `{"id":5,"isActive":false}`)
	})

	// Only the publish flag, nothing else.
	_, err := c.Materials.Update(context.Background(), 5, forms.ActivePayload(false, forms.BoolDigits))
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, seen.Method)
	require.Equal(t, "/materials/5", seen.URL.Path)
	require.Contains(t, string(body), `name="isActive"`)
	require.NotContains(t, string(body), `name="title"`)
}

func TestDeleteUnknownIDFails(t *testing.T) {
	c := testClient(t, func(req *http.Request) *http.Response {
		return jsonResponse(404, `{"error":"no such record"}`)
	})

	err := c.Domains.Delete(context.Background(), 123)
	require.Error(t, err)
	require.True(t, transport.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	var seen *http.Request
	c := testClient(t, func(req *http.Request) *http.Response {
		seen = req
		return jsonResponse(200, `{"message":"deleted"}`)
	})

	require.NoError(t, c.Trainer.Delete(context.Background(), 7))
	require.Equal(t, http.MethodDelete, seen.Method)
	require.Equal(t, "/trainer-about/7", seen.URL.Path)
}

func TestLoginStoresToken(t *testing.T) {
	c := testClient(t, func(req *http.Request) *http.Response {
		require.Equal(t, "/admin/login", req.URL.Path)
		require.Equal(t, "application/json", req.Header.Get("Content-Type"))
		return jsonResponse(200, `{"token":"tok-abc","admin":{"id":1,"username":"ops","email":"ops@example.com"}}`)
	})

	admin, err := c.Auth.Login(context.Background(), "ops@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "ops", admin.Username)
	require.Equal(t, "tok-abc", c.Session().Token())
}

func TestLoginFailureStoresNothing(t *testing.T) {
	c := testClient(t, func(req *http.Request) *http.Response {
		return jsonResponse(401, `{"error":"bad credentials"}`)
	})

	_, err := c.Auth.Login(context.Background(), "ops@example.com", "wrong")
	require.Error(t, err)
	require.Empty(t, c.Session().Token())
}

func TestLogoutClearsToken(t *testing.T) {
	c := testClient(t, func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"token":"tok","admin":{"id":1}}`)
	})

	_, err := c.Auth.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, c.Session().Token())

	require.NoError(t, c.Auth.Logout())
	require.Empty(t, c.Session().Token())
}

func TestSubsequentRequestsCarryLoginToken(t *testing.T) {
	var authHeader string
	step := 0
	c := testClient(t, func(req *http.Request) *http.Response {
		step++
		if step == 1 {
			return jsonResponse(200, `{"token":"tok-xyz","admin":{"id":1}}`)
		}
		authHeader = req.Header.Get("Authorization")
		return jsonResponse(200, `[]`)
	})

	_, err := c.Auth.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	_, err = c.Projects.All(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-xyz", authHeader)
}
