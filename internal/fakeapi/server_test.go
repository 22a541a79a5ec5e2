package fakeapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *Server {
	t.Helper()
	srv := NewServer()
	require.NoError(t, srv.Start())
	t.Cleanup(func() { srv.Stop() })
	return srv
}

func TestLoginIssuesToken(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Post(srv.URL()+"/admin/login", "application/json",
		strings.NewReader(`{"email":"admin@example.com","password":"secret"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Post(srv.URL()+"/admin/login", "application/json",
		strings.NewReader(`{"email":"admin@example.com","password":"nope"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateCoercesFieldTypes(t *testing.T) {
	srv := startServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("domainId", "3")
	mw.WriteField("title", "Notes")
	mw.WriteField("isActive", "1")
	fw, _ := mw.CreateFormFile("file", "notes.pdf")
	fw.Write([]byte("12345"))
	mw.Close()

	resp, err := http.Post(srv.URL()+"/materials", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rec map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, float64(3), rec["domainId"])
	assert.Equal(t, true, rec["isActive"])
	assert.Equal(t, "/uploads/notes.pdf", rec["fileUrl"])
	assert.Equal(t, float64(5), rec["fileSize"])
}

func TestStubInterceptsRoute(t *testing.T) {
	srv := startServer(t)
	srv.AddStub(Stub{Method: http.MethodGet, PathPrefix: "/domains", StatusCode: http.StatusServiceUnavailable, Body: "{}"})

	resp, err := http.Get(srv.URL() + "/domains/admin/all")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	srv.ClearStubs()
	resp, err = http.Get(srv.URL() + "/domains/admin/all")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSeededRecordIsDetachedFromStore(t *testing.T) {
	srv := startServer(t)

	seeded := srv.Seed("domains", Record{"title": "Web Dev", "isActive": true})
	seeded["title"] = "clobbered"

	resp, err := http.Get(srv.URL() + "/domains/admin/all")
	require.NoError(t, err)
	defer resp.Body.Close()

	var rows []Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Web Dev", rows[0]["title"], "mutating the returned record must not touch the store")

	rows[0]["title"] = "also clobbered"
	resp2, err := http.Get(srv.URL() + "/domains/admin/all")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var again []Record
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&again))
	assert.Equal(t, "Web Dev", again[0]["title"])
}

func TestConcurrentListAndUpdate(t *testing.T) {
	srv := startServer(t)
	seeded := srv.Seed("courses", Record{"title": "Go Basics", "isActive": true})
	id := strconv.FormatInt(int64(seeded["id"].(float64)), 10)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			mw.WriteField("title", "Go Basics "+strconv.Itoa(i))
			mw.Close()
			req, _ := http.NewRequest(http.MethodPut, srv.URL()+"/courses/"+id, &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			resp, err := http.DefaultClient.Do(req)
			if err == nil {
				resp.Body.Close()
			}
		}
	}()

	for i := 0; i < 50; i++ {
		resp, err := http.Get(srv.URL() + "/courses/admin/all")
		require.NoError(t, err)
		var rows []Record
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
		resp.Body.Close()
		require.Len(t, rows, 1)
	}
	<-done
}
