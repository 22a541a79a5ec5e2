// Package fakeapi provides a fake admin API server for testing. It keeps
// every entity collection in memory, speaks the same JSON-out and
// multipart-in dialect as the real backend, and can inject failures per
// route to exercise error paths in the SDK and the console.
//
// There is no executable for this package; it is started from tests via
// Start and torn down with Stop.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Entities the server accepts, matching the real API's route table.
var entities = []string{
	"domains", "courses", "projects", "materials",
	"testimonials", "videos", "trainer-about",
}

// Record is one stored row. Values are JSON-shaped: numbers float64,
// booleans bool, everything else string.
type Record map[string]any

// clone copies the record so stored rows never escape the mutex. Values
// are scalars, so a shallow copy is a full copy.
func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Stub overrides one route with a fixed response, used to inject
// failures. Method and PathPrefix select the requests it applies to.
type Stub struct {
	Method     string
	PathPrefix string
	StatusCode int
	Body       string
	// Delay is applied before responding, to exercise timeouts and
	// cancellation in the caller.
	Delay time.Duration
}

// Credentials the login route accepts.
type Credentials struct {
	Email    string
	Password string
}

// Server is the fake admin API. Configure it before Start; the handlers
// themselves are safe for concurrent use.
type Server struct {
	Creds Credentials
	// Secret signs issued tokens. Tests that need a recognizable
	// signature can set it; the default is fine otherwise.
	Secret []byte
	// RequireAuth makes every route but login demand a bearer token the
	// server issued.
	RequireAuth bool

	mu     sync.Mutex
	tables map[string][]Record
	nextID int64
	stubs  []Stub
	tokens map[string]bool

	listener net.Listener
	server   *http.Server
}

func NewServer() *Server {
	s := &Server{
		Creds:  Credentials{Email: "admin@example.com", Password: "secret"},
		Secret: []byte("fakeapi-secret"),
		tables: map[string][]Record{},
		tokens: map[string]bool{},
	}
	for _, e := range entities {
		s.tables[e] = nil
	}
	return s
}

// Seed inserts a copy of the record, assigning an id if absent. The
// returned record is detached from server state.
func (s *Server) Seed(entity string, rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec = rec.clone()
	if _, ok := rec["id"]; !ok {
		s.nextID++
		rec["id"] = float64(s.nextID)
	}
	s.tables[entity] = append(s.tables[entity], rec)
	return rec.clone()
}

// AddStub registers a canned response for matching requests. Stubs are
// checked in registration order before normal handling.
func (s *Server) AddStub(st Stub) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs = append(s.stubs, st)
}

// ClearStubs removes all registered stubs.
func (s *Server) ClearStubs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs = nil
}

// Start listens on an ephemeral localhost port.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	s.listener = ln
	s.server = &http.Server{Handler: s.handler()}
	go s.server.Serve(ln)
	return nil
}

// Stop shuts the listener down.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	return s.server.Close()
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/login", s.handleLogin)
	for _, e := range entities {
		entity := e
		mux.HandleFunc("GET /"+entity+"/admin/all", s.guard(func(w http.ResponseWriter, r *http.Request) {
			s.handleListAll(w, entity)
		}))
		mux.HandleFunc("GET /"+entity, s.guard(func(w http.ResponseWriter, r *http.Request) {
			s.handleListActive(w, r, entity)
		}))
		mux.HandleFunc("GET /"+entity+"/{id}", s.guard(func(w http.ResponseWriter, r *http.Request) {
			s.handleGet(w, r, entity)
		}))
		mux.HandleFunc("POST /"+entity, s.guard(func(w http.ResponseWriter, r *http.Request) {
			s.handleCreate(w, r, entity)
		}))
		mux.HandleFunc("PUT /"+entity+"/{id}", s.guard(func(w http.ResponseWriter, r *http.Request) {
			s.handleUpdate(w, r, entity)
		}))
		mux.HandleFunc("DELETE /"+entity+"/{id}", s.guard(func(w http.ResponseWriter, r *http.Request) {
			s.handleDelete(w, r, entity)
		}))
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if stub, ok := s.matchStub(r); ok {
			if stub.Delay > 0 {
				select {
				case <-time.After(stub.Delay):
				case <-r.Context().Done():
					return
				}
			}
			w.WriteHeader(stub.StatusCode)
			fmt.Fprint(w, stub.Body)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func (s *Server) matchStub(r *http.Request) (Stub, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.stubs {
		if st.Method != "" && st.Method != r.Method {
			continue
		}
		if !strings.HasPrefix(r.URL.Path, st.PathPrefix) {
			continue
		}
		return st, true
	}
	return Stub{}, false
}

func (s *Server) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.RequireAuth {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			s.mu.Lock()
			ok := s.tokens[token]
			s.mu.Unlock()
			if !ok {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}
	if body.Email != s.Creds.Email || body.Password != s.Creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       float64(1),
		"email":    s.Creds.Email,
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(s.Secret)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}

	s.mu.Lock()
	s.tokens[token] = true
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"admin": map[string]any{"id": 1, "username": "admin", "email": s.Creds.Email},
	})
}

func (s *Server) handleListAll(w http.ResponseWriter, entity string) {
	s.mu.Lock()
	rows := make([]Record, 0, len(s.tables[entity]))
	for _, rec := range s.tables[entity] {
		rows = append(rows, rec.clone())
	}
	s.mu.Unlock()
	sortByID(rows)
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleListActive(w http.ResponseWriter, r *http.Request, entity string) {
	q := r.URL.Query()
	s.mu.Lock()
	var rows []Record
	for _, rec := range s.tables[entity] {
		if active, _ := rec["isActive"].(bool); !active {
			continue
		}
		if v := q.Get("domainId"); v != "" && numberField(rec, "domainId") != v {
			continue
		}
		if v := q.Get("courseId"); v != "" && numberField(rec, "courseId") != v {
			continue
		}
		rows = append(rows, rec.clone())
	}
	s.mu.Unlock()
	sortByID(rows)
	if rows == nil {
		rows = []Record{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request, entity string) {
	s.mu.Lock()
	rec, _ := s.findLocked(entity, r.PathValue("id"))
	if rec != nil {
		rec = rec.clone()
	}
	s.mu.Unlock()
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request, entity string) {
	rec, err := recordFromForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	s.mu.Lock()
	s.nextID++
	rec["id"] = float64(s.nextID)
	s.tables[entity] = append(s.tables[entity], rec)
	out := rec.clone()
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request, entity string) {
	patch, err := recordFromForm(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	s.mu.Lock()
	rec, _ := s.findLocked(entity, r.PathValue("id"))
	if rec != nil {
		for k, v := range patch {
			rec[k] = v
		}
		rec = rec.clone()
	}
	s.mu.Unlock()
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, entity string) {
	s.mu.Lock()
	_, idx := s.findLocked(entity, r.PathValue("id"))
	if idx >= 0 {
		s.tables[entity] = append(s.tables[entity][:idx], s.tables[entity][idx+1:]...)
	}
	s.mu.Unlock()
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (s *Server) findLocked(entity, id string) (Record, int) {
	for i, rec := range s.tables[entity] {
		if numberField(rec, "id") == id {
			return rec, i
		}
	}
	return nil, -1
}

// Fields the real backend stores as numbers; everything else posted as a
// form value stays a string, except the publish flag.
var numericFields = map[string]bool{
	"id": true, "domainId": true, "courseId": true, "displayOrder": true,
	"rating": true, "experienceYears": true, "fileSize": true,
}

// recordFromForm converts a multipart form into a JSON-shaped record.
// Uploaded files become /uploads/ URLs under the conventional keys.
func recordFromForm(r *http.Request) (Record, error) {
	if err := r.ParseMultipartForm(128 << 20); err != nil {
		return nil, fmt.Errorf("parse multipart: %w", err)
	}
	rec := Record{}
	for name, values := range r.MultipartForm.Value {
		if len(values) == 0 {
			continue
		}
		v := values[0]
		switch {
		case name == "isActive":
			rec[name] = v == "true" || v == "1"
		case numericFields[name]:
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			rec[name] = n
		default:
			rec[name] = v
		}
	}
	for name, files := range r.MultipartForm.File {
		if len(files) == 0 {
			continue
		}
		fh := files[0]
		url := "/uploads/" + fh.Filename
		switch name {
		case "image":
			rec["imageUrl"] = url
		case "file":
			rec["fileUrl"] = url
			rec["fileSize"] = float64(fh.Size)
		case "mainImage":
			rec["mainImage"] = url
		}
	}
	return rec, nil
}

func numberField(rec Record, key string) string {
	n, ok := rec[key].(float64)
	if !ok {
		return ""
	}
	return strconv.FormatInt(int64(n), 10)
}

func sortByID(rows []Record) {
	sort.Slice(rows, func(i, j int) bool {
		a, _ := rows[i]["id"].(float64)
		b, _ := rows[j]["id"].(float64)
		return a < b
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
