package frontiers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

// mockAuthenticator implements Authenticator for testing
type mockAuthenticator struct {
	token *oauth2.Token
	err   error
}

func (m *mockAuthenticator) GetValidToken(ctx context.Context) (*oauth2.Token, error) {
	return m.token, m.err
}

func testToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: "test-token",
		Expiry:      time.Now().Add(time.Hour),
	}
}

func TestNewClient(t *testing.T) {
	token := testToken()

	client := NewClient(token, "http://localhost:8080/")

	if client == nil {
		t.Fatal("Expected non-nil client")
	}
	if client.token != token {
		t.Error("Expected token to be set correctly")
	}
	if client.baseURL != "http://localhost:8080" {
		t.Errorf("Expected trailing slash trimmed from base URL, got %q", client.baseURL)
	}
	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}
	if client.auth != nil {
		t.Error("Expected auth to be nil for regular client")
	}
}

func TestNewClientWithAuthenticator(t *testing.T) {
	auth := &mockAuthenticator{token: testToken()}

	client := NewClientWithAuthenticator(auth, "http://localhost:8080")

	if client.token != nil {
		t.Error("Expected token to be nil initially for authenticator client")
	}
	if client.auth == nil {
		t.Error("Expected authenticator to be set")
	}
}

func TestDoSendsBearerAndAccept(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(testToken(), srv.URL)
	body, err := client.Do(context.Background(), Request{Method: "GET", Path: "/api/systemInfo"})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer token header, got %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Expected Accept application/json, got %q", gotAccept)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestDoWriteUsesQueryParameters(t *testing.T) {
	var gotMethod, gotPath, gotEmail string
	var gotBodyLen int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotEmail = r.URL.Query().Get("email")
		gotBodyLen = r.ContentLength
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(testToken(), srv.URL)
	_, err := client.Do(context.Background(), DeleteAdminRequest("instructor1@example.com"))
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotMethod != "DELETE" {
		t.Errorf("Expected DELETE, got %q", gotMethod)
	}
	if gotPath != "/api/admin/admins" {
		t.Errorf("Expected /api/admin/admins, got %q", gotPath)
	}
	if gotEmail != "instructor1@example.com" {
		t.Errorf("Expected email query parameter, got %q", gotEmail)
	}
	if gotBodyLen > 0 {
		t.Errorf("Expected no request body on a query-parameter write, got %d bytes", gotBodyLen)
	}
}

func TestDoMultipartUpload(t *testing.T) {
	var gotCourseID, gotFilename, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCourseID = r.URL.Query().Get("courseId")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("Expected multipart form: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("Expected file part: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotFilename = hdr.Filename
		buf := make([]byte, hdr.Size)
		n, _ := f.Read(buf)
		gotContent = string(buf[:n])
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	csv := []byte("Enrl Cd,Perm #,Grade\n12345,7654321,A\n")
	client := NewClient(testToken(), srv.URL)
	_, err := client.Do(context.Background(), UploadRosterCSVRequest(42, "egrades.csv", csv))
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if gotCourseID != "42" {
		t.Errorf("Expected courseId=42, got %q", gotCourseID)
	}
	if gotFilename != "egrades.csv" {
		t.Errorf("Expected filename egrades.csv, got %q", gotFilename)
	}
	if gotContent != string(csv) {
		t.Errorf("Expected CSV content round-trip, got %q", gotContent)
	}
}

func TestDoReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"forbidden"}`))
	}))
	defer srv.Close()

	client := NewClient(testToken(), srv.URL)
	_, err := client.Do(context.Background(), Request{Method: "DELETE", Path: "/api/courses"})
	if err == nil {
		t.Fatal("Expected error for 403 response")
	}
	if !IsStatus(err, http.StatusForbidden) {
		t.Errorf("Expected IsStatus 403 to match, got %v", err)
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Error("Expected IsStatus 404 not to match")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("Expected status code in message, got %q", err.Error())
	}
}

func TestDoAcquiresTokenOnDemand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClientWithAuthenticator(&mockAuthenticator{token: testToken()}, srv.URL)
	if _, err := client.Do(context.Background(), Request{Method: "GET", Path: "/api/courses/all"}); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if client.token == nil {
		t.Error("Expected token cached after first acquisition")
	}
}

func TestDoJSONParsesPagedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"id": 7, "status": "complete"}},
			"page":    map[string]any{"size": 10, "number": 0, "totalElements": 1, "totalPages": 1},
		})
	}))
	defer srv.Close()

	client := NewClient(testToken(), srv.URL)
	page, err := client.JobsPaged(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("JobsPaged failed: %v", err)
	}
	if len(page.Content) != 1 || page.Content[0].ID != 7 {
		t.Errorf("Unexpected content: %+v", page.Content)
	}
	if page.Page.TotalPages != 1 {
		t.Errorf("Expected totalPages 1, got %d", page.Page.TotalPages)
	}
}

func TestDoJSONParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(testToken(), srv.URL)
	var out []Course
	err := client.DoJSON(context.Background(), Request{Method: "GET", Path: "/api/courses/all"}, &out)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse response") {
		t.Errorf("Unexpected error: %v", err)
	}
}
