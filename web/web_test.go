package web

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"gotodo/database"
	"gotodo/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *httptest.Server {
	logger.InitLogger(logging.DEBUG)
	dbPath := "web_test.db"
	os.Remove(dbPath)
	require.NoError(t, database.InitDB(dbPath))

	s := NewServer()
	engine, err := s.initRouter()
	require.NoError(t, err)

	ts := httptest.NewServer(engine)
	t.Cleanup(func() {
		ts.Close()
		db, _ := database.GetDB().DB()
		db.Close()
		os.Remove(dbPath)
	})
	return ts
}

// newClient returns an http client with its own cookie jar, one logical
// browser session.
func newClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, rawURL string) (string, *http.Response) {
	resp, err := client.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body), resp
}

func postForm(t *testing.T, client *http.Client, rawURL string, form url.Values) (string, *http.Response) {
	resp, err := client.PostForm(rawURL, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body), resp
}

func register(t *testing.T, client *http.Client, base, username, password string) string {
	body, _ := postForm(t, client, base+"/register", url.Values{
		"username": {username},
		"password": {password},
	})
	return body
}

func login(t *testing.T, client *http.Client, base, username, password string) string {
	body, _ := postForm(t, client, base+"/login", url.Values{
		"username": {username},
		"password": {password},
	})
	return body
}

func TestAnonymousRedirectedToLogin(t *testing.T) {
	ts := setupServer(t)
	client := newClient(t)

	for _, path := range []string{"/", "/view", "/update/1", "/delete/1", "/logout"} {
		_, resp := get(t, client, ts.URL+path)
		assert.Equal(t, "/login", resp.Request.URL.Path, "GET %s should land on the login page", path)
	}
}

func TestTodoFlow(t *testing.T) {
	ts := setupServer(t)
	client := newClient(t)

	body := register(t, client, ts.URL, "alice", "pw1")
	assert.Contains(t, body, "Registration successful")

	body = login(t, client, ts.URL, "alice", "pw1")
	assert.Contains(t, body, "Logged in successfully")
	assert.Contains(t, body, "No todos yet.")

	// create
	body, _ = postForm(t, client, ts.URL+"/", url.Values{
		"title": {"Buy milk"},
		"desc":  {"2%"},
	})
	assert.Contains(t, body, "Todo added")
	assert.Contains(t, body, "Buy milk")

	body, _ = get(t, client, ts.URL+"/view")
	assert.Contains(t, body, "Buy milk")
	assert.Contains(t, body, "2%")

	// update desc only
	body, _ = postForm(t, client, ts.URL+"/update/1", url.Values{
		"title": {"Buy milk"},
		"desc":  {"whole"},
	})
	assert.Contains(t, body, "Todo updated")
	assert.Contains(t, body, "whole")
	assert.NotContains(t, body, "2%")

	// delete lands on the view page
	body, resp := get(t, client, ts.URL+"/delete/1")
	assert.Equal(t, "/view", resp.Request.URL.Path)
	assert.Contains(t, body, "Todo deleted")
	assert.NotContains(t, body, "Buy milk")

	// a second delete of the same sno hits the merged not-found path
	body, resp = get(t, client, ts.URL+"/delete/1")
	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Contains(t, body, "Todo not found")
}

func TestCreateTodoValidationFlash(t *testing.T) {
	ts := setupServer(t)
	client := newClient(t)

	register(t, client, ts.URL, "alice", "pw1")
	login(t, client, ts.URL, "alice", "pw1")

	body, _ := postForm(t, client, ts.URL+"/", url.Values{
		"title": {"Buy milk"},
		"desc":  {""},
	})
	assert.Contains(t, body, "description can not be empty")
	assert.Contains(t, body, "No todos yet.")
}

func TestDuplicateRegistration(t *testing.T) {
	ts := setupServer(t)
	client := newClient(t)

	register(t, client, ts.URL, "alice", "pw1")

	body, resp := postForm(t, client, ts.URL+"/register", url.Values{
		"username": {"alice"},
		"password": {"other"},
	})
	assert.Equal(t, "/register", resp.Request.URL.Path)
	assert.Contains(t, body, "Username is already taken")
}

func TestLoginFailure(t *testing.T) {
	ts := setupServer(t)
	client := newClient(t)

	register(t, client, ts.URL, "alice", "pw1")

	body := login(t, client, ts.URL, "alice", "wrong")
	assert.Contains(t, body, "Wrong username or password")

	// no session was established
	_, resp := get(t, client, ts.URL+"/")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestLogout(t *testing.T) {
	ts := setupServer(t)
	client := newClient(t)

	register(t, client, ts.URL, "alice", "pw1")
	login(t, client, ts.URL, "alice", "pw1")

	body, resp := get(t, client, ts.URL+"/logout")
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Logged out")

	_, resp = get(t, client, ts.URL+"/")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestOwnerIsolation(t *testing.T) {
	ts := setupServer(t)

	alice := newClient(t)
	register(t, alice, ts.URL, "alice", "pw1")
	login(t, alice, ts.URL, "alice", "pw1")
	postForm(t, alice, ts.URL+"/", url.Values{
		"title": {"Buy milk"},
		"desc":  {"2%"},
	})

	bob := newClient(t)
	register(t, bob, ts.URL, "bob", "pw2")
	login(t, bob, ts.URL, "bob", "pw2")

	// bob sees zero todos even though alice has one
	body, _ := get(t, bob, ts.URL+"/view")
	assert.NotContains(t, body, "Buy milk")
	assert.Contains(t, body, "No todos yet.")

	// bob cannot update or delete alice's todo, it reads as not found
	body, resp := get(t, bob, ts.URL+"/update/1")
	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Contains(t, body, "Todo not found")

	body, _ = get(t, bob, ts.URL+"/delete/1")
	assert.Contains(t, body, "Todo not found")

	// alice's todo is unchanged
	body, _ = get(t, alice, ts.URL+"/view")
	assert.Contains(t, body, "Buy milk")
}
