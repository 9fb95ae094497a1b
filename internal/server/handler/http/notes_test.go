package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createNote(t *testing.T, ts *httptest.Server, token, title string) noteResponse {
	t.Helper()

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/notes/", token, map[string]any{
		"title": title, "body": "body of " + title, "tags": []string{"work"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note noteResponse
	decodeBody(t, resp, &note)
	return note
}

func registeredUserID(t *testing.T, ts *httptest.Server, token string) string {
	t.Helper()

	// Any owned note carries the owner id; mint one to discover it.
	note := createNote(t, ts, token, "probe")
	resp := doJSON(t, http.MethodDelete, ts.URL+"/api/notes/"+note.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	return note.OwnerID
}

func TestNoteCRUD(t *testing.T) {
	ts := newTestServer(t)
	pair := registerAndLogin(t, ts, "alice")

	note := createNote(t, ts, pair.AccessToken, "groceries")
	assert.Equal(t, "groceries", note.Title)
	assert.NotEmpty(t, note.ID)
	assert.NotEmpty(t, note.OwnerID)

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/notes/"+note.ID, pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched noteResponse
	decodeBody(t, resp, &fetched)
	assert.Equal(t, note.ID, fetched.ID)

	resp = doJSON(t, http.MethodPut, ts.URL+"/api/notes/"+note.ID, pair.AccessToken, map[string]any{
		"title": "groceries v2", "body": "updated", "tags": []string{"home"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated noteResponse
	decodeBody(t, resp, &updated)
	assert.Equal(t, "groceries v2", updated.Title)
	assert.Equal(t, []string{"home"}, updated.Tags)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/notes/"+note.ID, pair.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/notes/"+note.ID, pair.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestNoteCreateRequiresTitle(t *testing.T) {
	ts := newTestServer(t)
	pair := registerAndLogin(t, ts, "alice")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/notes/", pair.AccessToken, map[string]any{
		"title": "", "body": "no title",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestNoteListShowsOwnedAndShared(t *testing.T) {
	ts := newTestServer(t)
	owner := registerAndLogin(t, ts, "alice")
	other := registerAndLogin(t, ts, "bob")
	bobID := registeredUserID(t, ts, other.AccessToken)

	mine := createNote(t, ts, other.AccessToken, "bob's own")
	shared := createNote(t, ts, owner.AccessToken, "shared plan")
	createNote(t, ts, owner.AccessToken, "private plan")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/notes/"+shared.ID+"/collaborators/", owner.AccessToken, map[string]string{
		"user_id": bobID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/notes/", other.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []noteResponse
	decodeBody(t, resp, &list)

	ids := make([]string, 0, len(list))
	for _, n := range list {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{mine.ID, shared.ID}, ids)
}

func TestCollaboratorAccess(t *testing.T) {
	ts := newTestServer(t)
	owner := registerAndLogin(t, ts, "alice")
	collab := registerAndLogin(t, ts, "bob")
	stranger := registerAndLogin(t, ts, "carol")
	bobID := registeredUserID(t, ts, collab.AccessToken)

	note := createNote(t, ts, owner.AccessToken, "shared")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/notes/"+note.ID+"/collaborators/", owner.AccessToken, map[string]string{
		"user_id": bobID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		want   int
	}{
		{"collaborator reads", http.MethodGet, "", collab.AccessToken, nil, http.StatusOK},
		{"collaborator updates", http.MethodPut, "", collab.AccessToken, map[string]any{"title": "edited", "body": "x"}, http.StatusOK},
		{"collaborator cannot delete", http.MethodDelete, "", collab.AccessToken, nil, http.StatusForbidden},
		{"stranger cannot read", http.MethodGet, "", stranger.AccessToken, nil, http.StatusForbidden},
		{"stranger cannot update", http.MethodPut, "", stranger.AccessToken, map[string]any{"title": "x", "body": "y"}, http.StatusForbidden},
		{"stranger cannot delete", http.MethodDelete, "", stranger.AccessToken, nil, http.StatusForbidden},
		{"stranger cannot list collaborators", http.MethodGet, "/collaborators/", stranger.AccessToken, nil, http.StatusForbidden},
		{"collaborator cannot list collaborators", http.MethodGet, "/collaborators/", collab.AccessToken, nil, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, tc.method, ts.URL+"/api/notes/"+note.ID+tc.path, tc.token, tc.body)
			assert.Equal(t, tc.want, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestCollaboratorLifecycle(t *testing.T) {
	ts := newTestServer(t)
	owner := registerAndLogin(t, ts, "alice")
	collab := registerAndLogin(t, ts, "bob")
	bobID := registeredUserID(t, ts, collab.AccessToken)

	note := createNote(t, ts, owner.AccessToken, "shared")
	collabURL := fmt.Sprintf("%s/api/notes/%s/collaborators/", ts.URL, note.ID)

	// Granting twice conflicts, granting to an unknown user is 404.
	resp := doJSON(t, http.MethodPost, collabURL, owner.AccessToken, map[string]string{"user_id": bobID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, collabURL, owner.AccessToken, map[string]string{"user_id": bobID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, collabURL, owner.AccessToken, map[string]string{"user_id": "no-such-user"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, collabURL, owner.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var grants []collaboratorResponse
	decodeBody(t, resp, &grants)
	require.Len(t, grants, 1)
	assert.Equal(t, bobID, grants[0].UserID)

	// Revoke, then the collaborator is locked out and a second revoke
	// is 404.
	resp = doJSON(t, http.MethodDelete, collabURL+bobID, owner.AccessToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/notes/"+note.ID, collab.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, collabURL+bobID, owner.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
