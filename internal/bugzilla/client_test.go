package bugzilla

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/bug", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "api-key-123", r.Header.Get("X-BUGZILLA-API-KEY"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Websites", body["product"])
		assert.Equal(t, "Other", body["component"])
		assert.Equal(t, "defect", body["type"])
		assert.Equal(t, []interface{}{"websites-security"}, body["groups"])

		fmt.Fprint(w, `{"id": 777}`)
	}))
	defer server.Close()

	client := New(server.URL, "api-key-123")
	bugID, err := client.CreateBug(Issue{
		Product:   "Websites",
		Component: "Other",
		Groups:    []string{"websites-security"},
		Summary:   "[HackerOne] XSS in search",
		Type:      "defect",
	})
	require.NoError(t, err)
	assert.Equal(t, 777, bugID)
	assert.Equal(t, server.URL+"/show_bug.cgi?id=777", client.BugURL(777))
}

func TestCreateBugFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": true, "message": "invalid product"}`)
	}))
	defer server.Close()

	client := New(server.URL, "api-key-123")
	_, err := client.CreateBug(Issue{Summary: "bad"})
	assert.ErrorContains(t, err, "400")
}

func TestAttachFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "poc.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("attachment-bytes"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/bug/777/attachment", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "poc.txt", body["file_name"])
		assert.Equal(t, "text/plain", body["content_type"])

		decoded, err := base64.StdEncoding.DecodeString(body["data"].(string))
		require.NoError(t, err)
		assert.Equal(t, "attachment-bytes", string(decoded))

		fmt.Fprint(w, `{"ids": [123]}`)
	}))
	defer server.Close()

	client := New(server.URL, "api-key-123")
	err := client.AttachFile(777, filePath, "poc.txt", "text/plain")
	require.NoError(t, err)
}
