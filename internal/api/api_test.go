package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workjournal/workjournal/internal/model"
	"github.com/workjournal/workjournal/internal/platform/logger"
	"github.com/workjournal/workjournal/internal/store/sqlite"
)

// newTestServer serves the full router over a throwaway sqlite database.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	st, err := sqlite.New(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	srv := httptest.NewServer(NewRouter(st, logger.New("work-journal-test")))
	t.Cleanup(srv.Close)

	// Redirects stay visible so the create flow can be asserted.
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client
}

func postEntry(t *testing.T, client *http.Client, base string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(base+"/", form)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestIndexEmptyShowsForm(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := body(t, resp)
	require.Contains(t, out, "Create an entry")
	require.NotContains(t, out, "Week of")
}

func TestCreateEntryRedirectsAndLists(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postEntry(t, client, srv.URL, url.Values{
		"date":     {"2023-01-30"},
		"category": {model.CategoryWork},
		"text":     {"finished the report"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
	_ = resp.Body.Close()

	resp2 := postEntry(t, client, srv.URL, url.Values{
		"date":     {"2023-02-02"},
		"category": {model.CategoryLearning},
		"text":     {"read up on WAL mode"},
	})
	require.Equal(t, http.StatusSeeOther, resp2.StatusCode)
	_ = resp2.Body.Close()

	listing, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	out := body(t, listing)

	// Mon 2023-01-30 and Thu 2023-02-02 share the week of Sun 2023-01-29.
	require.Equal(t, 1, strings.Count(out, "Week of"))
	require.Contains(t, out, "Week of 2023-01-29")
	require.Contains(t, out, "finished the report")
	require.Contains(t, out, "read up on WAL mode")
	require.Contains(t, out, "Work:")
	require.Contains(t, out, "Learnings:")
	require.NotContains(t, out, "Interesting things:")
}

func TestCreateEntryMissingTextIsBadRequest(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postEntry(t, client, srv.URL, url.Values{
		"date":     {"2023-01-30"},
		"category": {model.CategoryWork},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := body(t, resp)
	require.Contains(t, out, "text is required")
}

func TestCreateEntryUnparseableDateIsBadRequest(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postEntry(t, client, srv.URL, url.Values{
		"date":     {"30/01/2023"},
		"category": {model.CategoryWork},
		"text":     {"x"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := body(t, resp)
	require.Contains(t, out, "date")
}

func TestUncategorizedEntriesHiddenButCounted(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postEntry(t, client, srv.URL, url.Values{
		"date":     {"2023-01-30"},
		"category": {"chore"},
		"text":     {"watered the plants"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()

	listing, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	out := body(t, listing)
	require.NotContains(t, out, "watered the plants")
	require.Contains(t, out, "1 uncategorized entries are not shown")
}

func TestEditEntryShowsEntry(t *testing.T) {
	srv, client := newTestServer(t)

	resp := postEntry(t, client, srv.URL, url.Values{
		"date":     {"2023-02-02"},
		"category": {model.CategoryInterestingThing},
		"text":     {"octopuses have three hearts"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	_ = resp.Body.Close()

	edit, err := client.Get(srv.URL + "/entries/1/edit")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, edit.StatusCode)
	out := body(t, edit)
	require.Contains(t, out, "Editing entry 1")
	require.Contains(t, out, "2023-02-02")
	require.Contains(t, out, "octopuses have three hearts")
}

func TestEditEntryMalformedIDIsNotFound(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/entries/abc/edit")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEditEntryUnknownIDIsNotFound(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/entries/9999/edit")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	srv, client := newTestServer(t)

	resp, err := client.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), `"status":"UP"`)
}
