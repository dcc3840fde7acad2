package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := New(context.Background(), srv.Client(), "sheet-1", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return s
}

func TestNew_RequiresSpreadsheetID(t *testing.T) {
	_, err := New(context.Background(), http.DefaultClient, "")
	assert.Error(t, err)
}

func TestStore_GetRange(t *testing.T) {
	var gotPath, gotRender string
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRender = r.URL.Query().Get("valueRenderOption")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"range":  "Feed!A2:N3",
			"values": [][]any{{"Success", "Row one"}, {"", "Row two"}},
		})
	})

	values, err := s.GetRange(context.Background(), "Feed", 2, 1, 0, 14)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(gotPath, "/v4/spreadsheets/sheet-1/values/Feed!A2:N"), gotPath)
	assert.Equal(t, "UNFORMATTED_VALUE", gotRender)
	require.Len(t, values, 2)
	assert.Equal(t, "Row two", values[1][1])
}

func TestStore_SetRange(t *testing.T) {
	var body map[string]any
	var method, input string
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		input = r.URL.Query().Get("valueInputOption")
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{}`))
	})

	err := s.SetRange(context.Background(), "Feed", 4, 1, [][]any{{"Success", "Name"}})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "RAW", input)
	assert.Equal(t, "Feed!A4:B4", body["range"])
}

func TestStore_ErrorsAreWrapped(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"denied"}}`))
	})

	_, err := s.GetCell(context.Background(), "Config", 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config!B1")
}
