package list_tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandleCatalog(t *testing.T) {
	h := NewHandler(nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	names := make([]string, 0, len(resp.Tools))
	for _, tool := range resp.Tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{
		"policy_list",
		"policy_get",
		"policy_create",
		"policy_update",
		"policy_delete",
		"policy_check",
		"policy_explain",
	}, names)

	for _, tool := range resp.Tools {
		assert.NotEmpty(t, tool.Description, "tool %s has a description", tool.Name)
	}
}
