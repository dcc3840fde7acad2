package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc_DescribesEveryRoute(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths               map[string]map[string]json.RawMessage `json:"paths"`
		SecurityDefinitions map[string]json.RawMessage           `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Creative Sync API", doc.Info.Title)
	assert.Contains(t, doc.SecurityDefinitions, "ApiKeyAuth")

	routes := map[string]string{
		"/feed/process":       "post",
		"/feed/cleanup":       "post",
		"/feed/plan":          "get",
		"/logo/creative/{id}": "post",
		"/logo/url":           "post",
		"/logo/drive/{id}":    "post",
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, method := range routes {
		assert.Contains(t, doc.Paths[path], method, path)
	}
}
