package apicontract_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/Chinmayee2524/inventory-tracker/api-contract"
)

func TestSpecIsValidOpenAPI(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	itemsPath := doc.Paths.Find("/api/items")
	require.NotNil(t, itemsPath)
	assert.NotNil(t, itemsPath.Get)
	assert.NotNil(t, itemsPath.Post)

	itemPath := doc.Paths.Find("/api/items/{id}")
	require.NotNil(t, itemPath)
	assert.NotNil(t, itemPath.Get)
	assert.NotNil(t, itemPath.Put)
	assert.NotNil(t, itemPath.Delete)
}
