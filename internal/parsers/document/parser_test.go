package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
)

type city struct {
	Name       string `json:"name"`
	Population int    `json:"population"`
}

func TestRecords_Success(t *testing.T) {
	data := []byte(`[{"name":"Wellington","population":215100},{"name":"Suva","population":88271}]`)

	got, err := Records[city](data)
	require.NoError(t, err)
	assert.Equal(t, []city{
		{Name: "Wellington", Population: 215100},
		{Name: "Suva", Population: 88271},
	}, got)
}

func TestRecords_PreservesOrder(t *testing.T) {
	got, err := Records[city]([]byte(`[{"name":"b"},{"name":"a"},{"name":"c"}]`))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "c", got[2].Name)
}

func TestRecords_InvalidJSON(t *testing.T) {
	got, err := Records[city]([]byte(`not json at all`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "failed to parse json")
	assert.Nil(t, got, "no partial result on failure")
}

func TestRecords_ShapeMismatch(t *testing.T) {
	// A JSON object is not a sequence of records.
	got, err := Records[city]([]byte(`{"name":"solo"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Nil(t, got)
}

func TestRecords_ElementTypeMismatch(t *testing.T) {
	got, err := Records[city]([]byte(`[{"name":"x","population":"lots"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Nil(t, got)
}

func TestRecords_IntoDynamicMaps(t *testing.T) {
	got, err := Records[map[string]any]([]byte(`[{"a":1},{"b":true}]`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, float64(1), got[0]["a"])
}
