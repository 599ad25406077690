package fields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsArtifactMatchesSchema(t *testing.T) {
	schema := BuildFieldsJSONSchema()

	name := "John Smith"
	email := "john@acme.com"
	phone := "+32470123456"
	full, err := json.Marshal(Fields{FullName: &name, Email: &email, Phone: &phone, Confidence: 100})
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, full))

	empty, err := json.Marshal(Fields{})
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, empty))
}

func TestSchemaRejectsBadArtifacts(t *testing.T) {
	schema := BuildFieldsJSONSchema()

	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"confidence":37}`)), "not a weight sum")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"confidence":120}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{}`)), "confidence required")
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"confidence":20,"extra":true}`)))
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"confidence":40,"email":"not-an-email"}`)))
}
