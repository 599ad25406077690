package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFieldsFullDocument(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	text := "John Smith\njohn.smith@acme.com\n+32 470 12 34 56"

	f := e.ExtractFields(text)

	require.NotNil(t, f.FullName)
	assert.Equal(t, "John Smith", *f.FullName)
	require.NotNil(t, f.Email)
	assert.Equal(t, "john.smith@acme.com", *f.Email)
	require.NotNil(t, f.Phone)
	assert.Equal(t, 100, f.Confidence)
}

func TestExtractFieldsConfidenceIsAdditive(t *testing.T) {
	e := NewHeuristicExtractor(nil)

	f := e.ExtractFields("reach me at jane@corp.io")
	assert.Nil(t, f.FullName)
	require.NotNil(t, f.Email)
	assert.Nil(t, f.Phone)
	assert.Equal(t, 40, f.Confidence)

	f = e.ExtractFields("")
	assert.Equal(t, 0, f.Confidence)
}

func TestExtractEmailSkipsPlaceholders(t *testing.T) {
	e := NewHeuristicExtractor(nil)

	f := e.ExtractFields("contact test@example.com or jane.doe@corp.io")
	require.NotNil(t, f.Email)
	assert.Equal(t, "jane.doe@corp.io", *f.Email)

	// every match filtered: fall back to the first raw match
	f = e.ExtractFields("contact test@example.com only")
	require.NotNil(t, f.Email)
	assert.Equal(t, "test@example.com", *f.Email)

	// "test@" is a placeholder marker anywhere in the address, not just at
	// the start
	f = e.ExtractFields("contact my.test@corp.io or jane.doe@corp.io")
	require.NotNil(t, f.Email)
	assert.Equal(t, "jane.doe@corp.io", *f.Email)
}

func TestExtractPhoneRequiresEightDigits(t *testing.T) {
	e := NewHeuristicExtractor(nil)

	f := e.ExtractFields("tel 12 34 56")
	assert.Nil(t, f.Phone)

	f = e.ExtractFields("tel +32 470 12 34 56")
	require.NotNil(t, f.Phone)
}

func TestExtractNameSkipsSectionHeaders(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	text := "CURRICULUM VITAE\nJohn Smith\nExperience\nAcme Corp"

	f := e.ExtractFields(text)
	require.NotNil(t, f.FullName)
	assert.Equal(t, "John Smith", *f.FullName)
}

func TestExtractNameTitleCasesUppercaseLine(t *testing.T) {
	e := NewHeuristicExtractor(nil)

	f := e.ExtractFields("JOHN SMITH\nEngineer")
	require.NotNil(t, f.FullName)
	assert.Equal(t, "John Smith", *f.FullName)
}

func TestExtractNameLabelFallback(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	// first lines disqualified by digits, name only via explicit label
	head := strings.Repeat("ref 12345\n", 14)
	f := e.ExtractFields(head + "Name: Mary Jones")

	require.NotNil(t, f.FullName)
	assert.Equal(t, "Mary Jones", *f.FullName)
}

func TestExtractNameRejectsLinesWithContactNoise(t *testing.T) {
	e := NewHeuristicExtractor(nil)

	f := e.ExtractFields("john@corp.io\nwww.linkedin.com/in/john")
	assert.Nil(t, f.FullName)
}
