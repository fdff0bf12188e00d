package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/tokencss"
)

const sampleExport = `{
  "collections": [
    {

      "id": "C:1",
      "name": "Space - Foundations",
      "modes": [
        {"id": "1:0", "name": "Mobile"},
        {"id": "1:1", "name": "Desktop"}
      ],
      "variables": [
        {
          "id": "V:1",
          "name": "space/fixed/1",
          "type": "float",
          "values": {"1:0": 8, "1:1": 12}
        },
        {
          "id": "V:2",
          "name": "space/scaled/1",
          "type": "float",
          "description": "Tracks the base spacing step",
          "values": {"1:0": 8, "1:1": {"alias": "V:1"}}
        },
        {
          "id": "V:3",
          "name": "surface/raised",
          "type": "color",
          "values": {"1:0": {"r": 1, "g": 0.5, "b": 0}}
        },
        {
          "id": "V:4",
          "name": "grid/visible",
          "type": "boolean",
          "values": {"1:0": true}
        }
      ]
    }
  ],
  "textStyles": [
    {
      "name": "Heading/Display",
      "properties": {
        "size": {"variable": "V:1"},
        "weight": {"value": "bold"},
        "line-height": {"value": 1.2, "unit": "ratio"}
      }
    }
  ]
}`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadGraph(t *testing.T) {
	graph, err := loadGraph(writeSample(t, sampleExport))
	require.NoError(t, err)

	require.Len(t, graph.Collections, 1)
	col := graph.Collections[0]
	assert.Equal(t, "C:1", col.ID)
	assert.Equal(t, "Space - Foundations", col.Name)
	require.Len(t, col.Modes, 2)
	assert.Equal(t, "Mobile", col.Modes[0].Name)
	require.Len(t, col.Variables, 4)

	fixed := col.Variables[0]
	assert.Equal(t, tokencss.TypeFloat, fixed.Type)
	assert.Equal(t, tokencss.KindFloat, fixed.Values["1:0"].Kind)
	assert.Equal(t, 8.0, fixed.Values["1:0"].Float)

	scaled := col.Variables[1]
	assert.Equal(t, "Tracks the base spacing step", scaled.Description)
	assert.Equal(t, tokencss.KindAlias, scaled.Values["1:1"].Kind)
	assert.Equal(t, "V:1", scaled.Values["1:1"].Alias)

	color := col.Variables[2]
	assert.Equal(t, tokencss.KindColor, color.Values["1:0"].Kind)
	assert.Equal(t, 0.5, color.Values["1:0"].Color.G)
	// Absent alpha defaults to opaque.
	assert.Equal(t, 1.0, color.Values["1:0"].Color.A)

	boolean := col.Variables[3]
	assert.Equal(t, tokencss.KindBool, boolean.Values["1:0"].Kind)
	assert.True(t, boolean.Values["1:0"].Bool)

	require.Len(t, graph.TextStyles, 1)
	style := graph.TextStyles[0]
	assert.Equal(t, "Heading/Display", style.Name)
	assert.Equal(t, "V:1", style.Properties["size"].Variable)
	assert.Equal(t, "bold", style.Properties["weight"].Str)
	assert.True(t, style.Properties["line-height"].HasNum)
	assert.Equal(t, "ratio", style.Properties["line-height"].Unit)
}

func TestLoadGraph_InvalidJSON(t *testing.T) {
	_, err := loadGraph(writeSample(t, "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestLoadGraph_MissingFile(t *testing.T) {
	_, err := loadGraph(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadGraph_EndToEnd(t *testing.T) {
	graph, err := loadGraph(writeSample(t, sampleExport))
	require.NoError(t, err)

	result, err := tokencss.Generate(graph, tokencss.Config{})
	require.NoError(t, err)
	assert.Contains(t, result.CSS, "--space-fixed-1: clamp(")
	assert.Contains(t, result.CSS, "#ff8000")
}