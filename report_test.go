package tokencss

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	return &Result{
		Collections:  3,
		Variables:    42,
		Declarations: 57,
		Diagnostics:  []string{`broken alias: "gap/small" references missing variable V:9`},
		ViewportCandidates: []Candidate{
			{Name: "size-hero-width-max", Reason: "width token spanning viewport scale"},
		},
		ProportionCandidates: []Candidate{
			{Name: "grid-span-half", Reason: "grid proportion name", Columns: 6},
		},
		NonLinearCandidates: []Candidate{
			{Name: "size-display", Reason: "interior breakpoints deviate from linear interpolation", Deviation: 0.15},
		},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, sampleResult(), false)
	out := buf.String()

	assert.Contains(t, out, "Collections: 3")
	assert.Contains(t, out, "Variables:   42")
	assert.Contains(t, out, "Declarations: 57")
	assert.Contains(t, out, "1 diagnostic")
	assert.Contains(t, out, "broken alias")
	assert.Contains(t, out, "--size-hero-width-max")
	assert.Contains(t, out, "--grid-span-half")
	assert.Contains(t, out, "6 columns")
	assert.Contains(t, out, "--size-display")
	assert.Contains(t, out, "deviation 15.0%")
	assert.Contains(t, out, "Hint:")
}

func TestWriteReport_CleanRun(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, &Result{Collections: 1, Variables: 2, Declarations: 2}, false)
	out := buf.String()

	assert.NotContains(t, out, "diagnostic")
	assert.NotContains(t, out, "candidates")
	assert.NotContains(t, out, "Hint:")
}

func TestWriteReport_NoColorCodes(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, sampleResult(), false)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, 3, output.Summary.Collections)
	assert.Equal(t, 42, output.Summary.Variables)
	assert.Equal(t, 57, output.Summary.Declarations)
	assert.Equal(t, 1, output.Summary.Diagnostics)
	require.Len(t, output.Candidates.Proportion, 1)
	assert.Equal(t, 6, output.Candidates.Proportion[0].Columns)
	require.Len(t, output.Candidates.NonLinear, 1)
	assert.InDelta(t, 0.15, output.Candidates.NonLinear[0].Deviation, 0.0001)
}

func TestWriteJSON_EmptyListsNotNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Result{}))

	out := buf.String()
	assert.NotContains(t, out, "null")
	assert.True(t, strings.Contains(out, `"viewport_relative": []`))
	assert.True(t, strings.Contains(out, `"diagnostics": []`))
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 diagnostic", pluralizeCount(1, "diagnostic", "diagnostics"))
	assert.Equal(t, "2 diagnostics", pluralizeCount(2, "diagnostic", "diagnostics"))
}
