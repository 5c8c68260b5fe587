package harness_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorcode-go/subiso/internal/harness"
)

func TestRunFindsTriangleInK4(t *testing.T) {
	in := harness.RunInput{
		Host:       "n 4 0 1 0 2 0 3 1 2 1 3 2 3",
		Pattern:    "n 3 0 1 0 2 1 2",
		Seed:       7,
		Iterations: 60,
	}

	report, err := harness.Run(in)
	require.NoError(t, err)
	assert.Equal(t, 4, report.HostVertices)
	assert.Equal(t, 3, report.PatternVertices)
	assert.Equal(t, 4, report.MatchCount)
	assert.Len(t, report.Matches, 4)
}

func TestRunPropagatesMalformedInput(t *testing.T) {
	in := harness.RunInput{Host: "garbage", Pattern: "n 1"}
	_, err := harness.Run(in)
	assert.ErrorIs(t, err, harness.ErrMalformedInput)
}

func TestRunPropagatesOversizedPattern(t *testing.T) {
	big := "n 25"
	in := harness.RunInput{Host: big, Pattern: big}
	_, err := harness.Run(in)
	require.Error(t, err)
}

func TestWriteTextAndJSONRenderMatchCount(t *testing.T) {
	in := harness.RunInput{
		Host:       "n 4 0 1 0 2 0 3 1 2 1 3 2 3",
		Pattern:    "n 3 0 1 0 2 1 2",
		Seed:       7,
		Iterations: 60,
	}
	report, err := harness.Run(in)
	require.NoError(t, err)

	var text bytes.Buffer
	harness.WriteText(&text, report)
	assert.True(t, strings.Contains(text.String(), "matches found: 4"))

	var js bytes.Buffer
	require.NoError(t, harness.WriteJSON(&js, report))
	assert.True(t, strings.Contains(js.String(), `"match_count": 4`))
}
