package aoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=98`,
			want:    sample{want: "98"},
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		require.True(t, ok, "comment %q", tt.comment)
		assert.Equal(t, tt.want, got)
	}

	_, ok := parseSample("// D3p1 solves part 1.")
	assert.False(t, ok)
}

const sampleSrc = `package main

/*
want=117

98
19
*/
func (s solver) D1p1() any { return nil }

// want=42
func (s solver) D1p2() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractAllSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go":      {Data: []byte(sampleSrc)},
		"day01_test.go": {Data: []byte("this is not go")},
		"README.md":     {Data: []byte("# notes")},
	}
	samples, err := extractAllSamples(src)
	require.NoError(t, err)
	assert.Equal(t, map[string]sample{
		"D1p1": {want: "117", input: "98\n19\n"},
		"D1p2": {want: "42", input: "98\n19\n"},
	}, samples)

	_, err = extractAllSamples(fstest.MapFS{"bad.go": {Data: []byte("package")}})
	assert.Error(t, err)
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D2p1() any { return len(s.Lines()) }

func (s testSolver) D2p2() (any, error) {
	if s.SampleMode {
		return "ok", nil
	}
	return nil, errBoom
}

func (s testSolver) D10p1() any { return "x" }

func (s testSolver) NotAPart() any { return nil }

var errBoom = errors.New("boom")

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	require.NoError(t, err)
	require.Len(t, days, 2)

	d2 := days[2]
	require.Len(t, d2.parts, 2)
	assert.Equal(t, "1", d2.parts[0].Part)
	assert.Equal(t, "D2p1", d2.parts[0].Name)
	assert.Equal(t, "2", d2.parts[1].Part)
	assert.Equal(t, 10, days[10].day)

	_, err = extractMethods(testSolver{})
	assert.Error(t, err)
}

type badSolver struct {
	*Puzzle
}

func (badSolver) D1p1(int) any { return nil }

func TestExtractMethodsBadSignature(t *testing.T) {
	_, err := extractMethods(&badSolver{})
	assert.ErrorContains(t, err, "D1p1")
}

func TestRunDay(t *testing.T) {
	t.Cleanup(func() { flagOnlySample, flagPart = false, "" })
	flagOnlySample = true

	slvr := &testSolver{}
	days, err := extractMethods(slvr)
	require.NoError(t, err)
	samples := map[string]sample{
		"D2p1": {want: "3", input: " a \nb\nc\n"},
		"D2p2": {want: "ok", input: "x\n"},
	}

	var buf bytes.Buffer
	require.NoError(t, runDay(&buf, slvr, 2025, days[2], samples))
	assert.Contains(t, buf.String(), "part 1 sample: 3 ✅")
	assert.Contains(t, buf.String(), "part 2 sample: ok ✅")

	samples["D2p1"] = sample{want: "4", input: "a\n"}
	buf.Reset()
	err = runDay(&buf, slvr, 2025, days[2], samples)
	assert.ErrorContains(t, err, "want 4")
	assert.Contains(t, buf.String(), "❌")
}

func TestRunDayPartError(t *testing.T) {
	t.Cleanup(func() { flagSkipSample, flagPart, flagInput = false, "", "" })
	flagSkipSample = true
	flagPart = "2"
	flagInput = writeTemp(t, "input\n")

	slvr := &testSolver{}
	days, err := extractMethods(slvr)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = runDay(&buf, slvr, 2025, days[2], nil)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, buf.String(), "part 2: boom ❌")
}

func TestLines(t *testing.T) {
	t.Cleanup(func() { flagInput = "" })
	flagInput = writeTemp(t, "  987  \n\t19\n")
	p := &Puzzle{}
	assert.Equal(t, []string{"987", "19"}, p.Lines())
}

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.WriteFile(name, []byte(contents), 0600))
	return name
}
