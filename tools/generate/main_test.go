package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	input := `/* errors.dat */

DAT(101,"insufficient memory available")
  DAT(215, "function call contains a duplicate ID label")
#define ERR_MAX 309
DAT(302,"cannot open input file")
`
	got, err := parseCatalog(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[int]string{
		101: "insufficient memory available",
		215: "function call contains a duplicate ID label",
		302: "cannot open input file",
	}, got)
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no message", `DAT(101)`},
		{"bad code", `DAT(x1,"text")`},
		{"unquoted", `DAT(101,text)`},
		{"duplicate", "DAT(101,\"a\")\nDAT(101,\"b\")"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCatalog(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestMergeOverrides(t *testing.T) {
	messages := map[int]string{101: "insufficient memory available"}
	data := []byte(`
[messages]
1 = "WARNING: System hydraulically unbalanced."
101 = "out of memory"
`)
	require.NoError(t, mergeOverrides(messages, data))
	assert.Equal(t, map[int]string{
		1:   "WARNING: System hydraulically unbalanced.",
		101: "out of memory",
	}, messages)

	assert.Error(t, mergeOverrides(messages, []byte("[messages]\nabc = \"x\"\n")))
}

func TestGenerateGoCode(t *testing.T) {
	code, err := generateGoCode("epanet", map[int]string{
		302: "cannot open input file",
		1:   "WARNING: System hydraulically unbalanced.",
	})
	require.NoError(t, err)

	src := string(code)
	assert.True(t, strings.HasPrefix(src, "// Code generated by tools/generate from errors.dat. DO NOT EDIT.\n\npackage epanet\n"))
	assert.Contains(t, src, "var errorMessages = map[int]string{")
	assert.Less(t, strings.Index(src, `"WARNING: System hydraulically unbalanced."`), strings.Index(src, `"cannot open input file"`))
}
