package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/beacon/pkg/beacon"
)

const sampleDump = `#FORMAT: BEACON
#PREFIX: http://example.org/
#TARGET: http://example.com/
#PREFIX: http://ignored.example.org/

alice
bob|some annotation
carol||other
`

func parseSample(t *testing.T) *beacon.Document {
	t.Helper()
	doc, err := beacon.ParseString(sampleDump)
	require.NoError(t, err)
	return doc
}

func TestFromDocument(t *testing.T) {
	v := FromDocument("beacon.txt", parseSample(t), 0)

	assert.Equal(t, []MetaEntry{
		{Name: "PREFIX", Value: "http://example.org/"},
		{Name: "TARGET", Value: "http://example.com/"},
	}, v.Meta)
	assert.Equal(t, 3, v.LinkCount)
	require.Len(t, v.Links, 3)
	assert.Equal(t, "http://example.org/bob", v.Links[1].Source)
	assert.Equal(t, "some annotation", v.Links[1].Annotation)
	assert.Equal(t, "http://example.com/other", v.Links[2].Target)
	assert.Equal(t, RawEntry{Source: "carol", Target: "other"}, v.Links[2].Raw)
	assert.Equal(t, RawEntry{Source: "bob", Annotation: "some annotation"}, v.Links[1].Raw)
	assert.Len(t, v.Links[0].ID, 36)
	assert.Len(t, v.Warnings, 1)
}

func TestFromDocument_Limit(t *testing.T) {
	v := FromDocument("", parseSample(t), 2)
	assert.Equal(t, 3, v.LinkCount)
	assert.Len(t, v.Links, 2)
}

func TestWriteDocument_Text(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteDocument(FromDocument("", parseSample(t), 1)))

	out := buf.String()
	assert.Contains(t, out, "META:\n  #PREFIX: http://example.org/\n  #TARGET: http://example.com/\n")
	assert.Contains(t, out, "LINKS (3):\n  http://example.org/alice\t"+beacon.DefaultRelation+"\thttp://example.com/alice\n")
	assert.Contains(t, out, "• 2 more")
	assert.Contains(t, out, "WARNINGS:\n  - Duplicate meta field 'PREFIX' on line 4 ignored\n")
}

func TestWriteDocument_JSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatJSON, false)
	require.NoError(t, err)
	require.NoError(t, w.WriteDocument(FromDocument("beacon.txt", parseSample(t), 0)))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	links := got["links"].([]interface{})
	first := links[0].(map[string]interface{})
	assert.Equal(t, "http://example.org/alice", first["sourceIdentifier"])
	assert.Equal(t, beacon.DefaultRelation, first["relationType"])
	assert.NotContains(t, first, "annotation")
	assert.NotContains(t, got, "checksum")
	assert.Equal(t, float64(3), got["linkCount"])
}

func TestWriteDocument_TextChecksum(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatText, false)
	require.NoError(t, err)

	v := FromDocument("", parseSample(t), 0)
	v.Checksum = &Checksum{Raw: "abc", Normalized: "def"}
	require.NoError(t, w.WriteDocument(v))
	assert.True(t, strings.HasPrefix(buf.String(), "sha256: abc\n\nMETA:\n"))
}
