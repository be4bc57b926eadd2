package beacon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		raw   string
		kind  LineKind
		name  string
		value string
	}{
		{"", KindBlank, "", ""},
		{" \t ", KindBlank, "", ""},
		{"#FORMAT: BEACON", KindFormatMarker, "FORMAT", "BEACON"},
		{"#format :beacon  ", KindFormatMarker, "format", "beacon"},
		{"#FORMAT: BEACON extra", KindMetaField, "FORMAT", "BEACON extra"},
		{"#PREFIX: http://example.org/", KindMetaField, "PREFIX", "http://example.org/"},
		{"  #Prefix  :   spaced value  ", KindMetaField, "Prefix", "spaced value"},
		{"#EMPTY:", KindMetaField, "EMPTY", ""},
		{"#FIELD WITHOUT COLON", KindMalformedMeta, "", ""},
		{"#NAME2: x", KindMalformedMeta, "", ""},
		{"# comment", KindComment, "", ""},
		{"#", KindComment, "", ""},
		{"#1: numbers", KindComment, "", ""},
		{"alice|bob", KindLink, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			line := ClassifyLine(7, tt.raw)
			assert.Equal(t, 7, line.Number)
			assert.Equal(t, tt.kind, line.Kind)
			assert.Equal(t, tt.name, line.Name)
			assert.Equal(t, tt.value, line.Value)
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", ""}, SplitLines("\xEF\xBB\xBFa\r\nb\rc\n"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

func TestClassify_NumbersLines(t *testing.T) {
	lines := Classify("#A: 1\n\nx\n")
	assert.Len(t, lines, 4)
	for i, line := range lines {
		assert.Equal(t, i+1, line.Number)
	}
	assert.Equal(t, KindLink, lines[2].Kind)
}
