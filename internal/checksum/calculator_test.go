package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const dump = "#FORMAT: BEACON\n#PREFIX: http://example.org/\n\nalice\nbob|note\n"

func TestCalculateRaw(t *testing.T) {
	c := New()

	assert.Len(t, c.CalculateRaw([]byte(dump)), 64)
	assert.Equal(t, c.CalculateRaw([]byte(dump)), c.CalculateRaw([]byte(dump)))
	assert.NotEqual(t, c.CalculateRaw([]byte(dump)), c.CalculateRaw([]byte(dump+"\n")))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", c.CalculateRaw(nil))
}

func TestCalculateNormalized_IgnoresFormatting(t *testing.T) {
	c := New()
	want := c.CalculateNormalized([]byte(dump))

	variants := []string{
		"\xEF\xBB\xBF" + dump,
		"#FORMAT: BEACON\r\n#PREFIX: http://example.org/\r\n\r\nalice\r\nbob|note\r\n",
		"#format:BEACON\n#prefix:   http://example.org/\n# a comment\n\n\n  alice  \nbob | note\n",
	}
	for _, v := range variants {
		assert.Equal(t, want, c.CalculateNormalized([]byte(v)), "%q", v)
	}
}

func TestCalculateNormalized_DetectsContentChanges(t *testing.T) {
	c := New()
	base := c.CalculateNormalized([]byte(dump))

	changed := []string{
		"#FORMAT: BEACON\n#PREFIX: http://example.com/\n\nalice\nbob|note\n",
		"#FORMAT: BEACON\n#PREFIX: http://example.org/\n\nbob|note\nalice\n",
		"#FORMAT: BEACON\n#PREFIX: http://example.org/\n\nalice\nbob|other note\n",
		"#FORMAT: BEACON\n#PREFIX: http://example.org/\n\nalice\nbob|note\ncarol\n",
	}
	for _, v := range changed {
		assert.NotEqual(t, base, c.CalculateNormalized([]byte(v)), "%q", v)
	}
}
