package showcase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeShortPlainTextUnchanged(t *testing.T) {
	text := "A small robot that sorts recycling."

	assert.Equal(t, text, Summarize(text))
	// Idempotent on markup-free text below the preview length.
	assert.Equal(t, Summarize(text), Summarize(Summarize(text)))
}

func TestSummarizeStripsAllTags(t *testing.T) {
	body := `<h1>Project</h1><p>Some <b>bold</b> and <i>italic</i> text.</p>`

	assert.Equal(t, "ProjectSome bold and italic text.", Summarize(body))
}

func TestSummarizeDropsScriptAndStyleContent(t *testing.T) {
	body := `<p>visible</p><script>alert("nope")</script><style>p{color:red}</style>`

	assert.Equal(t, "visible", Summarize(body))
}

func TestSummarizeTruncatesLongText(t *testing.T) {
	source := strings.Repeat("abcde", 50) // 250 chars, no markup

	preview := Summarize(source)

	assert.Len(t, preview, 203)
	assert.Equal(t, source[:200], preview[:200])
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestSummarizeBoundaryAtPreviewLength(t *testing.T) {
	// Exactly 200 chars is not "below" the limit and still truncates.
	source := strings.Repeat("x", 200)

	assert.Len(t, Summarize(source), 203)

	assert.Equal(t, strings.Repeat("x", 199), Summarize(strings.Repeat("x", 199)))
}

func TestStripTagsUnescapesEntities(t *testing.T) {
	assert.Equal(t, "fish & chips", StripTags("fish &amp; chips"))
}
