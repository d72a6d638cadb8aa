package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContent(t *testing.T) {
	got := UserContent("Alice: hello", "Summarize in one sentence.")

	assert.Equal(t, "Instruction: Summarize in one sentence.\n\nTranscript:\nAlice: hello", got)
}

func TestSystemPromptSections(t *testing.T) {
	for _, section := range []string{"### Overview", "### Key Points", "### Decisions", "### Action Items", "### Risks/Dependencies", "### Next Steps"} {
		assert.Contains(t, System, section)
	}
}
