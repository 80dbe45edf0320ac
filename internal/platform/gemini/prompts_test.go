package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTemplates(t *testing.T) {
	t.Parallel()

	options, err := loadTemplate("options", "")
	require.NoError(t, err)
	prompt, err := renderPrompt(options, optionsPromptData{Topic: "con vật"})
	require.NoError(t, err)
	assert.Equal(t,
		"Tạo một danh sách gồm 4 con vật quen thuộc với trẻ em Việt Nam. Mục đầu tiên là đáp án đúng. Trả lời bằng tiếng Việt.",
		prompt)

	image, err := loadTemplate("image", "")
	require.NoError(t, err)
	prompt, err = renderPrompt(image, imagePromptData{Subject: "Con Mèo"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Con Mèo")
	assert.Contains(t, prompt, "Nền trắng")
	assert.Contains(t, prompt, "hoạt hình")
}

func TestRenderPromptMissingField(t *testing.T) {
	t.Parallel()

	image, err := loadTemplate("image", "")
	require.NoError(t, err)
	_, err = renderPrompt(image, optionsPromptData{Topic: "con vật"})
	assert.Error(t, err)
}
