package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionPrompt(t *testing.T) {
	got := QuestionPrompt("You Won't Believe This Trick")
	assert.Contains(t, got, `"You Won't Believe This Trick"`)
	assert.Contains(t, got, "single question")
}

func TestAnswerPrompt(t *testing.T) {
	got := AnswerPrompt("the trick is to check twice", "What is the trick?")
	assert.Contains(t, got, "the trick is to check twice")
	assert.Contains(t, got, "What is the trick?")
}
