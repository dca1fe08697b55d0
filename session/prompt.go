package session

import "fmt"

// Generation budgets, in tokens. Questions get a little more room than
// answers so the model can restate convoluted titles.
const (
	questionMaxTokens = 200
	answerMaxTokens   = 100
)

const questionPromptFormat = `The following is the title of a clickbait YouTube video. State, as a single question, what a reader would want answered after seeing this title.

Title: %q

Question:`

const answerPromptFormat = `Answer the question using only the transcript below as source material. Do not use any other knowledge.

Transcript: %s

Question: %s

Answer:`

// QuestionPrompt instructs the model to turn a video title into the single
// question the title implies.
func QuestionPrompt(title string) string {
	return fmt.Sprintf(questionPromptFormat, title)
}

// AnswerPrompt instructs the model to answer a question grounded in the
// transcript text.
func AnswerPrompt(transcript, question string) string {
	return fmt.Sprintf(answerPromptFormat, transcript, question)
}
