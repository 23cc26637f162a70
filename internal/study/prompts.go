package study

import "fmt"

const questionsPrompt = `
Analyze the following document content and generate 15 to 20 important exam-style questions.
Return ONLY the questions, one per line, without numbering.

DOCUMENT CONTENT:
%s
`

const summaryPrompt = "Summarize the following document briefly:\n\n%s"

const quizPrompt = `
From this document, generate 20 multiple-choice quiz questions in valid JSON format.
Each question must have:
- "question": the question text
- "options": a list of 4 options
- "answer": the correct option letter ("A", "B", "C", or "D")

Return ONLY JSON array, no explanations.

Content:
%s
`

// QuestionsPrompt truncates text with QuestionsTruncation and wraps it in the exam-question instructions.
func QuestionsPrompt(text string) string {
	return fmt.Sprintf(questionsPrompt, QuestionsTruncation.Apply(text))
}

// SummaryPrompt truncates text with SummaryTruncation and asks for a brief summary.
func SummaryPrompt(text string) string {
	return fmt.Sprintf(summaryPrompt, SummaryTruncation.Apply(text))
}

// QuizPrompt truncates text with QuizTruncation and asks for a JSON quiz array.
func QuizPrompt(text string) string {
	return fmt.Sprintf(quizPrompt, QuizTruncation.Apply(text))
}
