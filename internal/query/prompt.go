package query

import (
	_ "embed"
	"strings"
	"text/template"

	"jobyaari-engine/internal/domain"
	"jobyaari-engine/internal/index"
)

//go:embed prompts/answer.tmpl
var answerPromptRaw string

// AnswerTemplate is parsed once and reused for every question.
var AnswerTemplate = template.Must(template.New("answer").Parse(answerPromptRaw))

// ExamplesPerCategory is how many example titles each category contributes to the prompt.
const ExamplesPerCategory = 3

type promptCategory struct {
	Name  domain.Category
	Count int
}

type promptData struct {
	Total      int
	Categories []promptCategory
	Digest     string
	Question   string
}

// BuildPrompt splices the index digest and the raw question into AnswerTemplate.
func BuildPrompt(idx *index.Index, question string) (string, error) {
	return renderPrompt(idx, question, ExamplesPerCategory)
}

func renderPrompt(idx *index.Index, question string, examples int) (string, error) {
	if idx == nil {
		idx = index.Build(nil)
	}
	data := promptData{
		Total:    idx.Total,
		Digest:   idx.Digest(examples),
		Question: question,
	}
	for _, c := range domain.Categories {
		data.Categories = append(data.Categories, promptCategory{Name: c, Count: idx.Count(c)})
	}

	var b strings.Builder
	if err := AnswerTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
