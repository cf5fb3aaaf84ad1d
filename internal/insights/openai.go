package insights

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"listinglab/internal/dataset"
)

const systemPrompt = `You are a data analyst. You receive the summary of a tabular dataset
(shape, column types, descriptive statistics, missing values, outliers and correlations).
Reply with at most 6 short, concrete suggestions for cleaning or analysing the data,
one per line, without numbering and without repeating the input.`

type OpenAISuggester struct {
	Client *openai.Client
	Model  string
}

func NewOpenAISuggester(apiKey, model string) *OpenAISuggester {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISuggester{Client: openai.NewClient(apiKey), Model: model}
}

func (o *OpenAISuggester) Suggest(ctx context.Context, s *dataset.Summary) ([]string, error) {
	prompt := Describe(s)
	log.Printf("[Insights] enviando resumo de %s (%d caracteres, ~%d tokens)", s.Name, len(prompt), len(prompt)/4)

	resp, err := o.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return splitSuggestions(resp.Choices[0].Message.Content), nil
}

func splitSuggestions(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• ")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Describe monta o resumo textual enviado ao modelo.
func Describe(s *dataset.Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Dataset %s: %d rows, %d columns\n", s.Name, s.Rows, s.Columns)
	sb.WriteString("Types:\n")
	for _, k := range s.Kinds {
		fmt.Fprintf(&sb, "- %s: %s\n", k.Column, k.Kind)
	}
	if len(s.Describe) > 0 {
		sb.WriteString("Numeric statistics (count, mean, std, min, median, max):\n")
		for _, d := range s.Describe {
			fmt.Fprintf(&sb, "- %s: %d, %.4g, %.4g, %.4g, %.4g, %.4g\n", d.Column, d.Count, d.Mean, d.Std, d.Min, d.Median, d.Max)
		}
	}
	for _, p := range s.Objects {
		fmt.Fprintf(&sb, "Text column %s: %d distinct values", p.Column, p.Unique)
		if len(p.Counts) > 0 {
			fmt.Fprintf(&sb, ", most frequent %q (%d)", p.Counts[0].Value, p.Counts[0].Count)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Missing values:\n")
	for _, n := range s.Nulls {
		fmt.Fprintf(&sb, "- %s: %d\n", n.Column, n.Nulls)
	}
	for _, o := range s.Outliers {
		if o.Count > 0 {
			fmt.Fprintf(&sb, "Outliers in %s: %d\n", o.Column, o.Count)
		}
	}
	return sb.String()
}

// Fallback tenta o sugestor principal e recorre às regras quando ele falha.
type Fallback struct {
	Primary   Suggester
	Secondary Suggester
}

func (f Fallback) Suggest(ctx context.Context, s *dataset.Summary) ([]string, error) {
	out, err := f.Primary.Suggest(ctx, s)
	if err == nil && len(out) > 0 {
		return out, nil
	}
	if err != nil {
		log.Printf("[Insights] sugestões do modelo falharam, usando regras: %v", err)
	}
	return f.Secondary.Suggest(ctx, s)
}

// New escolhe o sugestor conforme a chave da OpenAI estiver configurada.
func New(apiKey, model string) Suggester {
	if apiKey == "" {
		return RuleSuggester{}
	}
	return Fallback{Primary: NewOpenAISuggester(apiKey, model), Secondary: RuleSuggester{}}
}
