package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/harunmuya/gs-app/internal/domain"
)

const (
	modelName       = "gemini-1.5-flash"
	maxIcebreakers  = 3
	promptBioLength = 300
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.8)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateIcebreakers asks the model for opening lines a user could send
// to a freshly matched profile.
func (c *GeminiClient) GenerateIcebreakers(ctx context.Context, p *domain.Profile) ([]string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(p)))
	if err != nil {
		return nil, fmt.Errorf("generate icebreakers: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	icebreakers, err := ParseIcebreakers(sb.String())
	if err != nil {
		logrus.WithError(err).WithField("profile_id", p.ID).Warn("Unparseable icebreaker response")
		return nil, err
	}
	return icebreakers, nil
}

func buildPrompt(p *domain.Profile) string {
	bio := []rune(p.Bio)
	if len(bio) > promptBioLength {
		bio = bio[:promptBioLength]
	}
	age := "unknown"
	if p.Age != nil {
		age = fmt.Sprint(*p.Age)
	}
	return fmt.Sprintf(`
		Generate %d short, friendly icebreaker messages for a dating app match.
		Their name: %s
		Their age: %s
		Their location: %s
		Their bio: %s

		Task: Write %d distinct, respectful opening lines the user could send.
		Language: English.
		Output: JSON array of strings. Example: ["Hi...", "Hello..."]
	`, maxIcebreakers, p.Name, age, p.Location, string(bio), maxIcebreakers)
}

// ParseIcebreakers reads a JSON array from model output, tolerating code
// fences. Failing that, each non-empty line is taken as one icebreaker.
func ParseIcebreakers(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var icebreakers []string
	if err := json.Unmarshal([]byte(text), &icebreakers); err != nil {
		for _, line := range strings.Split(text, "\n") {
			line = strings.Trim(strings.TrimSpace(line), `",`)
			line = strings.TrimLeft(line, "-*0123456789. ")
			if line != "" && line != "[" && line != "]" {
				icebreakers = append(icebreakers, line)
			}
		}
		if len(icebreakers) == 0 {
			return nil, fmt.Errorf("failed to parse icebreakers: %w", err)
		}
	}

	out := icebreakers[:0]
	for _, s := range icebreakers {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) > maxIcebreakers {
		out = out[:maxIcebreakers]
	}
	if len(out) == 0 {
		return nil, errors.New("no icebreakers in response")
	}
	return out, nil
}
