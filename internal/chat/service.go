package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
	"gorm.io/gorm"

	"bdm-tracker-api/internal/updates"
)

type ChatService struct {
	DB     *gorm.DB
	APIKey string
	Client *genai.Client
}

// Chat answers a question about the recorded update transactions, optionally
// narrowed to one municipality. The transaction rows are inlined into the
// prompt so the model only sees tracker data.
func (cs *ChatService) Chat(question string, municipality string) (string, error) {
	query := cs.DB.Model(&updates.UpdateRecord{})
	if m := strings.TrimSpace(municipality); m != "" {
		query = query.Where("municipality = ?", m)
	}

	var records []updates.UpdateRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return "", fmt.Errorf("transactions not found: %w", err)
	}

	prompt, err := buildPrompt(question, records)
	if err != nil {
		return "", err
	}

	ctx := context.Background()

	genResp, err := cs.Client.Models.GenerateContent(ctx, "gemini-2.5-flash", []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	var response string
	if len(genResp.Candidates) > 0 {
		for _, candidate := range genResp.Candidates {
			if candidate.Content != nil {
				for _, part := range candidate.Content.Parts {
					if part.Text != "" {
						response = part.Text
						break
					}
				}
			}
		}
	}

	if response == "" {
		return "", fmt.Errorf("no response from Gemini")
	}

	return response, nil
}

func buildPrompt(question string, records []updates.UpdateRecord) (string, error) {
	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal transactions: %w", err)
	}

	return question +
		"\n\nAnswer the question based on the member-update transactions below. Please don't take extra data from internet. Don't answer anything technical such as JSON response or field names: " +
		string(recordsJSON), nil
}
