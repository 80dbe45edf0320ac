package api

import (
	"time"

	"github.com/anhvo909090-boop/DAYBE/internal/domain"
	"github.com/anhvo909090-boop/DAYBE/internal/service"
	"github.com/anhvo909090-boop/DAYBE/internal/speech"
)

// Feedback shown after a round has been answered.
const (
	FeedbackCorrect   = "Đúng rồi! Bé giỏi quá!"
	FeedbackIncorrect = "Thử lại lần sau nhé!"
)

// SelectCategoryRequest defines the payload for choosing a game category.
type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required,oneof=animals plants objects"`
}

// AnswerRequest defines the payload for answering the current round.
type AnswerRequest struct {
	Option string `json:"option" validate:"required,max=200"`
}

// SpeakRequest defines the payload for pronouncing an alphabet letter.
type SpeakRequest struct {
	Letter string `json:"letter" validate:"required,max=8"`
}

// CategoryResponse describes one selectable category.
type CategoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AlphabetResponse is the alphabet board.
type AlphabetResponse struct {
	Letters         []string `json:"letters"`
	SpeechAvailable bool     `json:"speech_available"`
}

// SpeakResponse is the pronunciation result for one letter. When Available is
// false, Notice explains why and clients may speak Text themselves.
type SpeakResponse struct {
	Text      string  `json:"text"`
	Lang      string  `json:"lang"`
	Rate      float64 `json:"rate"`
	Available bool    `json:"available"`
	Audio     string  `json:"audio,omitempty"`
	MIMEType  string  `json:"mime_type,omitempty"`
	Notice    string  `json:"notice,omitempty"`
}

// RoundResponse is the player's view of a round. The correct answer is only
// revealed once the round has been answered.
type RoundResponse struct {
	Image         string   `json:"image"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

// GameResponse is the player's view of a game session.
type GameResponse struct {
	ID             string         `json:"id"`
	Category       string         `json:"category,omitempty"`
	CategoryLabel  string         `json:"category_label,omitempty"`
	Status         string         `json:"status"`
	Loading        bool           `json:"loading"`
	Error          string         `json:"error,omitempty"`
	SelectedAnswer string         `json:"selected_answer,omitempty"`
	Feedback       string         `json:"feedback,omitempty"`
	Round          *RoundResponse `json:"round,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AnswerResponse is the outcome of answering a round.
type AnswerResponse struct {
	Accepted      bool         `json:"accepted"`
	Status        string       `json:"status"`
	CorrectAnswer string       `json:"correct_answer"`
	Feedback      string       `json:"feedback"`
	Game          GameResponse `json:"game"`
}

func feedbackFor(status domain.Status) string {
	switch status {
	case domain.StatusCorrect:
		return FeedbackCorrect
	case domain.StatusIncorrect:
		return FeedbackIncorrect
	default:
		return ""
	}
}

func categoriesToResponse(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: string(c), Label: c.Label()})
	}
	return out
}

func gameToResponse(s *domain.Session) GameResponse {
	resp := GameResponse{
		ID:             s.ID.String(),
		Category:       string(s.Category),
		Status:         string(s.Status),
		Loading:        s.Loading,
		Error:          s.Error,
		SelectedAnswer: s.SelectedAnswer,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}

	if s.HasCategory() {
		resp.CategoryLabel = s.Category.Label()
	}

	if s.Round != nil {
		resp.Round = &RoundResponse{
			Image:   s.Round.Image(),
			Options: s.Round.Options(),
		}
		if s.Status != domain.StatusPlaying {
			resp.Round.CorrectAnswer = s.Round.CorrectAnswer()
			resp.Feedback = feedbackFor(s.Status)
		}
	}

	return resp
}

func answerToResponse(result *service.AnswerResult) AnswerResponse {
	return AnswerResponse{
		Accepted:      result.Accepted,
		Status:        string(result.Status),
		CorrectAnswer: result.CorrectAnswer,
		Feedback:      feedbackFor(result.Status),
		Game:          gameToResponse(result.Session),
	}
}

func speechToResponse(result speech.Result) SpeakResponse {
	resp := SpeakResponse{
		Text:      result.Utterance.Text,
		Lang:      result.Utterance.Lang,
		Rate:      result.Utterance.Rate,
		Available: result.Available,
		Notice:    result.Notice,
	}
	if result.Audio != nil {
		resp.Audio = result.Audio.DataURI()
		resp.MIMEType = result.Audio.MIMEType
	}
	return resp
}
