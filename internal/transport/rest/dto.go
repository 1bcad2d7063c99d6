package rest

import (
	"time"

	"github.com/heartmarshall/langy-backend/internal/domain"
)

type cardResponse struct {
	ID            string     `json:"id"`
	Front         string     `json:"front"`
	Back          string     `json:"back"`
	ReviewCount   int        `json:"reviewCount"`
	CorrectCount  int        `json:"correctCount"`
	EaseFactor    float64    `json:"easeFactor"`
	Interval      int        `json:"interval"`
	Repetitions   int        `json:"repetitions"`
	LastReviewed  *time.Time `json:"lastReviewed"`
	NextReviewDue *time.Time `json:"nextReviewDue"`
	Version       int        `json:"version"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type sessionResponse struct {
	Cards            []cardResponse `json:"cards"`
	CurrentCardIndex int            `json:"currentCardIndex"`
	Mode             string         `json:"mode"`
}

type countsResponse struct {
	New     int `json:"new"`
	Learn   int `json:"learn"`
	Due     int `json:"due"`
	Learned int `json:"learned"`
}

type statisticsResponse struct {
	TotalCards     int     `json:"totalCards"`
	CardsReviewed  int     `json:"cardsReviewed"`
	TotalReviews   int     `json:"totalReviews"`
	CorrectReviews int     `json:"correctReviews"`
	AccuracyRate   float64 `json:"accuracyRate"`
	DueIn7Days     int     `json:"dueIn7Days"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:            c.ID.String(),
		Front:         c.Front,
		Back:          c.Back,
		ReviewCount:   c.ReviewCount,
		CorrectCount:  c.CorrectCount,
		EaseFactor:    c.EaseFactor,
		Interval:      c.Interval,
		Repetitions:   c.Repetitions,
		LastReviewed:  utc(c.LastReviewed),
		NextReviewDue: utc(c.NextReviewDue),
		Version:       c.Version,
		CreatedAt:     c.CreatedAt.UTC(),
		UpdatedAt:     c.UpdatedAt.UTC(),
	}
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

func toSessionResponse(s domain.StudySession) sessionResponse {
	return sessionResponse{
		Cards:            toCardResponses(s.Cards),
		CurrentCardIndex: s.CurrentCardIndex,
		Mode:             string(s.Mode),
	}
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID.String(), Username: u.Username, CreatedAt: u.CreatedAt.UTC()}
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
