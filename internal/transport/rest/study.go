package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/study"
)

type studyService interface {
	GetSession(ctx context.Context) (domain.StudySession, error)
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (domain.Card, error)
	GetStatistics(ctx context.Context) (domain.StudyStatistics, error)
}

// StudyHandler serves the /study endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type reviewRequest struct {
	ID      string  `json:"id"`
	Quality *int    `json:"quality"`
	Correct *bool   `json:"correct"`
	Mode    *string `json:"mode"`
}

// Session handles GET /study.
func (h *StudyHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetSession(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Review handles POST /study/review.
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := study.ReviewCardInput{Quality: req.Quality, Correct: req.Correct}
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
			return
		}
		input.CardID = id
	}
	if req.Mode != nil {
		mode := domain.Direction(*req.Mode)
		input.Mode = &mode
	}

	updated, err := h.svc.ReviewCard(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(updated))
}

// Statistics handles GET /study/statistics.
func (h *StudyHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStatistics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statisticsResponse{
		TotalCards:     stats.TotalCards,
		CardsReviewed:  stats.CardsReviewed,
		TotalReviews:   stats.TotalReviews,
		CorrectReviews: stats.CorrectReviews,
		AccuracyRate:   stats.AccuracyRate,
		DueIn7Days:     stats.DueInWindow,
	})
}
