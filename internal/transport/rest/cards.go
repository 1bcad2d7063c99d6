package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/card"
)

type cardService interface {
	ListCards(ctx context.Context) ([]domain.Card, error)
	CreateCard(ctx context.Context, input card.CreateCardInput) (domain.Card, error)
	DeleteCard(ctx context.Context, input card.DeleteCardInput) error
}

type deckStats interface {
	GetCardCounts(ctx context.Context) (domain.CardCounts, error)
	GetLearnedCards(ctx context.Context) ([]domain.Card, error)
}

// CardHandler serves the /cards endpoints.
type CardHandler struct {
	cards cardService
	stats deckStats
	log   *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(cards cardService, stats deckStats, logger *slog.Logger) *CardHandler {
	return &CardHandler{cards: cards, stats: stats, log: logger.With("handler", "cards")}
}

// List handles GET /cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.ListCards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponses(cards))
}

// Create handles POST /cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input card.CreateCardInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.cards.CreateCard(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardResponse(created))
}

// Delete handles DELETE /cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	if err := h.cards.DeleteCard(r.Context(), card.DeleteCardInput{CardID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /cards/stats.
func (h *CardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.stats.GetCardCounts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countsResponse{
		New:     counts.New,
		Learn:   counts.Learning,
		Due:     counts.Due,
		Learned: counts.Learned,
	})
}

// Learned handles GET /cards/learned.
func (h *CardHandler) Learned(w http.ResponseWriter, r *http.Request) {
	cards, err := h.stats.GetLearnedCards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponses(cards))
}
