package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/study/sm2"
	"github.com/heartmarshall/langy-backend/pkg/ctxutil"
)

// GetCardCounts classifies the caller's deck into study buckets.
func (s *Service) GetCardCounts(ctx context.Context) (domain.CardCounts, error) {
	cards, err := s.ownerCards(ctx)
	if err != nil {
		return domain.CardCounts{}, err
	}
	return sm2.Classify(cards, s.now()), nil
}

// GetLearnedCards returns the caller's cards that passed two or more
// consecutive reviews.
func (s *Service) GetLearnedCards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.ownerCards(ctx)
	if err != nil {
		return nil, err
	}
	return sm2.FilterLearned(cards), nil
}

// GetStatistics aggregates the review history of the caller's deck.
func (s *Service) GetStatistics(ctx context.Context) (domain.StudyStatistics, error) {
	cards, err := s.ownerCards(ctx)
	if err != nil {
		return domain.StudyStatistics{}, err
	}
	return sm2.Statistics(cards, s.now(), sm2.StatisticsWindow), nil
}

func (s *Service) ownerCards(ctx context.Context) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.cards.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}
