// Package studycli runs a study session in a terminal.
package studycli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/langy-backend/internal/domain"
	"github.com/heartmarshall/langy-backend/internal/service/study"
	"github.com/heartmarshall/langy-backend/internal/service/study/sm2"
)

// StudyService is the subset of the study service the terminal loop drives.
type StudyService interface {
	GetSession(ctx context.Context) (domain.StudySession, error)
	ReviewCard(ctx context.Context, input study.ReviewCardInput) (domain.Card, error)
}

// Summary reports what happened during a terminal session.
type Summary struct {
	Reviewed int
	Passed   int
	Quit     bool
}

// Run builds a session for the user in ctx and walks it card by card.
// For each card it prints the prompt face, waits for Enter to reveal the
// answer, then reads a 0-5 grade. "q" ends the session early.
func Run(ctx context.Context, svc StudyService, in io.Reader, out io.Writer) (Summary, error) {
	var sum Summary

	session, err := svc.GetSession(ctx)
	if err != nil {
		return sum, err
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "%d cards to study.\n", len(session.Cards))

	for {
		card, ok := session.Current()
		if !ok {
			return sum, nil
		}

		prompt, answer := faces(card, session.Mode)
		fmt.Fprintf(out, "\n[%d/%d] %s\n(press Enter to reveal) ", session.CurrentCardIndex+1, len(session.Cards), prompt)
		if !scanner.Scan() {
			return sum, scanErr(scanner)
		}
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "q") {
			sum.Quit = true
			return sum, nil
		}
		fmt.Fprintf(out, "Answer: %s\n", answer)

		quality, quit, err := readQuality(scanner, out)
		if err != nil {
			return sum, err
		}
		if quit {
			sum.Quit = true
			return sum, nil
		}

		q := int(quality)
		mode := session.Mode
		updated, err := svc.ReviewCard(ctx, study.ReviewCardInput{CardID: card.ID, Quality: &q, Mode: &mode})
		if err != nil {
			return sum, fmt.Errorf("review %q: %w", card.Front, err)
		}
		sum.Reviewed++
		if quality.IsCorrect() {
			sum.Passed++
		}
		fmt.Fprintf(out, "Next review in %d day(s).\n", updated.Interval)

		var done bool
		if session, done = sm2.Advance(session); done {
			return sum, nil
		}
	}
}

func faces(c domain.Card, mode domain.Direction) (prompt, answer string) {
	if mode == domain.DirectionBackToFront {
		return c.Back, c.Front
	}
	return c.Front, c.Back
}

// readQuality prompts until a valid grade or "q" is entered.
func readQuality(scanner *bufio.Scanner, out io.Writer) (domain.Quality, bool, error) {
	for {
		fmt.Fprint(out, "Grade 0-5 (q to quit): ")
		if !scanner.Scan() {
			return 0, false, scanErr(scanner)
		}
		text := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(text, "q") {
			return 0, true, nil
		}
		n, err := strconv.Atoi(text)
		if err == nil && domain.Quality(n).IsValid() {
			return domain.Quality(n), false, nil
		}
		fmt.Fprintln(out, "Please enter a number from 0 to 5.")
	}
}

var errInputClosed = errors.New("input closed")

func scanErr(s *bufio.Scanner) error {
	if err := s.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return errInputClosed
}
