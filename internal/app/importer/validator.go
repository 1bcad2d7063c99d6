package importer

import (
	"fmt"
	"strings"
)

// Validate rejects cards that cannot be imported as-is.
func Validate(c LegacyCard) error {
	if strings.TrimSpace(c.Front) == "" {
		return fmt.Errorf("front is empty")
	}
	if strings.TrimSpace(c.Back) == "" {
		return fmt.Errorf("card %q: back is empty", c.Front)
	}
	if c.ReviewCount < 0 || c.CorrectCount < 0 || c.Interval < 0 || c.Repetitions < 0 {
		return fmt.Errorf("card %q: negative review counters", c.Front)
	}
	if c.CorrectCount > c.ReviewCount {
		return fmt.Errorf("card %q: correctCount %d exceeds reviewCount %d", c.Front, c.CorrectCount, c.ReviewCount)
	}
	return nil
}
