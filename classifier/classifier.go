// Package classifier assigns a crime category to a free-text incident
// transcript.
package classifier

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/safestride/routing/router"
)

var log = logrus.WithField("module", "classifier")

// ErrClassifier marks a failed classification attempt.
var ErrClassifier = eris.New("classifier: classification failed")

// Categories is the closed set of labels a classifier may return besides
// router.UNKNOWN_CATEGORY.
var Categories = []string{
	"FELONY ASSAULT", "PETTY THEFT", "BURG - RESIDENTIAL", "MISDEMEANOR ASSAULT", "ARSON",
	"BURG - AUTO", "DUI", "VANDALISM", "GRAND THEFT", "STOLEN VEHICLE", "WEAPONS", "FRAUD",
	"OTHER", "DISORDERLY CONDUCT", "BURG - COMMERCIAL", "FELONY WARRANT", "THREATS",
	"POSSESSION - STOLEN PROPERTY", "ROBBERY", "RECOVERED O/S STOLEN", "DOMESTIC VIOLENCE",
	"NARCOTICS", "KIDNAPPING", "FORGERY & COUNTERFEITING", "FORCIBLE RAPE", "HOMICIDE",
	"STOLEN AND RECOVERED VEHICLE", "CURFEW & LOITERING", "OTHER SEX OFFENSES", "BRANDISHING",
	"CHILD ABUSE", "BURG - OTHER", "MISCELLANEOUS TRAFFIC CRIME", "EMBEZZLEMENT",
	"RECOVERED VEHICLE - OAKLAND STOLEN", "GAMBLING", "PROSTITUTION", "INCIDENT TYPE",
	"ENVIRONMENTAL CRIME", "MISDEMEANOR WARRANT",
}

// Classifier maps a transcript to a category.
type Classifier interface {
	Classify(ctx context.Context, transcript string) (string, error)
}

// ClassifyWithTimeout never fails: any error or a call exceeding timeout
// yields router.UNKNOWN_CATEGORY.
func ClassifyWithTimeout(ctx context.Context, c Classifier, transcript string, timeout time.Duration) string {
	if c == nil {
		return router.UNKNOWN_CATEGORY
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		category string
		err      error
	}
	done := make(chan result, 1)
	go func() {
		category, err := c.Classify(ctx, transcript)
		done <- result{category, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			log.Warnf("classification failed: %v", res.err)
			return router.UNKNOWN_CATEGORY
		}
		if res.category == "" {
			return router.UNKNOWN_CATEGORY
		}
		return res.category
	case <-ctx.Done():
		log.Warnf("classification abandoned: %v", ctx.Err())
		return router.UNKNOWN_CATEGORY
	}
}

// stripFence removes a ```json ... ``` markdown wrapper.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseCategory reads a {"CATEGORY": confidence, ...} object and returns the
// category with the highest confidence. Ties keep the alphabetically first.
func parseCategory(text string) (string, error) {
	var scores map[string]float64
	if err := json.Unmarshal([]byte(stripFence(text)), &scores); err != nil {
		return "", eris.Wrapf(ErrClassifier, "parse model output: %v", err)
	}
	best, bestScore := "", -1.0
	for category, score := range scores {
		if score > bestScore || (score == bestScore && category < best) {
			best, bestScore = category, score
		}
	}
	if best == "" {
		return "", eris.Wrap(ErrClassifier, "model returned no categories")
	}
	return strings.ToUpper(strings.TrimSpace(best)), nil
}
