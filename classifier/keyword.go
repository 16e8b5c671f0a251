package classifier

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/safestride/routing/router"
)

// keywordRules are checked in order; the first rule with a matching word wins.
var keywordRules = []struct {
	category string
	words    []string
}{
	{"HOMICIDE", []string{"killed", "murder", "dead body", "shot dead"}},
	{"FORCIBLE RAPE", []string{"rape", "sexual assault"}},
	{"KIDNAPPING", []string{"kidnap", "abduct", "dragged into"}},
	{"ROBBERY", []string{"robbed", "robbery", "mugged", "mugging", "at gunpoint", "held up"}},
	{"FELONY ASSAULT", []string{"stabbed", "stabbing", "beaten", "shooting", "shot", "gunfire"}},
	{"WEAPONS", []string{"gun", "knife", "weapon", "pistol"}},
	{"MISDEMEANOR ASSAULT", []string{"punched", "hit me", "attacked", "fight", "assault"}},
	{"THREATS", []string{"threaten", "harass", "followed me", "following me", "stalk"}},
	{"ARSON", []string{"arson", "set fire", "on fire", "burning"}},
	{"BURG - AUTO", []string{"car window", "broke into my car", "car break-in", "smashed window"}},
	{"STOLEN VEHICLE", []string{"stole my car", "car stolen", "stolen car", "carjack"}},
	{"BURG - RESIDENTIAL", []string{"broke into my house", "break-in", "burglar"}},
	{"PETTY THEFT", []string{"stole", "stolen", "pickpocket", "snatched", "theft"}},
	{"NARCOTICS", []string{"drug", "dealing", "needle", "overdose"}},
	{"VANDALISM", []string{"graffiti", "vandal", "smashed"}},
	{"DUI", []string{"drunk driver", "swerving"}},
	{"DISORDERLY CONDUCT", []string{"drunk", "yelling", "disorderly", "brawl"}},
}

// Keyword is an offline classifier matching fixed phrases.
type Keyword struct{}

func (Keyword) Classify(_ context.Context, transcript string) (string, error) {
	text := strings.ToLower(transcript)
	for _, rule := range keywordRules {
		if lo.SomeBy(rule.words, func(w string) bool { return strings.Contains(text, w) }) {
			return rule.category, nil
		}
	}
	return router.UNKNOWN_CATEGORY, nil
}
