package recommend

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Match strength bounds and weights. The score starts at a neutral baseline
// and is nudged by field/personality/sub-score agreement, then clamped.
const (
	baseScore = 60
	minScore  = 40
	maxScore  = 100

	primaryFieldBonus   = 25
	secondaryFieldBonus = 15
	personalityBonus    = 10
	subScoreWeight      = 0.3
)

// personalityFields associates a quiz personality label with the field
// keywords it leans towards.
var personalityFields = map[string][]string{
	"analytical": {"engineering", "technology", "science"},
	"creative":   {"arts", "design"},
	"social":     {"business", "medical", "management"},
}

// subScoreFields associates each named quiz sub-score with the field
// keywords it is topically relevant to.
var subScoreFields = map[string][]string{
	"analytical": {"engineering", "technology", "science", "research"},
	"creative":   {"arts", "design", "media"},
	"social":     {"business", "management", "medical", "teaching"},
	"practical":  {"vocational", "commerce", "agriculture", "engineering"},
}

type (
	// SubScores are the four named quiz sub-scores, each in [0, 100].
	SubScores struct {
		Analytical int `json:"analytical" validate:"gte=0,lte=100"`
		Creative   int `json:"creative" validate:"gte=0,lte=100"`
		Social     int `json:"social" validate:"gte=0,lte=100"`
		Practical  int `json:"practical" validate:"gte=0,lte=100"`
	}

	// QuizAnalysis is the fixed-shape result of the aptitude quiz.
	QuizAnalysis struct {
		PrimaryField   string    `json:"primary_field" validate:"required"`
		SecondaryField string    `json:"secondary_field"`
		Personality    string    `json:"personality"`
		Scores         SubScores `json:"scores"`
	}
)

func (a QuizAnalysis) Validate(validate *validator.Validate) error {
	return validate.Struct(a)
}

func (s SubScores) named() map[string]int {
	return map[string]int{
		"analytical": s.Analytical,
		"creative":   s.Creative,
		"social":     s.Social,
		"practical":  s.Practical,
	}
}

// MatchStrength computes how well a candidate entity's free-text field label
// matches a quiz analysis, as an integer percentage in [40, 100].
//
// Rules: start at 60; +25 for a primary-field match, else +15 for a
// secondary-field match; +10 when the personality's keyword set appears in
// the candidate field; then average the topically-relevant sub-scores and
// add round((avg-50)*0.3).
func MatchStrength(a QuizAnalysis, candidateField string) int {
	field := strings.ToLower(strings.TrimSpace(candidateField))
	score := baseScore

	if fieldsMatch(field, a.PrimaryField) {
		score += primaryFieldBonus
	} else if fieldsMatch(field, a.SecondaryField) {
		score += secondaryFieldBonus
	}

	if keywordsMatch(field, personalityFields[strings.ToLower(a.Personality)]) {
		score += personalityBonus
	}

	if avg, ok := relevantAverage(a.Scores, field); ok {
		score += int(math.Round((avg - 50) * subScoreWeight))
	}

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// fieldsMatch does a case-insensitive equality or either-way substring match.
func fieldsMatch(candidate, field string) bool {
	field = strings.ToLower(strings.TrimSpace(field))
	if candidate == "" || field == "" {
		return false
	}
	return strings.Contains(candidate, field) || strings.Contains(field, candidate)
}

func keywordsMatch(candidate string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(candidate, kw) {
			return true
		}
	}
	return false
}

// relevantAverage averages the sub-scores whose keyword set matches the
// candidate field. ok is false when no sub-score is relevant.
func relevantAverage(scores SubScores, candidate string) (avg float64, ok bool) {
	var sum, n int
	for name, val := range scores.named() {
		if keywordsMatch(candidate, subScoreFields[name]) {
			sum += val
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
