package skin

import (
	"errors"
	"testing"
)

// fullAnswers builds a complete answer set with every question set to v.
func fullAnswers(v any) AnswerSet {
	out := make(AnswerSet, len(catalog))
	for _, q := range catalog {
		out[q.ID] = v
	}
	return out
}

func bodyWith(scores map[Category]int) ScoredBody {
	body := ScoredBody{
		Scores:         map[string]int{},
		CategoryScores: map[Category]int{},
	}
	for _, c := range categories {
		body.CategoryScores[c] = scores[c]
	}
	return body
}

func TestValidate_AllValid(t *testing.T) {
	if err := Validate(fullAnswers(3)); err != nil {
		t.Fatalf("Validate failed on a valid answer set: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	answers := fullAnswers(3)
	delete(answers, "Q001")

	err := Validate(answers)
	if !errors.Is(err, ErrMissingRequiredAnswer) {
		t.Fatalf("expected ErrMissingRequiredAnswer, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.QuestionID != "Q001" {
		t.Errorf("expected question Q001, got %s", verr.QuestionID)
	}
}

func TestValidate_FirstViolationInCatalogOrder(t *testing.T) {
	// Q003 missing and Q007 out of range: Q003 must win because questions
	// are checked in catalog order.
	answers := fullAnswers(3)
	delete(answers, "Q003")
	answers["Q007"] = 99

	err := Validate(answers)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.QuestionID != "Q003" {
		t.Errorf("expected Q003 reported first, got %s", verr.QuestionID)
	}
}

func TestValidate_ValueErrors(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		wantID string
		want   error
	}{
		{"out of range high", 99, "Q005", ErrScoreOutOfRange},
		{"out of range low", 0, "Q005", ErrScoreOutOfRange},
		{"non numeric string", "often", "Q005", ErrInvalidScoreFormat},
		{"fractional", 2.5, "Q005", ErrInvalidScoreFormat},
		{"wrong type", true, "Q005", ErrInvalidScoreFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := fullAnswers(3)
			answers["Q005"] = tt.value

			err := Validate(answers)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.QuestionID != tt.wantID {
				t.Errorf("expected violation on %s, got %v", tt.wantID, err)
			}
		})
	}
}

func TestValidate_IgnoresUnknownKeys(t *testing.T) {
	answers := fullAnswers(3)
	answers["Q999"] = "not a score"

	if err := Validate(answers); err != nil {
		t.Fatalf("unknown keys must be ignored, got %v", err)
	}
}

func TestScore_Aggregates(t *testing.T) {
	answers := fullAnswers(4)
	answers["Q001"] = "5" // numeric strings are accepted
	answers["Q002"] = 3

	body, err := Score(answers)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if got := body.CategoryScores[CategoryTZone]; got != 8 {
		t.Errorf("t_zone aggregate = %d, want 8", got)
	}
	for _, c := range []Category{CategoryUZone, CategoryCheek, CategoryOiliness, CategoryDryness, CategorySensitivity} {
		if got := body.CategoryScores[c]; got != 8 {
			t.Errorf("%s aggregate = %d, want 8", c, got)
		}
	}
	if got := TotalScore(body); got != 48 {
		t.Errorf("TotalScore = %d, want 48", got)
	}
}

func TestScore_BoundsHold(t *testing.T) {
	for _, v := range []int{ScaleMin, ScaleMax} {
		body, err := Score(fullAnswers(v))
		if err != nil {
			t.Fatalf("Score(%d) failed: %v", v, err)
		}
		for c, agg := range body.CategoryScores {
			if agg < 2 || agg > 10 {
				t.Errorf("aggregate %s = %d outside [2,10]", c, agg)
			}
		}
		if total := TotalScore(body); total < 12 || total > 60 {
			t.Errorf("total %d outside [12,60]", total)
		}
	}
}

func TestClassify_RuleCascade(t *testing.T) {
	tests := []struct {
		name   string
		scores map[Category]int
		want   Type
	}{
		{
			name:   "rule 1: high oiliness low dryness",
			scores: map[Category]int{CategoryTZone: 5, CategoryUZone: 5, CategoryCheek: 5, CategoryOiliness: 9, CategoryDryness: 2, CategorySensitivity: 5},
			want:   TypeOily,
		},
		{
			name:   "rule 1 beats the average",
			scores: map[Category]int{CategoryTZone: 2, CategoryUZone: 2, CategoryCheek: 2, CategoryOiliness: 9, CategoryDryness: 2, CategorySensitivity: 2},
			want:   TypeOily,
		},
		{
			name:   "rule 2: oily zones",
			scores: map[Category]int{CategoryTZone: 7, CategoryUZone: 7, CategoryCheek: 6, CategoryOiliness: 7, CategoryDryness: 5, CategorySensitivity: 5},
			want:   TypeOily,
		},
		{
			name:   "rule 3: high dryness low oiliness",
			scores: map[Category]int{CategoryTZone: 5, CategoryUZone: 5, CategoryCheek: 5, CategoryOiliness: 3, CategoryDryness: 9, CategorySensitivity: 5},
			want:   TypeDry,
		},
		{
			name:   "rule 4: dry zones",
			scores: map[Category]int{CategoryTZone: 5, CategoryUZone: 4, CategoryCheek: 4, CategoryOiliness: 5, CategoryDryness: 7, CategorySensitivity: 5},
			want:   TypeDry,
		},
		{
			name:   "rule 5: t/u gap",
			scores: map[Category]int{CategoryTZone: 8, CategoryUZone: 5, CategoryCheek: 6, CategoryOiliness: 5, CategoryDryness: 5, CategorySensitivity: 5},
			want:   TypeCombination,
		},
		{
			name:   "rule 6: t/cheek gap",
			scores: map[Category]int{CategoryTZone: 8, CategoryUZone: 6, CategoryCheek: 5, CategoryOiliness: 5, CategoryDryness: 5, CategorySensitivity: 5},
			want:   TypeCombination,
		},
		{
			name:   "rule 7: oily t-zone with dryness",
			scores: map[Category]int{CategoryTZone: 7, CategoryUZone: 6, CategoryCheek: 6, CategoryOiliness: 6, CategoryDryness: 6, CategorySensitivity: 5},
			want:   TypeCombination,
		},
		{
			name:   "rule 8: both oily and dry signals",
			scores: map[Category]int{CategoryTZone: 6, CategoryUZone: 6, CategoryCheek: 6, CategoryOiliness: 6, CategoryDryness: 6, CategorySensitivity: 5},
			want:   TypeCombination,
		},
		{
			name:   "fallback: high average",
			scores: map[Category]int{CategoryTZone: 6, CategoryUZone: 8, CategoryCheek: 8, CategoryOiliness: 10, CategoryDryness: 5, CategorySensitivity: 10},
			want:   TypeOily,
		},
		{
			name:   "fallback: low average",
			scores: map[Category]int{CategoryTZone: 3, CategoryUZone: 3, CategoryCheek: 5, CategoryOiliness: 5, CategoryDryness: 2, CategorySensitivity: 3},
			want:   TypeDry,
		},
		{
			name:   "fallback: middle average",
			scores: map[Category]int{CategoryTZone: 5, CategoryUZone: 5, CategoryCheek: 5, CategoryOiliness: 5, CategoryDryness: 5, CategorySensitivity: 5},
			want:   TypeCombination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(bodyWith(tt.scores)); got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

// All-minimum answers: every aggregate is 2, no rule 1-8 matches, and the
// average fallback lands at 2.0 <= 4.0.
func TestClassify_AllMinimumAnswers(t *testing.T) {
	body, err := Score(fullAnswers(1))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if got := TotalScore(body); got != 12 {
		t.Errorf("TotalScore = %d, want 12", got)
	}
	for c, agg := range body.CategoryScores {
		if agg != 2 {
			t.Errorf("aggregate %s = %d, want 2", c, agg)
		}
	}
	if got := Classify(body); got != TypeDry {
		t.Errorf("Classify = %s, want DRY", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	answers := fullAnswers(4)
	first, err := Score(answers)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		body, err := Score(answers)
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}
		if Classify(body) != Classify(first) {
			t.Fatal("Classify is not deterministic for identical answers")
		}
	}
}

func TestRecommendationText(t *testing.T) {
	for _, typ := range Types() {
		text, err := RecommendationText(typ)
		if err != nil {
			t.Errorf("RecommendationText(%s) failed: %v", typ, err)
		}
		if text == "" {
			t.Errorf("RecommendationText(%s) is empty", typ)
		}

		again, err := RecommendationText(typ)
		if err != nil || again != text {
			t.Errorf("RecommendationText(%s) is not idempotent", typ)
		}
	}

	if _, err := RecommendationText(Type("BOGUS")); !errors.Is(err, ErrUnknownClassification) {
		t.Errorf("expected ErrUnknownClassification, got %v", err)
	}
}
