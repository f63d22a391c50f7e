package skin

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Validation failure kinds. Handlers and tests match these with errors.Is;
// the wrapping ValidationError carries the offending question id.
var (
	ErrMissingRequiredAnswer = errors.New("missing required answer")
	ErrInvalidScoreFormat    = errors.New("score is not a number")
	ErrScoreOutOfRange       = errors.New("score out of range")
)

// ValidationError ties a validation failure to a question id.
type ValidationError struct {
	QuestionID string
	err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.QuestionID, e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func newValidationError(questionID string, kind error) *ValidationError {
	return &ValidationError{QuestionID: questionID, err: kind}
}

// AnswerSet is the raw questionnaire submission: question id to answer
// value as it arrived from JSON (numbers or numeric strings accepted).
type AnswerSet map[string]any

// ScoredBody is the validated, persisted representation of a submission.
type ScoredBody struct {
	Scores         map[string]int   `json:"scores"`
	CategoryScores map[Category]int `json:"category_scores"`
}

// Validate checks an answer set against the catalog. Questions are
// checked in catalog order and the first violation wins, so the reported
// error is deterministic for a given input. Keys outside the catalog are
// ignored.
func Validate(answers AnswerSet) error {
	for _, q := range catalog {
		raw, ok := answers[q.ID]
		if !ok {
			if q.Required {
				return newValidationError(q.ID, ErrMissingRequiredAnswer)
			}
			continue
		}

		score, err := parseScore(raw)
		if err != nil {
			return newValidationError(q.ID, ErrInvalidScoreFormat)
		}
		if score < ScaleMin || score > ScaleMax {
			return newValidationError(q.ID, ErrScoreOutOfRange)
		}
	}
	return nil
}

// Score validates an answer set and derives per-question scores plus
// category aggregates. Aggregates are plain integer sums of their two
// constituent questions.
func Score(answers AnswerSet) (ScoredBody, error) {
	if err := Validate(answers); err != nil {
		return ScoredBody{}, err
	}

	body := ScoredBody{
		Scores:         make(map[string]int, len(catalog)),
		CategoryScores: make(map[Category]int, len(categories)),
	}
	for _, q := range catalog {
		score, _ := parseScore(answers[q.ID])
		body.Scores[q.ID] = score
		body.CategoryScores[q.Category] += score
	}
	return body, nil
}

// Classify applies the ordered decision list over the six category
// aggregates. Rule order is load-bearing: categories are not mutually
// exclusive and reordering changes outcomes. The coarse average is only
// the last resort.
func Classify(body ScoredBody) Type {
	var (
		tZone       = body.CategoryScores[CategoryTZone]
		uZone       = body.CategoryScores[CategoryUZone]
		cheek       = body.CategoryScores[CategoryCheek]
		oiliness    = body.CategoryScores[CategoryOiliness]
		dryness     = body.CategoryScores[CategoryDryness]
		sensitivity = body.CategoryScores[CategorySensitivity]
	)

	switch {
	case oiliness >= 8 && dryness <= 4:
		return TypeOily
	case tZone >= 7 && uZone >= 7 && oiliness >= 7:
		return TypeOily
	case dryness >= 8 && oiliness <= 4:
		return TypeDry
	case cheek <= 4 && uZone <= 4 && dryness >= 7:
		return TypeDry
	case abs(tZone-uZone) >= 3:
		return TypeCombination
	case abs(tZone-cheek) >= 3:
		return TypeCombination
	case tZone >= 7 && oiliness >= 6 && dryness >= 6:
		return TypeCombination
	case oiliness >= 6 && dryness >= 6:
		return TypeCombination
	}

	avg := float64(tZone+uZone+cheek+oiliness+dryness+sensitivity) / 6.0
	switch {
	case avg >= 7.5:
		return TypeOily
	case avg <= 4.0:
		return TypeDry
	default:
		return TypeCombination
	}
}

// TotalScore sums the per-question scores. Category aggregates are
// derived bookkeeping and are deliberately excluded.
func TotalScore(body ScoredBody) int {
	total := 0
	for _, s := range body.Scores {
		total += s
	}
	return total
}

// recommendations are canned care texts keyed by classification.
var recommendations = map[Type]string{
	TypeNormal:       "현재 상태를 유지하는 기본 케어를 권장합니다.\n순한 세안제와 가벼운 보습제면 충분합니다.",
	TypeOily:         "유분 조절과 모공 관리에 집중하세요.\n가벼운 수분 제형과 주기적인 각질 관리를 병행하세요.",
	TypeDry:          "보습에 중점을 둔 스킨케어를 추천합니다.\n세라마이드 보습제를 겹겹이 바르고 미온수로 세안하세요.",
	TypeCombination:  "부위별 맞춤 케어가 필요합니다.\nT존은 유분 조절, 볼은 보습 위주로 나눠 관리하세요.",
	TypeComedones:    "모공 속 각질을 녹이는 BHA 케어를 추천합니다.\n논코메도제닉 제품으로 모공 막힘을 줄이세요.",
	TypePustules:     "항염 진정 케어에 집중하세요.\n증상이 반복되면 피부과 진료를 권장합니다.",
	TypePapules:      "저자극 세안과 진정 케어 위주로 관리하세요.\n물리적 각질 제거는 피하는 것이 좋습니다.",
	TypeFolliculitis: "유분이 많은 제품을 줄이고 청결을 유지하세요.\n호전이 없으면 전문의 상담이 필요합니다.",
}

// RecommendationText returns the canned care recommendation for a
// classification. Unreachable for values produced by Classify, but kept
// strict for codes arriving from storage.
func RecommendationText(t Type) (string, error) {
	text, ok := recommendations[t]
	if !ok {
		return "", ErrUnknownClassification
	}
	return text, nil
}

func parseScore(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		// JSON numbers decode as float64; reject fractional values.
		if n != math.Trunc(n) {
			return 0, ErrInvalidScoreFormat
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, ErrInvalidScoreFormat
		}
		return i, nil
	default:
		return 0, ErrInvalidScoreFormat
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
