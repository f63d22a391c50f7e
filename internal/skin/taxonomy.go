// Package skin holds the diagnosis domain: the classification taxonomy,
// the questionnaire catalog and the rule-based scoring engine. Everything
// here is immutable after process start and safe for concurrent reads.
package skin

import (
	"errors"
	"strings"
)

// Type is a skin/acne classification code. It is the only representation
// used by business logic; records convert to/from a bare string at the
// persistence edge.
type Type string

const (
	TypeNormal       Type = "NORMAL"
	TypeOily         Type = "OILY"
	TypeDry          Type = "DRY"
	TypeCombination  Type = "COMBINATION"
	TypeComedones    Type = "COMEDONES"
	TypePustules     Type = "PUSTULES"
	TypePapules      Type = "PAPULES"
	TypeFolliculitis Type = "FOLLICULITIS"
)

var ErrUnknownClassification = errors.New("unknown skin classification")

// Entry is the static metadata attached to a classification.
type Entry struct {
	Code        Type
	KoreanName  string
	Description string
	CareMethod  string
	Guide       string
}

// types in display order; also the order used by the main-page digest.
var types = []Type{
	TypeNormal,
	TypeOily,
	TypeDry,
	TypeCombination,
	TypeComedones,
	TypePustules,
	TypePapules,
	TypeFolliculitis,
}

var entries = map[Type]Entry{
	TypeNormal: {
		Code:        TypeNormal,
		KoreanName:  "정상",
		Description: "피부 장벽이 안정적이고 트러블이 거의 없는 상태입니다.",
		CareMethod:  "순한 세안제와 기본 보습제로 현재 상태를 유지하세요.",
		Guide:       "계절 변화에 따라 보습 강도만 조절하면 충분합니다.",
	},
	TypeOily: {
		Code:        TypeOily,
		KoreanName:  "지성",
		Description: "피지 분비가 왕성해 얼굴 전체에 유분이 많은 상태입니다.",
		CareMethod:  "가벼운 수분 제형을 사용하고 주 1-2회 각질 관리를 하세요.",
		Guide:       "과도한 세안은 오히려 피지 분비를 자극하므로 하루 2회를 지키세요.",
	},
	TypeDry: {
		Code:        TypeDry,
		KoreanName:  "건성",
		Description: "유수분이 모두 부족해 당김과 각질이 잦은 상태입니다.",
		CareMethod:  "세라마이드 계열 보습제를 겹겹이 사용하고 미온수로 세안하세요.",
		Guide:       "알코올이 든 토너는 피하고 실내 습도를 유지하세요.",
	},
	TypeCombination: {
		Code:        TypeCombination,
		KoreanName:  "복합성",
		Description: "T존은 번들거리고 볼은 건조한, 부위별 편차가 큰 상태입니다.",
		CareMethod:  "T존과 U존을 나눠 부위별로 다른 제품을 사용하세요.",
		Guide:       "하나의 제품으로 얼굴 전체를 관리하기보다 부위별 케어가 효과적입니다.",
	},
	TypeComedones: {
		Code:        TypeComedones,
		KoreanName:  "좁쌀",
		Description: "모공 입구가 막혀 생기는 비염증성 좁쌀 여드름입니다.",
		CareMethod:  "BHA 성분으로 모공 속 각질을 녹이고 논코메도제닉 제품을 쓰세요.",
		Guide:       "손으로 짜면 염증성 여드름으로 발전할 수 있으니 피하세요.",
	},
	TypePustules: {
		Code:        TypePustules,
		KoreanName:  "화농성",
		Description: "고름이 차오른 화농성 여드름으로 염증이 진행된 상태입니다.",
		CareMethod:  "항염 성분(티트리, 시카)을 사용하고 자극을 최소화하세요.",
		Guide:       "넓은 부위에 반복된다면 피부과 진료를 권장합니다.",
	},
	TypePapules: {
		Code:        TypePapules,
		KoreanName:  "염증성",
		Description: "붉게 부어오른 염증성 구진 여드름입니다.",
		CareMethod:  "저자극 세안과 진정 케어 위주로 관리하세요.",
		Guide:       "스크럽 등 물리적 각질 제거는 염증을 악화시킬 수 있습니다.",
	},
	TypeFolliculitis: {
		Code:        TypeFolliculitis,
		KoreanName:  "모낭염",
		Description: "모낭 단위로 번지는 염증으로, 여드름과 혼동되기 쉽습니다.",
		CareMethod:  "유분이 많은 제품을 줄이고 땀이 나면 바로 씻어내세요.",
		Guide:       "일반 여드름 연고로 호전되지 않으면 전문의 상담이 필요합니다.",
	},
}

// inferenceLabels maps labels produced by the inference server to taxonomy
// codes. The table is exhaustive on purpose: an unknown label is a data
// fault and must never be silently defaulted to a diagnosis.
var inferenceLabels = map[string]Type{
	"Comedones":    TypeComedones,
	"Pustules":     TypePustules,
	"Papules":      TypePapules,
	"Folliculitis": TypeFolliculitis,
}

// Types returns every classification code in display order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

// Lookup resolves a classification code to its static metadata.
func Lookup(code Type) (Entry, error) {
	e, ok := entries[code]
	if !ok {
		return Entry{}, ErrUnknownClassification
	}
	return e, nil
}

// Parse normalizes a classification token (case-insensitive) to a Type.
func Parse(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := entries[t]; !ok {
		return "", ErrUnknownClassification
	}
	return t, nil
}

// FromInferenceLabel maps an inference-server label to a taxonomy code.
func FromInferenceLabel(label string) (Type, error) {
	t, ok := inferenceLabels[label]
	if !ok {
		return "", ErrUnknownClassification
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}
