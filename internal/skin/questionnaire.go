package skin

// Category is a scoring axis of the questionnaire. Which questions feed
// which category is data on the catalog, not logic in the engine, so the
// rule cascade can be tested independently of the catalog content.
type Category string

const (
	CategoryTZone       Category = "t_zone"
	CategoryUZone       Category = "u_zone"
	CategoryCheek       Category = "cheek"
	CategoryOiliness    Category = "oiliness"
	CategoryDryness     Category = "dryness"
	CategorySensitivity Category = "sensitivity"
)

const (
	// ScaleMin and ScaleMax bound every answer value.
	ScaleMin = 1
	ScaleMax = 5
)

// Question is one entry of the fixed questionnaire catalog.
type Question struct {
	ID       string   `json:"question_id"`
	Text     string   `json:"question_text"`
	Category Category `json:"category"`
	Order    int      `json:"order"`
	Required bool     `json:"required"`
}

// catalog is ordered by Question.Order. Two questions per category, so
// every category aggregate ranges [2,10].
var catalog = []Question{
	{ID: "Q001", Text: "이마와 코(T존)의 기름기 정도는 어떤가요?", Category: CategoryTZone, Order: 1, Required: true},
	{ID: "Q002", Text: "오후가 되면 T존이 번들거리나요?", Category: CategoryTZone, Order: 2, Required: true},
	{ID: "Q003", Text: "턱과 입 주변(U존)에 유분이 도나요?", Category: CategoryUZone, Order: 3, Required: true},
	{ID: "Q004", Text: "U존에 트러블이 자주 생기나요?", Category: CategoryUZone, Order: 4, Required: true},
	{ID: "Q005", Text: "볼 부위가 번들거리는 편인가요?", Category: CategoryCheek, Order: 5, Required: true},
	{ID: "Q006", Text: "볼 모공이 눈에 띄게 넓은 편인가요?", Category: CategoryCheek, Order: 6, Required: true},
	{ID: "Q007", Text: "세안 후 한 시간이 지나면 얼굴 전체에 유분이 올라오나요?", Category: CategoryOiliness, Order: 7, Required: true},
	{ID: "Q008", Text: "화장이 유분 때문에 쉽게 무너지나요?", Category: CategoryOiliness, Order: 8, Required: true},
	{ID: "Q009", Text: "세안 후 아무것도 바르지 않으면 피부가 당기나요?", Category: CategoryDryness, Order: 9, Required: true},
	{ID: "Q010", Text: "각질이 일어나거나 푸석한 느낌이 자주 드나요?", Category: CategoryDryness, Order: 10, Required: true},
	{ID: "Q011", Text: "새 화장품을 쓰면 피부가 쉽게 붉어지거나 따갑나요?", Category: CategorySensitivity, Order: 11, Required: true},
	{ID: "Q012", Text: "계절이 바뀔 때 피부 상태가 크게 흔들리나요?", Category: CategorySensitivity, Order: 12, Required: true},
}

// categories in the order the rule cascade reads them.
var categories = []Category{
	CategoryTZone,
	CategoryUZone,
	CategoryCheek,
	CategoryOiliness,
	CategoryDryness,
	CategorySensitivity,
}

// Questions returns the full catalog in ordinal order. The catalog is
// fixed at process start; callers get a copy so they cannot mutate it.
func Questions() []Question {
	out := make([]Question, len(catalog))
	copy(out, catalog)
	return out
}

// Categories returns the scoring categories in cascade order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// QuestionByID looks up a catalog entry by its stable key.
func QuestionByID(id string) (Question, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
