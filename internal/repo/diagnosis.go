// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/repo/member"
)

// Diagnosis is the model entity for the Diagnosis schema.
type Diagnosis struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// NULL for anonymous submissions
	MemberID *uuid.UUID `json:"member_id,omitempty"`
	// Source holds the value of the "source" field.
	Source diagnosis.Source `json:"source,omitempty"`
	// Classification code, stored as a bare string
	SkinType string `json:"skin_type,omitempty"`
	// Object storage key, image-sourced records only
	ImageKey *string `json:"image_key,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Per-question scores, survey-sourced records only
	Scores map[string]int `json:"scores,omitempty"`
	// CategoryScores holds the value of the "category_scores" field.
	CategoryScores map[string]int `json:"category_scores,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore *int `json:"total_score,omitempty"`
	// Enrichment snapshot captured at diagnosis time
	VideoData []map[string]interface{} `json:"video_data,omitempty"`
	// ProductData holds the value of the "product_data" field.
	ProductData []map[string]interface{} `json:"product_data,omitempty"`
	// IsPublic holds the value of the "is_public" field.
	IsPublic bool `json:"is_public,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiagnosisQuery when eager-loading is set.
	Edges        DiagnosisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DiagnosisEdges holds the relations/edges for other nodes in the graph.
type DiagnosisEdges struct {
	// Member holds the value of the member edge.
	Member *Member `json:"member,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MemberOrErr returns the Member value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DiagnosisEdges) MemberOrErr() (*Member, error) {
	if e.Member != nil {
		return e.Member, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: member.Label}
	}
	return nil, &NotLoadedError{edge: "member"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Diagnosis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosis.FieldMemberID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case diagnosis.FieldScores, diagnosis.FieldCategoryScores, diagnosis.FieldVideoData, diagnosis.FieldProductData:
			values[i] = new([]byte)
		case diagnosis.FieldIsPublic:
			values[i] = new(sql.NullBool)
		case diagnosis.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case diagnosis.FieldTotalScore:
			values[i] = new(sql.NullInt64)
		case diagnosis.FieldSource, diagnosis.FieldSkinType, diagnosis.FieldImageKey:
			values[i] = new(sql.NullString)
		case diagnosis.FieldCreatedAt, diagnosis.FieldUpdatedAt, diagnosis.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case diagnosis.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Diagnosis fields.
func (_m *Diagnosis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosis.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case diagnosis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case diagnosis.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case diagnosis.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case diagnosis.FieldMemberID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value.Valid {
				_m.MemberID = new(uuid.UUID)
				*_m.MemberID = *value.S.(*uuid.UUID)
			}
		case diagnosis.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = diagnosis.Source(value.String)
			}
		case diagnosis.FieldSkinType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skin_type", values[i])
			} else if value.Valid {
				_m.SkinType = value.String
			}
		case diagnosis.FieldImageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_key", values[i])
			} else if value.Valid {
				_m.ImageKey = new(string)
				*_m.ImageKey = value.String
			}
		case diagnosis.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case diagnosis.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case diagnosis.FieldCategoryScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryScores); err != nil {
					return fmt.Errorf("unmarshal field category_scores: %w", err)
				}
			}
		case diagnosis.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = new(int)
				*_m.TotalScore = int(value.Int64)
			}
		case diagnosis.FieldVideoData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field video_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VideoData); err != nil {
					return fmt.Errorf("unmarshal field video_data: %w", err)
				}
			}
		case diagnosis.FieldProductData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field product_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProductData); err != nil {
					return fmt.Errorf("unmarshal field product_data: %w", err)
				}
			}
		case diagnosis.FieldIsPublic:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_public", values[i])
			} else if value.Valid {
				_m.IsPublic = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Diagnosis.
// This includes values selected through modifiers, order, etc.
func (_m *Diagnosis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMember queries the "member" edge of the Diagnosis entity.
func (_m *Diagnosis) QueryMember() *MemberQuery {
	return NewDiagnosisClient(_m.config).QueryMember(_m)
}

// Update returns a builder for updating this Diagnosis.
// Note that you need to call Diagnosis.Unwrap() before calling this method if this Diagnosis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Diagnosis) Update() *DiagnosisUpdateOne {
	return NewDiagnosisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Diagnosis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Diagnosis) Unwrap() *Diagnosis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Diagnosis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Diagnosis) String() string {
	var builder strings.Builder
	builder.WriteString("Diagnosis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MemberID; v != nil {
		builder.WriteString("member_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("skin_type=")
	builder.WriteString(_m.SkinType)
	builder.WriteString(", ")
	if v := _m.ImageKey; v != nil {
		builder.WriteString("image_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("category_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryScores))
	builder.WriteString(", ")
	if v := _m.TotalScore; v != nil {
		builder.WriteString("total_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("video_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoData))
	builder.WriteString(", ")
	builder.WriteString("product_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductData))
	builder.WriteString(", ")
	builder.WriteString("is_public=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPublic))
	builder.WriteByte(')')
	return builder.String()
}

// Diagnoses is a parsable slice of Diagnosis.
type Diagnoses []*Diagnosis
