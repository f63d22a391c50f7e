// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hongik-triple/acnelog_backend/internal/repo/board"
	"github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/repo/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBoard     = "Board"
	TypeDiagnosis = "Diagnosis"
	TypeMember    = "Member"
)

// BoardMutation represents an operation that mutates the Board nodes in the graph.
type BoardMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	title         *string
	content       *string
	pinned        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Board, error)
	predicates    []predicate.Board
}

var _ ent.Mutation = (*BoardMutation)(nil)

// boardOption allows management of the mutation configuration using functional options.
type boardOption func(*BoardMutation)

// newBoardMutation creates new mutation for the Board entity.
func newBoardMutation(c config, op Op, opts ...boardOption) *BoardMutation {
	m := &BoardMutation{
		config:        c,
		op:            op,
		typ:           TypeBoard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBoardID sets the ID field of the mutation.
func withBoardID(id uuid.UUID) boardOption {
	return func(m *BoardMutation) {
		var (
			err   error
			once  sync.Once
			value *Board
		)
		m.oldValue = func(ctx context.Context) (*Board, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Board.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBoard sets the old Board of the mutation.
func withBoard(node *Board) boardOption {
	return func(m *BoardMutation) {
		m.oldValue = func(context.Context) (*Board, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BoardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BoardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Board entities.
func (m *BoardMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BoardMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BoardMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Board.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BoardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BoardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BoardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BoardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BoardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BoardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *BoardMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *BoardMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *BoardMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[board.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *BoardMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[board.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *BoardMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, board.FieldDeletedAt)
}

// SetTitle sets the "title" field.
func (m *BoardMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BoardMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *BoardMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *BoardMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *BoardMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *BoardMutation) ResetContent() {
	m.content = nil
}

// SetPinned sets the "pinned" field.
func (m *BoardMutation) SetPinned(b bool) {
	m.pinned = &b
}

// Pinned returns the value of the "pinned" field in the mutation.
func (m *BoardMutation) Pinned() (r bool, exists bool) {
	v := m.pinned
	if v == nil {
		return
	}
	return *v, true
}

// OldPinned returns the old "pinned" field's value of the Board entity.
// If the Board object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BoardMutation) OldPinned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPinned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPinned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPinned: %w", err)
	}
	return oldValue.Pinned, nil
}

// ResetPinned resets all changes to the "pinned" field.
func (m *BoardMutation) ResetPinned() {
	m.pinned = nil
}

// Where appends a list predicates to the BoardMutation builder.
func (m *BoardMutation) Where(ps ...predicate.Board) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BoardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BoardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Board, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BoardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BoardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Board).
func (m *BoardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BoardMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, board.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, board.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, board.FieldDeletedAt)
	}
	if m.title != nil {
		fields = append(fields, board.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, board.FieldContent)
	}
	if m.pinned != nil {
		fields = append(fields, board.FieldPinned)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BoardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case board.FieldCreatedAt:
		return m.CreatedAt()
	case board.FieldUpdatedAt:
		return m.UpdatedAt()
	case board.FieldDeletedAt:
		return m.DeletedAt()
	case board.FieldTitle:
		return m.Title()
	case board.FieldContent:
		return m.Content()
	case board.FieldPinned:
		return m.Pinned()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BoardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case board.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case board.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case board.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case board.FieldTitle:
		return m.OldTitle(ctx)
	case board.FieldContent:
		return m.OldContent(ctx)
	case board.FieldPinned:
		return m.OldPinned(ctx)
	}
	return nil, fmt.Errorf("unknown Board field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case board.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case board.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case board.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case board.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case board.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case board.FieldPinned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPinned(v)
		return nil
	}
	return fmt.Errorf("unknown Board field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BoardMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BoardMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BoardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Board numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BoardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(board.FieldDeletedAt) {
		fields = append(fields, board.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BoardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BoardMutation) ClearField(name string) error {
	switch name {
	case board.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Board nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BoardMutation) ResetField(name string) error {
	switch name {
	case board.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case board.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case board.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case board.FieldTitle:
		m.ResetTitle()
		return nil
	case board.FieldContent:
		m.ResetContent()
		return nil
	case board.FieldPinned:
		m.ResetPinned()
		return nil
	}
	return fmt.Errorf("unknown Board field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BoardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BoardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BoardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BoardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BoardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BoardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BoardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Board unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BoardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Board edge %s", name)
}

// DiagnosisMutation represents an operation that mutates the Diagnosis nodes in the graph.
type DiagnosisMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	deleted_at         *time.Time
	source             *diagnosis.Source
	skin_type          *string
	image_key          *string
	confidence         *float64
	addconfidence      *float64
	scores             *map[string]int
	category_scores    *map[string]int
	total_score        *int
	addtotal_score     *int
	video_data         *[]map[string]interface{}
	appendvideo_data   []map[string]interface{}
	product_data       *[]map[string]interface{}
	appendproduct_data []map[string]interface{}
	is_public          *bool
	clearedFields      map[string]struct{}
	member             *uuid.UUID
	clearedmember      bool
	done               bool
	oldValue           func(context.Context) (*Diagnosis, error)
	predicates         []predicate.Diagnosis
}

var _ ent.Mutation = (*DiagnosisMutation)(nil)

// diagnosisOption allows management of the mutation configuration using functional options.
type diagnosisOption func(*DiagnosisMutation)

// newDiagnosisMutation creates new mutation for the Diagnosis entity.
func newDiagnosisMutation(c config, op Op, opts ...diagnosisOption) *DiagnosisMutation {
	m := &DiagnosisMutation{
		config:        c,
		op:            op,
		typ:           TypeDiagnosis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiagnosisID sets the ID field of the mutation.
func withDiagnosisID(id uuid.UUID) diagnosisOption {
	return func(m *DiagnosisMutation) {
		var (
			err   error
			once  sync.Once
			value *Diagnosis
		)
		m.oldValue = func(ctx context.Context) (*Diagnosis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Diagnosis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiagnosis sets the old Diagnosis of the mutation.
func withDiagnosis(node *Diagnosis) diagnosisOption {
	return func(m *DiagnosisMutation) {
		m.oldValue = func(context.Context) (*Diagnosis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiagnosisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiagnosisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Diagnosis entities.
func (m *DiagnosisMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiagnosisMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiagnosisMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Diagnosis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DiagnosisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DiagnosisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DiagnosisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DiagnosisMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DiagnosisMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DiagnosisMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DiagnosisMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DiagnosisMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DiagnosisMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[diagnosis.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DiagnosisMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DiagnosisMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, diagnosis.FieldDeletedAt)
}

// SetMemberID sets the "member_id" field.
func (m *DiagnosisMutation) SetMemberID(u uuid.UUID) {
	m.member = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *DiagnosisMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldMemberID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ClearMemberID clears the value of the "member_id" field.
func (m *DiagnosisMutation) ClearMemberID() {
	m.member = nil
	m.clearedFields[diagnosis.FieldMemberID] = struct{}{}
}

// MemberIDCleared returns if the "member_id" field was cleared in this mutation.
func (m *DiagnosisMutation) MemberIDCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldMemberID]
	return ok
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *DiagnosisMutation) ResetMemberID() {
	m.member = nil
	delete(m.clearedFields, diagnosis.FieldMemberID)
}

// SetSource sets the "source" field.
func (m *DiagnosisMutation) SetSource(d diagnosis.Source) {
	m.source = &d
}

// Source returns the value of the "source" field in the mutation.
func (m *DiagnosisMutation) Source() (r diagnosis.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldSource(ctx context.Context) (v diagnosis.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *DiagnosisMutation) ResetSource() {
	m.source = nil
}

// SetSkinType sets the "skin_type" field.
func (m *DiagnosisMutation) SetSkinType(s string) {
	m.skin_type = &s
}

// SkinType returns the value of the "skin_type" field in the mutation.
func (m *DiagnosisMutation) SkinType() (r string, exists bool) {
	v := m.skin_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSkinType returns the old "skin_type" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldSkinType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkinType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkinType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkinType: %w", err)
	}
	return oldValue.SkinType, nil
}

// ResetSkinType resets all changes to the "skin_type" field.
func (m *DiagnosisMutation) ResetSkinType() {
	m.skin_type = nil
}

// SetImageKey sets the "image_key" field.
func (m *DiagnosisMutation) SetImageKey(s string) {
	m.image_key = &s
}

// ImageKey returns the value of the "image_key" field in the mutation.
func (m *DiagnosisMutation) ImageKey() (r string, exists bool) {
	v := m.image_key
	if v == nil {
		return
	}
	return *v, true
}

// OldImageKey returns the old "image_key" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldImageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageKey: %w", err)
	}
	return oldValue.ImageKey, nil
}

// ClearImageKey clears the value of the "image_key" field.
func (m *DiagnosisMutation) ClearImageKey() {
	m.image_key = nil
	m.clearedFields[diagnosis.FieldImageKey] = struct{}{}
}

// ImageKeyCleared returns if the "image_key" field was cleared in this mutation.
func (m *DiagnosisMutation) ImageKeyCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldImageKey]
	return ok
}

// ResetImageKey resets all changes to the "image_key" field.
func (m *DiagnosisMutation) ResetImageKey() {
	m.image_key = nil
	delete(m.clearedFields, diagnosis.FieldImageKey)
}

// SetConfidence sets the "confidence" field.
func (m *DiagnosisMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DiagnosisMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DiagnosisMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DiagnosisMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *DiagnosisMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[diagnosis.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *DiagnosisMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DiagnosisMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, diagnosis.FieldConfidence)
}

// SetScores sets the "scores" field.
func (m *DiagnosisMutation) SetScores(value map[string]int) {
	m.scores = &value
}

// Scores returns the value of the "scores" field in the mutation.
func (m *DiagnosisMutation) Scores() (r map[string]int, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldScores(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ClearScores clears the value of the "scores" field.
func (m *DiagnosisMutation) ClearScores() {
	m.scores = nil
	m.clearedFields[diagnosis.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *DiagnosisMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *DiagnosisMutation) ResetScores() {
	m.scores = nil
	delete(m.clearedFields, diagnosis.FieldScores)
}

// SetCategoryScores sets the "category_scores" field.
func (m *DiagnosisMutation) SetCategoryScores(value map[string]int) {
	m.category_scores = &value
}

// CategoryScores returns the value of the "category_scores" field in the mutation.
func (m *DiagnosisMutation) CategoryScores() (r map[string]int, exists bool) {
	v := m.category_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryScores returns the old "category_scores" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldCategoryScores(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryScores: %w", err)
	}
	return oldValue.CategoryScores, nil
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (m *DiagnosisMutation) ClearCategoryScores() {
	m.category_scores = nil
	m.clearedFields[diagnosis.FieldCategoryScores] = struct{}{}
}

// CategoryScoresCleared returns if the "category_scores" field was cleared in this mutation.
func (m *DiagnosisMutation) CategoryScoresCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldCategoryScores]
	return ok
}

// ResetCategoryScores resets all changes to the "category_scores" field.
func (m *DiagnosisMutation) ResetCategoryScores() {
	m.category_scores = nil
	delete(m.clearedFields, diagnosis.FieldCategoryScores)
}

// SetTotalScore sets the "total_score" field.
func (m *DiagnosisMutation) SetTotalScore(i int) {
	m.total_score = &i
	m.addtotal_score = nil
}

// TotalScore returns the value of the "total_score" field in the mutation.
func (m *DiagnosisMutation) TotalScore() (r int, exists bool) {
	v := m.total_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScore returns the old "total_score" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldTotalScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScore: %w", err)
	}
	return oldValue.TotalScore, nil
}

// AddTotalScore adds i to the "total_score" field.
func (m *DiagnosisMutation) AddTotalScore(i int) {
	if m.addtotal_score != nil {
		*m.addtotal_score += i
	} else {
		m.addtotal_score = &i
	}
}

// AddedTotalScore returns the value that was added to the "total_score" field in this mutation.
func (m *DiagnosisMutation) AddedTotalScore() (r int, exists bool) {
	v := m.addtotal_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalScore clears the value of the "total_score" field.
func (m *DiagnosisMutation) ClearTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
	m.clearedFields[diagnosis.FieldTotalScore] = struct{}{}
}

// TotalScoreCleared returns if the "total_score" field was cleared in this mutation.
func (m *DiagnosisMutation) TotalScoreCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldTotalScore]
	return ok
}

// ResetTotalScore resets all changes to the "total_score" field.
func (m *DiagnosisMutation) ResetTotalScore() {
	m.total_score = nil
	m.addtotal_score = nil
	delete(m.clearedFields, diagnosis.FieldTotalScore)
}

// SetVideoData sets the "video_data" field.
func (m *DiagnosisMutation) SetVideoData(value []map[string]interface{}) {
	m.video_data = &value
	m.appendvideo_data = nil
}

// VideoData returns the value of the "video_data" field in the mutation.
func (m *DiagnosisMutation) VideoData() (r []map[string]interface{}, exists bool) {
	v := m.video_data
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoData returns the old "video_data" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldVideoData(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoData: %w", err)
	}
	return oldValue.VideoData, nil
}

// AppendVideoData adds value to the "video_data" field.
func (m *DiagnosisMutation) AppendVideoData(value []map[string]interface{}) {
	m.appendvideo_data = append(m.appendvideo_data, value...)
}

// AppendedVideoData returns the list of values that were appended to the "video_data" field in this mutation.
func (m *DiagnosisMutation) AppendedVideoData() ([]map[string]interface{}, bool) {
	if len(m.appendvideo_data) == 0 {
		return nil, false
	}
	return m.appendvideo_data, true
}

// ClearVideoData clears the value of the "video_data" field.
func (m *DiagnosisMutation) ClearVideoData() {
	m.video_data = nil
	m.appendvideo_data = nil
	m.clearedFields[diagnosis.FieldVideoData] = struct{}{}
}

// VideoDataCleared returns if the "video_data" field was cleared in this mutation.
func (m *DiagnosisMutation) VideoDataCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldVideoData]
	return ok
}

// ResetVideoData resets all changes to the "video_data" field.
func (m *DiagnosisMutation) ResetVideoData() {
	m.video_data = nil
	m.appendvideo_data = nil
	delete(m.clearedFields, diagnosis.FieldVideoData)
}

// SetProductData sets the "product_data" field.
func (m *DiagnosisMutation) SetProductData(value []map[string]interface{}) {
	m.product_data = &value
	m.appendproduct_data = nil
}

// ProductData returns the value of the "product_data" field in the mutation.
func (m *DiagnosisMutation) ProductData() (r []map[string]interface{}, exists bool) {
	v := m.product_data
	if v == nil {
		return
	}
	return *v, true
}

// OldProductData returns the old "product_data" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldProductData(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductData: %w", err)
	}
	return oldValue.ProductData, nil
}

// AppendProductData adds value to the "product_data" field.
func (m *DiagnosisMutation) AppendProductData(value []map[string]interface{}) {
	m.appendproduct_data = append(m.appendproduct_data, value...)
}

// AppendedProductData returns the list of values that were appended to the "product_data" field in this mutation.
func (m *DiagnosisMutation) AppendedProductData() ([]map[string]interface{}, bool) {
	if len(m.appendproduct_data) == 0 {
		return nil, false
	}
	return m.appendproduct_data, true
}

// ClearProductData clears the value of the "product_data" field.
func (m *DiagnosisMutation) ClearProductData() {
	m.product_data = nil
	m.appendproduct_data = nil
	m.clearedFields[diagnosis.FieldProductData] = struct{}{}
}

// ProductDataCleared returns if the "product_data" field was cleared in this mutation.
func (m *DiagnosisMutation) ProductDataCleared() bool {
	_, ok := m.clearedFields[diagnosis.FieldProductData]
	return ok
}

// ResetProductData resets all changes to the "product_data" field.
func (m *DiagnosisMutation) ResetProductData() {
	m.product_data = nil
	m.appendproduct_data = nil
	delete(m.clearedFields, diagnosis.FieldProductData)
}

// SetIsPublic sets the "is_public" field.
func (m *DiagnosisMutation) SetIsPublic(b bool) {
	m.is_public = &b
}

// IsPublic returns the value of the "is_public" field in the mutation.
func (m *DiagnosisMutation) IsPublic() (r bool, exists bool) {
	v := m.is_public
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPublic returns the old "is_public" field's value of the Diagnosis entity.
// If the Diagnosis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiagnosisMutation) OldIsPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPublic: %w", err)
	}
	return oldValue.IsPublic, nil
}

// ResetIsPublic resets all changes to the "is_public" field.
func (m *DiagnosisMutation) ResetIsPublic() {
	m.is_public = nil
}

// ClearMember clears the "member" edge to the Member entity.
func (m *DiagnosisMutation) ClearMember() {
	m.clearedmember = true
	m.clearedFields[diagnosis.FieldMemberID] = struct{}{}
}

// MemberCleared reports if the "member" edge to the Member entity was cleared.
func (m *DiagnosisMutation) MemberCleared() bool {
	return m.MemberIDCleared() || m.clearedmember
}

// MemberIDs returns the "member" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemberID instead. It exists only for internal usage by the builders.
func (m *DiagnosisMutation) MemberIDs() (ids []uuid.UUID) {
	if id := m.member; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMember resets all changes to the "member" edge.
func (m *DiagnosisMutation) ResetMember() {
	m.member = nil
	m.clearedmember = false
}

// Where appends a list predicates to the DiagnosisMutation builder.
func (m *DiagnosisMutation) Where(ps ...predicate.Diagnosis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiagnosisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiagnosisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Diagnosis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiagnosisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiagnosisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Diagnosis).
func (m *DiagnosisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiagnosisMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, diagnosis.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, diagnosis.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, diagnosis.FieldDeletedAt)
	}
	if m.member != nil {
		fields = append(fields, diagnosis.FieldMemberID)
	}
	if m.source != nil {
		fields = append(fields, diagnosis.FieldSource)
	}
	if m.skin_type != nil {
		fields = append(fields, diagnosis.FieldSkinType)
	}
	if m.image_key != nil {
		fields = append(fields, diagnosis.FieldImageKey)
	}
	if m.confidence != nil {
		fields = append(fields, diagnosis.FieldConfidence)
	}
	if m.scores != nil {
		fields = append(fields, diagnosis.FieldScores)
	}
	if m.category_scores != nil {
		fields = append(fields, diagnosis.FieldCategoryScores)
	}
	if m.total_score != nil {
		fields = append(fields, diagnosis.FieldTotalScore)
	}
	if m.video_data != nil {
		fields = append(fields, diagnosis.FieldVideoData)
	}
	if m.product_data != nil {
		fields = append(fields, diagnosis.FieldProductData)
	}
	if m.is_public != nil {
		fields = append(fields, diagnosis.FieldIsPublic)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiagnosisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case diagnosis.FieldCreatedAt:
		return m.CreatedAt()
	case diagnosis.FieldUpdatedAt:
		return m.UpdatedAt()
	case diagnosis.FieldDeletedAt:
		return m.DeletedAt()
	case diagnosis.FieldMemberID:
		return m.MemberID()
	case diagnosis.FieldSource:
		return m.Source()
	case diagnosis.FieldSkinType:
		return m.SkinType()
	case diagnosis.FieldImageKey:
		return m.ImageKey()
	case diagnosis.FieldConfidence:
		return m.Confidence()
	case diagnosis.FieldScores:
		return m.Scores()
	case diagnosis.FieldCategoryScores:
		return m.CategoryScores()
	case diagnosis.FieldTotalScore:
		return m.TotalScore()
	case diagnosis.FieldVideoData:
		return m.VideoData()
	case diagnosis.FieldProductData:
		return m.ProductData()
	case diagnosis.FieldIsPublic:
		return m.IsPublic()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiagnosisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case diagnosis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case diagnosis.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case diagnosis.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case diagnosis.FieldMemberID:
		return m.OldMemberID(ctx)
	case diagnosis.FieldSource:
		return m.OldSource(ctx)
	case diagnosis.FieldSkinType:
		return m.OldSkinType(ctx)
	case diagnosis.FieldImageKey:
		return m.OldImageKey(ctx)
	case diagnosis.FieldConfidence:
		return m.OldConfidence(ctx)
	case diagnosis.FieldScores:
		return m.OldScores(ctx)
	case diagnosis.FieldCategoryScores:
		return m.OldCategoryScores(ctx)
	case diagnosis.FieldTotalScore:
		return m.OldTotalScore(ctx)
	case diagnosis.FieldVideoData:
		return m.OldVideoData(ctx)
	case diagnosis.FieldProductData:
		return m.OldProductData(ctx)
	case diagnosis.FieldIsPublic:
		return m.OldIsPublic(ctx)
	}
	return nil, fmt.Errorf("unknown Diagnosis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case diagnosis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case diagnosis.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case diagnosis.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case diagnosis.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case diagnosis.FieldSource:
		v, ok := value.(diagnosis.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case diagnosis.FieldSkinType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkinType(v)
		return nil
	case diagnosis.FieldImageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageKey(v)
		return nil
	case diagnosis.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case diagnosis.FieldScores:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case diagnosis.FieldCategoryScores:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryScores(v)
		return nil
	case diagnosis.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScore(v)
		return nil
	case diagnosis.FieldVideoData:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoData(v)
		return nil
	case diagnosis.FieldProductData:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductData(v)
		return nil
	case diagnosis.FieldIsPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPublic(v)
		return nil
	}
	return fmt.Errorf("unknown Diagnosis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiagnosisMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, diagnosis.FieldConfidence)
	}
	if m.addtotal_score != nil {
		fields = append(fields, diagnosis.FieldTotalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiagnosisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case diagnosis.FieldConfidence:
		return m.AddedConfidence()
	case diagnosis.FieldTotalScore:
		return m.AddedTotalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiagnosisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case diagnosis.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case diagnosis.FieldTotalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScore(v)
		return nil
	}
	return fmt.Errorf("unknown Diagnosis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiagnosisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(diagnosis.FieldDeletedAt) {
		fields = append(fields, diagnosis.FieldDeletedAt)
	}
	if m.FieldCleared(diagnosis.FieldMemberID) {
		fields = append(fields, diagnosis.FieldMemberID)
	}
	if m.FieldCleared(diagnosis.FieldImageKey) {
		fields = append(fields, diagnosis.FieldImageKey)
	}
	if m.FieldCleared(diagnosis.FieldConfidence) {
		fields = append(fields, diagnosis.FieldConfidence)
	}
	if m.FieldCleared(diagnosis.FieldScores) {
		fields = append(fields, diagnosis.FieldScores)
	}
	if m.FieldCleared(diagnosis.FieldCategoryScores) {
		fields = append(fields, diagnosis.FieldCategoryScores)
	}
	if m.FieldCleared(diagnosis.FieldTotalScore) {
		fields = append(fields, diagnosis.FieldTotalScore)
	}
	if m.FieldCleared(diagnosis.FieldVideoData) {
		fields = append(fields, diagnosis.FieldVideoData)
	}
	if m.FieldCleared(diagnosis.FieldProductData) {
		fields = append(fields, diagnosis.FieldProductData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiagnosisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiagnosisMutation) ClearField(name string) error {
	switch name {
	case diagnosis.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case diagnosis.FieldMemberID:
		m.ClearMemberID()
		return nil
	case diagnosis.FieldImageKey:
		m.ClearImageKey()
		return nil
	case diagnosis.FieldConfidence:
		m.ClearConfidence()
		return nil
	case diagnosis.FieldScores:
		m.ClearScores()
		return nil
	case diagnosis.FieldCategoryScores:
		m.ClearCategoryScores()
		return nil
	case diagnosis.FieldTotalScore:
		m.ClearTotalScore()
		return nil
	case diagnosis.FieldVideoData:
		m.ClearVideoData()
		return nil
	case diagnosis.FieldProductData:
		m.ClearProductData()
		return nil
	}
	return fmt.Errorf("unknown Diagnosis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiagnosisMutation) ResetField(name string) error {
	switch name {
	case diagnosis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case diagnosis.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case diagnosis.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case diagnosis.FieldMemberID:
		m.ResetMemberID()
		return nil
	case diagnosis.FieldSource:
		m.ResetSource()
		return nil
	case diagnosis.FieldSkinType:
		m.ResetSkinType()
		return nil
	case diagnosis.FieldImageKey:
		m.ResetImageKey()
		return nil
	case diagnosis.FieldConfidence:
		m.ResetConfidence()
		return nil
	case diagnosis.FieldScores:
		m.ResetScores()
		return nil
	case diagnosis.FieldCategoryScores:
		m.ResetCategoryScores()
		return nil
	case diagnosis.FieldTotalScore:
		m.ResetTotalScore()
		return nil
	case diagnosis.FieldVideoData:
		m.ResetVideoData()
		return nil
	case diagnosis.FieldProductData:
		m.ResetProductData()
		return nil
	case diagnosis.FieldIsPublic:
		m.ResetIsPublic()
		return nil
	}
	return fmt.Errorf("unknown Diagnosis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiagnosisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.member != nil {
		edges = append(edges, diagnosis.EdgeMember)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiagnosisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case diagnosis.EdgeMember:
		if id := m.member; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiagnosisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiagnosisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiagnosisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmember {
		edges = append(edges, diagnosis.EdgeMember)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiagnosisMutation) EdgeCleared(name string) bool {
	switch name {
	case diagnosis.EdgeMember:
		return m.clearedmember
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiagnosisMutation) ClearEdge(name string) error {
	switch name {
	case diagnosis.EdgeMember:
		m.ClearMember()
		return nil
	}
	return fmt.Errorf("unknown Diagnosis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiagnosisMutation) ResetEdge(name string) error {
	switch name {
	case diagnosis.EdgeMember:
		m.ResetMember()
		return nil
	}
	return fmt.Errorf("unknown Diagnosis edge %s", name)
}

// MemberMutation represents an operation that mutates the Member nodes in the graph.
type MemberMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	deleted_at        *time.Time
	name              *string
	email             *string
	provider          *member.Provider
	provider_id       *string
	profile_image_url *string
	skin_type         *string
	last_login_at     *time.Time
	clearedFields     map[string]struct{}
	diagnoses         map[uuid.UUID]struct{}
	removeddiagnoses  map[uuid.UUID]struct{}
	cleareddiagnoses  bool
	done              bool
	oldValue          func(context.Context) (*Member, error)
	predicates        []predicate.Member
}

var _ ent.Mutation = (*MemberMutation)(nil)

// memberOption allows management of the mutation configuration using functional options.
type memberOption func(*MemberMutation)

// newMemberMutation creates new mutation for the Member entity.
func newMemberMutation(c config, op Op, opts ...memberOption) *MemberMutation {
	m := &MemberMutation{
		config:        c,
		op:            op,
		typ:           TypeMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemberID sets the ID field of the mutation.
func withMemberID(id uuid.UUID) memberOption {
	return func(m *MemberMutation) {
		var (
			err   error
			once  sync.Once
			value *Member
		)
		m.oldValue = func(ctx context.Context) (*Member, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Member.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMember sets the old Member of the mutation.
func withMember(node *Member) memberOption {
	return func(m *MemberMutation) {
		m.oldValue = func(context.Context) (*Member, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Member entities.
func (m *MemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Member.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MemberMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MemberMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MemberMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MemberMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MemberMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MemberMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[member.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MemberMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[member.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MemberMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, member.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *MemberMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MemberMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MemberMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *MemberMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *MemberMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *MemberMutation) ResetEmail() {
	m.email = nil
}

// SetProvider sets the "provider" field.
func (m *MemberMutation) SetProvider(value member.Provider) {
	m.provider = &value
}

// Provider returns the value of the "provider" field in the mutation.
func (m *MemberMutation) Provider() (r member.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldProvider(ctx context.Context) (v member.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *MemberMutation) ResetProvider() {
	m.provider = nil
}

// SetProviderID sets the "provider_id" field.
func (m *MemberMutation) SetProviderID(s string) {
	m.provider_id = &s
}

// ProviderID returns the value of the "provider_id" field in the mutation.
func (m *MemberMutation) ProviderID() (r string, exists bool) {
	v := m.provider_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderID returns the old "provider_id" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldProviderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderID: %w", err)
	}
	return oldValue.ProviderID, nil
}

// ResetProviderID resets all changes to the "provider_id" field.
func (m *MemberMutation) ResetProviderID() {
	m.provider_id = nil
}

// SetProfileImageURL sets the "profile_image_url" field.
func (m *MemberMutation) SetProfileImageURL(s string) {
	m.profile_image_url = &s
}

// ProfileImageURL returns the value of the "profile_image_url" field in the mutation.
func (m *MemberMutation) ProfileImageURL() (r string, exists bool) {
	v := m.profile_image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileImageURL returns the old "profile_image_url" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldProfileImageURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileImageURL: %w", err)
	}
	return oldValue.ProfileImageURL, nil
}

// ClearProfileImageURL clears the value of the "profile_image_url" field.
func (m *MemberMutation) ClearProfileImageURL() {
	m.profile_image_url = nil
	m.clearedFields[member.FieldProfileImageURL] = struct{}{}
}

// ProfileImageURLCleared returns if the "profile_image_url" field was cleared in this mutation.
func (m *MemberMutation) ProfileImageURLCleared() bool {
	_, ok := m.clearedFields[member.FieldProfileImageURL]
	return ok
}

// ResetProfileImageURL resets all changes to the "profile_image_url" field.
func (m *MemberMutation) ResetProfileImageURL() {
	m.profile_image_url = nil
	delete(m.clearedFields, member.FieldProfileImageURL)
}

// SetSkinType sets the "skin_type" field.
func (m *MemberMutation) SetSkinType(s string) {
	m.skin_type = &s
}

// SkinType returns the value of the "skin_type" field in the mutation.
func (m *MemberMutation) SkinType() (r string, exists bool) {
	v := m.skin_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSkinType returns the old "skin_type" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldSkinType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkinType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkinType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkinType: %w", err)
	}
	return oldValue.SkinType, nil
}

// ClearSkinType clears the value of the "skin_type" field.
func (m *MemberMutation) ClearSkinType() {
	m.skin_type = nil
	m.clearedFields[member.FieldSkinType] = struct{}{}
}

// SkinTypeCleared returns if the "skin_type" field was cleared in this mutation.
func (m *MemberMutation) SkinTypeCleared() bool {
	_, ok := m.clearedFields[member.FieldSkinType]
	return ok
}

// ResetSkinType resets all changes to the "skin_type" field.
func (m *MemberMutation) ResetSkinType() {
	m.skin_type = nil
	delete(m.clearedFields, member.FieldSkinType)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *MemberMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *MemberMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *MemberMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[member.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *MemberMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[member.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *MemberMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, member.FieldLastLoginAt)
}

// AddDiagnosisIDs adds the "diagnoses" edge to the Diagnosis entity by ids.
func (m *MemberMutation) AddDiagnosisIDs(ids ...uuid.UUID) {
	if m.diagnoses == nil {
		m.diagnoses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.diagnoses[ids[i]] = struct{}{}
	}
}

// ClearDiagnoses clears the "diagnoses" edge to the Diagnosis entity.
func (m *MemberMutation) ClearDiagnoses() {
	m.cleareddiagnoses = true
}

// DiagnosesCleared reports if the "diagnoses" edge to the Diagnosis entity was cleared.
func (m *MemberMutation) DiagnosesCleared() bool {
	return m.cleareddiagnoses
}

// RemoveDiagnosisIDs removes the "diagnoses" edge to the Diagnosis entity by IDs.
func (m *MemberMutation) RemoveDiagnosisIDs(ids ...uuid.UUID) {
	if m.removeddiagnoses == nil {
		m.removeddiagnoses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.diagnoses, ids[i])
		m.removeddiagnoses[ids[i]] = struct{}{}
	}
}

// RemovedDiagnoses returns the removed IDs of the "diagnoses" edge to the Diagnosis entity.
func (m *MemberMutation) RemovedDiagnosesIDs() (ids []uuid.UUID) {
	for id := range m.removeddiagnoses {
		ids = append(ids, id)
	}
	return
}

// DiagnosesIDs returns the "diagnoses" edge IDs in the mutation.
func (m *MemberMutation) DiagnosesIDs() (ids []uuid.UUID) {
	for id := range m.diagnoses {
		ids = append(ids, id)
	}
	return
}

// ResetDiagnoses resets all changes to the "diagnoses" edge.
func (m *MemberMutation) ResetDiagnoses() {
	m.diagnoses = nil
	m.cleareddiagnoses = false
	m.removeddiagnoses = nil
}

// Where appends a list predicates to the MemberMutation builder.
func (m *MemberMutation) Where(ps ...predicate.Member) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Member, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Member).
func (m *MemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemberMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, member.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, member.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, member.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, member.FieldName)
	}
	if m.email != nil {
		fields = append(fields, member.FieldEmail)
	}
	if m.provider != nil {
		fields = append(fields, member.FieldProvider)
	}
	if m.provider_id != nil {
		fields = append(fields, member.FieldProviderID)
	}
	if m.profile_image_url != nil {
		fields = append(fields, member.FieldProfileImageURL)
	}
	if m.skin_type != nil {
		fields = append(fields, member.FieldSkinType)
	}
	if m.last_login_at != nil {
		fields = append(fields, member.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case member.FieldCreatedAt:
		return m.CreatedAt()
	case member.FieldUpdatedAt:
		return m.UpdatedAt()
	case member.FieldDeletedAt:
		return m.DeletedAt()
	case member.FieldName:
		return m.Name()
	case member.FieldEmail:
		return m.Email()
	case member.FieldProvider:
		return m.Provider()
	case member.FieldProviderID:
		return m.ProviderID()
	case member.FieldProfileImageURL:
		return m.ProfileImageURL()
	case member.FieldSkinType:
		return m.SkinType()
	case member.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case member.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case member.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case member.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case member.FieldName:
		return m.OldName(ctx)
	case member.FieldEmail:
		return m.OldEmail(ctx)
	case member.FieldProvider:
		return m.OldProvider(ctx)
	case member.FieldProviderID:
		return m.OldProviderID(ctx)
	case member.FieldProfileImageURL:
		return m.OldProfileImageURL(ctx)
	case member.FieldSkinType:
		return m.OldSkinType(ctx)
	case member.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown Member field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case member.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case member.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case member.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case member.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case member.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case member.FieldProvider:
		v, ok := value.(member.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case member.FieldProviderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderID(v)
		return nil
	case member.FieldProfileImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileImageURL(v)
		return nil
	case member.FieldSkinType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkinType(v)
		return nil
	case member.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Member numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(member.FieldDeletedAt) {
		fields = append(fields, member.FieldDeletedAt)
	}
	if m.FieldCleared(member.FieldProfileImageURL) {
		fields = append(fields, member.FieldProfileImageURL)
	}
	if m.FieldCleared(member.FieldSkinType) {
		fields = append(fields, member.FieldSkinType)
	}
	if m.FieldCleared(member.FieldLastLoginAt) {
		fields = append(fields, member.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemberMutation) ClearField(name string) error {
	switch name {
	case member.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case member.FieldProfileImageURL:
		m.ClearProfileImageURL()
		return nil
	case member.FieldSkinType:
		m.ClearSkinType()
		return nil
	case member.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown Member nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemberMutation) ResetField(name string) error {
	switch name {
	case member.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case member.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case member.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case member.FieldName:
		m.ResetName()
		return nil
	case member.FieldEmail:
		m.ResetEmail()
		return nil
	case member.FieldProvider:
		m.ResetProvider()
		return nil
	case member.FieldProviderID:
		m.ResetProviderID()
		return nil
	case member.FieldProfileImageURL:
		m.ResetProfileImageURL()
		return nil
	case member.FieldSkinType:
		m.ResetSkinType()
		return nil
	case member.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.diagnoses != nil {
		edges = append(edges, member.EdgeDiagnoses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case member.EdgeDiagnoses:
		ids := make([]ent.Value, 0, len(m.diagnoses))
		for id := range m.diagnoses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddiagnoses != nil {
		edges = append(edges, member.EdgeDiagnoses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemberMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case member.EdgeDiagnoses:
		ids := make([]ent.Value, 0, len(m.removeddiagnoses))
		for id := range m.removeddiagnoses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddiagnoses {
		edges = append(edges, member.EdgeDiagnoses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemberMutation) EdgeCleared(name string) bool {
	switch name {
	case member.EdgeDiagnoses:
		return m.cleareddiagnoses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemberMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Member unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemberMutation) ResetEdge(name string) error {
	switch name {
	case member.EdgeDiagnoses:
		m.ResetDiagnoses()
		return nil
	}
	return fmt.Errorf("unknown Member edge %s", name)
}
