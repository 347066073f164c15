// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyflow/ent/account"
	"github.com/abhisek/studyflow/ent/coursecontent"
	"github.com/abhisek/studyflow/ent/llmrequestevent"
	"github.com/abhisek/studyflow/ent/performance"
	"github.com/abhisek/studyflow/ent/predicate"
	"github.com/abhisek/studyflow/ent/student"
	"github.com/abhisek/studyflow/ent/weekquiz"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount         = "Account"
	TypeCourseContent   = "CourseContent"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypePerformance     = "Performance"
	TypeStudent         = "Student"
	TypeWeekQuiz        = "WeekQuiz"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op              Op
	typ             string
	id              *int
	email           *string
	password_hash   *string
	total_logins    *int
	addtotal_logins *int
	created_at      *time.Time
	last_login      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Account, error)
	predicates      []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id int) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v string, err error) {
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
func (m *AccountMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AccountMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AccountMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AccountMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetTotalLogins sets the "total_logins" field.
func (m *AccountMutation) SetTotalLogins(i int) {
	m.total_logins = &i
	m.addtotal_logins = nil
}

// TotalLogins returns the value of the "total_logins" field in the mutation.
func (m *AccountMutation) TotalLogins() (r int, exists bool) {
	v := m.total_logins
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLogins returns the old "total_logins" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTotalLogins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLogins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLogins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLogins: %w", err)
	}
	return oldValue.TotalLogins, nil
}

// AddTotalLogins adds i to the "total_logins" field.
func (m *AccountMutation) AddTotalLogins(i int) {
	if m.addtotal_logins != nil {
		*m.addtotal_logins += i
	} else {
		m.addtotal_logins = &i
	}
}

// AddedTotalLogins returns the value that was added to the "total_logins" field in this mutation.
func (m *AccountMutation) AddedTotalLogins() (r int, exists bool) {
	v := m.addtotal_logins
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLogins resets all changes to the "total_logins" field.
func (m *AccountMutation) ResetTotalLogins() {
	m.total_logins = nil
	m.addtotal_logins = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastLogin sets the "last_login" field.
func (m *AccountMutation) SetLastLogin(t time.Time) {
	m.last_login = &t
}

// LastLogin returns the value of the "last_login" field in the mutation.
func (m *AccountMutation) LastLogin() (r time.Time, exists bool) {
	v := m.last_login
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLogin returns the old "last_login" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastLogin(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLogin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLogin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLogin: %w", err)
	}
	return oldValue.LastLogin, nil
}

// ClearLastLogin clears the value of the "last_login" field.
func (m *AccountMutation) ClearLastLogin() {
	m.last_login = nil
	m.clearedFields[account.FieldLastLogin] = struct{}{}
}

// LastLoginCleared returns if the "last_login" field was cleared in this mutation.
func (m *AccountMutation) LastLoginCleared() bool {
	_, ok := m.clearedFields[account.FieldLastLogin]
	return ok
}

// ResetLastLogin resets all changes to the "last_login" field.
func (m *AccountMutation) ResetLastLogin() {
	m.last_login = nil
	delete(m.clearedFields, account.FieldLastLogin)
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, account.FieldPasswordHash)
	}
	if m.total_logins != nil {
		fields = append(fields, account.FieldTotalLogins)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.last_login != nil {
		fields = append(fields, account.FieldLastLogin)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldEmail:
		return m.Email()
	case account.FieldPasswordHash:
		return m.PasswordHash()
	case account.FieldTotalLogins:
		return m.TotalLogins()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldLastLogin:
		return m.LastLogin()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case account.FieldTotalLogins:
		return m.OldTotalLogins(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldLastLogin:
		return m.OldLastLogin(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case account.FieldTotalLogins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLogins(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldLastLogin:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLogin(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_logins != nil {
		fields = append(fields, account.FieldTotalLogins)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldTotalLogins:
		return m.AddedTotalLogins()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldTotalLogins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLogins(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldLastLogin) {
		fields = append(fields, account.FieldLastLogin)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldLastLogin:
		m.ClearLastLogin()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case account.FieldTotalLogins:
		m.ResetTotalLogins()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldLastLogin:
		m.ResetLastLogin()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Account edge %s", name)
}

// CourseContentMutation represents an operation that mutates the CourseContent nodes in the graph.
type CourseContentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	roll_no       *string
	week_no       *int
	addweek_no    *int
	body          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CourseContent, error)
	predicates    []predicate.CourseContent
}

var _ ent.Mutation = (*CourseContentMutation)(nil)

// coursecontentOption allows management of the mutation configuration using functional options.
type coursecontentOption func(*CourseContentMutation)

// newCourseContentMutation creates new mutation for the CourseContent entity.
func newCourseContentMutation(c config, op Op, opts ...coursecontentOption) *CourseContentMutation {
	m := &CourseContentMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseContentID sets the ID field of the mutation.
func withCourseContentID(id int) coursecontentOption {
	return func(m *CourseContentMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseContent
		)
		m.oldValue = func(ctx context.Context) (*CourseContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseContent sets the old CourseContent of the mutation.
func withCourseContent(node *CourseContent) coursecontentOption {
	return func(m *CourseContentMutation) {
		m.oldValue = func(context.Context) (*CourseContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseContentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseContentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRollNo sets the "roll_no" field.
func (m *CourseContentMutation) SetRollNo(s string) {
	m.roll_no = &s
}

// RollNo returns the value of the "roll_no" field in the mutation.
func (m *CourseContentMutation) RollNo() (r string, exists bool) {
	v := m.roll_no
	if v == nil {
		return
	}
	return *v, true
}

// OldRollNo returns the old "roll_no" field's value of the CourseContent entity.
// If the CourseContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseContentMutation) OldRollNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRollNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRollNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRollNo: %w", err)
	}
	return oldValue.RollNo, nil
}

// ResetRollNo resets all changes to the "roll_no" field.
func (m *CourseContentMutation) ResetRollNo() {
	m.roll_no = nil
}

// SetWeekNo sets the "week_no" field.
func (m *CourseContentMutation) SetWeekNo(i int) {
	m.week_no = &i
	m.addweek_no = nil
}

// WeekNo returns the value of the "week_no" field in the mutation.
func (m *CourseContentMutation) WeekNo() (r int, exists bool) {
	v := m.week_no
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekNo returns the old "week_no" field's value of the CourseContent entity.
// If the CourseContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseContentMutation) OldWeekNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekNo: %w", err)
	}
	return oldValue.WeekNo, nil
}

// AddWeekNo adds i to the "week_no" field.
func (m *CourseContentMutation) AddWeekNo(i int) {
	if m.addweek_no != nil {
		*m.addweek_no += i
	} else {
		m.addweek_no = &i
	}
}

// AddedWeekNo returns the value that was added to the "week_no" field in this mutation.
func (m *CourseContentMutation) AddedWeekNo() (r int, exists bool) {
	v := m.addweek_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekNo resets all changes to the "week_no" field.
func (m *CourseContentMutation) ResetWeekNo() {
	m.week_no = nil
	m.addweek_no = nil
}

// SetBody sets the "body" field.
func (m *CourseContentMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *CourseContentMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the CourseContent entity.
// If the CourseContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseContentMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *CourseContentMutation) ResetBody() {
	m.body = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CourseContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourseContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CourseContent entity.
// If the CourseContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CourseContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CourseContentMutation builder.
func (m *CourseContentMutation) Where(ps ...predicate.CourseContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseContent).
func (m *CourseContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseContentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.roll_no != nil {
		fields = append(fields, coursecontent.FieldRollNo)
	}
	if m.week_no != nil {
		fields = append(fields, coursecontent.FieldWeekNo)
	}
	if m.body != nil {
		fields = append(fields, coursecontent.FieldBody)
	}
	if m.created_at != nil {
		fields = append(fields, coursecontent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coursecontent.FieldRollNo:
		return m.RollNo()
	case coursecontent.FieldWeekNo:
		return m.WeekNo()
	case coursecontent.FieldBody:
		return m.Body()
	case coursecontent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coursecontent.FieldRollNo:
		return m.OldRollNo(ctx)
	case coursecontent.FieldWeekNo:
		return m.OldWeekNo(ctx)
	case coursecontent.FieldBody:
		return m.OldBody(ctx)
	case coursecontent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CourseContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coursecontent.FieldRollNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRollNo(v)
		return nil
	case coursecontent.FieldWeekNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekNo(v)
		return nil
	case coursecontent.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case coursecontent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CourseContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseContentMutation) AddedFields() []string {
	var fields []string
	if m.addweek_no != nil {
		fields = append(fields, coursecontent.FieldWeekNo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coursecontent.FieldWeekNo:
		return m.AddedWeekNo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coursecontent.FieldWeekNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekNo(v)
		return nil
	}
	return fmt.Errorf("unknown CourseContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseContentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseContentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CourseContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseContentMutation) ResetField(name string) error {
	switch name {
	case coursecontent.FieldRollNo:
		m.ResetRollNo()
		return nil
	case coursecontent.FieldWeekNo:
		m.ResetWeekNo()
		return nil
	case coursecontent.FieldBody:
		m.ResetBody()
		return nil
	case coursecontent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CourseContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseContentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseContentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseContentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CourseContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseContentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CourseContent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
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
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// PerformanceMutation represents an operation that mutates the Performance nodes in the graph.
type PerformanceMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	roll_no            *string
	topics_excellented *string
	outcome_of_course  *string
	student_progress   *string
	last_updated       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Performance, error)
	predicates         []predicate.Performance
}

var _ ent.Mutation = (*PerformanceMutation)(nil)

// performanceOption allows management of the mutation configuration using functional options.
type performanceOption func(*PerformanceMutation)

// newPerformanceMutation creates new mutation for the Performance entity.
func newPerformanceMutation(c config, op Op, opts ...performanceOption) *PerformanceMutation {
	m := &PerformanceMutation{
		config:        c,
		op:            op,
		typ:           TypePerformance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceID sets the ID field of the mutation.
func withPerformanceID(id int) performanceOption {
	return func(m *PerformanceMutation) {
		var (
			err   error
			once  sync.Once
			value *Performance
		)
		m.oldValue = func(ctx context.Context) (*Performance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Performance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformance sets the old Performance of the mutation.
func withPerformance(node *Performance) performanceOption {
	return func(m *PerformanceMutation) {
		m.oldValue = func(context.Context) (*Performance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Performance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRollNo sets the "roll_no" field.
func (m *PerformanceMutation) SetRollNo(s string) {
	m.roll_no = &s
}

// RollNo returns the value of the "roll_no" field in the mutation.
func (m *PerformanceMutation) RollNo() (r string, exists bool) {
	v := m.roll_no
	if v == nil {
		return
	}
	return *v, true
}

// OldRollNo returns the old "roll_no" field's value of the Performance entity.
// If the Performance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMutation) OldRollNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRollNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRollNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRollNo: %w", err)
	}
	return oldValue.RollNo, nil
}

// ResetRollNo resets all changes to the "roll_no" field.
func (m *PerformanceMutation) ResetRollNo() {
	m.roll_no = nil
}

// SetTopicsExcellented sets the "topics_excellented" field.
func (m *PerformanceMutation) SetTopicsExcellented(s string) {
	m.topics_excellented = &s
}

// TopicsExcellented returns the value of the "topics_excellented" field in the mutation.
func (m *PerformanceMutation) TopicsExcellented() (r string, exists bool) {
	v := m.topics_excellented
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicsExcellented returns the old "topics_excellented" field's value of the Performance entity.
// If the Performance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMutation) OldTopicsExcellented(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicsExcellented is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicsExcellented requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicsExcellented: %w", err)
	}
	return oldValue.TopicsExcellented, nil
}

// ResetTopicsExcellented resets all changes to the "topics_excellented" field.
func (m *PerformanceMutation) ResetTopicsExcellented() {
	m.topics_excellented = nil
}

// SetOutcomeOfCourse sets the "outcome_of_course" field.
func (m *PerformanceMutation) SetOutcomeOfCourse(s string) {
	m.outcome_of_course = &s
}

// OutcomeOfCourse returns the value of the "outcome_of_course" field in the mutation.
func (m *PerformanceMutation) OutcomeOfCourse() (r string, exists bool) {
	v := m.outcome_of_course
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcomeOfCourse returns the old "outcome_of_course" field's value of the Performance entity.
// If the Performance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMutation) OldOutcomeOfCourse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcomeOfCourse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcomeOfCourse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcomeOfCourse: %w", err)
	}
	return oldValue.OutcomeOfCourse, nil
}

// ResetOutcomeOfCourse resets all changes to the "outcome_of_course" field.
func (m *PerformanceMutation) ResetOutcomeOfCourse() {
	m.outcome_of_course = nil
}

// SetStudentProgress sets the "student_progress" field.
func (m *PerformanceMutation) SetStudentProgress(s string) {
	m.student_progress = &s
}

// StudentProgress returns the value of the "student_progress" field in the mutation.
func (m *PerformanceMutation) StudentProgress() (r string, exists bool) {
	v := m.student_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentProgress returns the old "student_progress" field's value of the Performance entity.
// If the Performance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMutation) OldStudentProgress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentProgress: %w", err)
	}
	return oldValue.StudentProgress, nil
}

// ResetStudentProgress resets all changes to the "student_progress" field.
func (m *PerformanceMutation) ResetStudentProgress() {
	m.student_progress = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *PerformanceMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *PerformanceMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the Performance entity.
// If the Performance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *PerformanceMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the PerformanceMutation builder.
func (m *PerformanceMutation) Where(ps ...predicate.Performance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Performance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Performance).
func (m *PerformanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.roll_no != nil {
		fields = append(fields, performance.FieldRollNo)
	}
	if m.topics_excellented != nil {
		fields = append(fields, performance.FieldTopicsExcellented)
	}
	if m.outcome_of_course != nil {
		fields = append(fields, performance.FieldOutcomeOfCourse)
	}
	if m.student_progress != nil {
		fields = append(fields, performance.FieldStudentProgress)
	}
	if m.last_updated != nil {
		fields = append(fields, performance.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performance.FieldRollNo:
		return m.RollNo()
	case performance.FieldTopicsExcellented:
		return m.TopicsExcellented()
	case performance.FieldOutcomeOfCourse:
		return m.OutcomeOfCourse()
	case performance.FieldStudentProgress:
		return m.StudentProgress()
	case performance.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performance.FieldRollNo:
		return m.OldRollNo(ctx)
	case performance.FieldTopicsExcellented:
		return m.OldTopicsExcellented(ctx)
	case performance.FieldOutcomeOfCourse:
		return m.OldOutcomeOfCourse(ctx)
	case performance.FieldStudentProgress:
		return m.OldStudentProgress(ctx)
	case performance.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown Performance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performance.FieldRollNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRollNo(v)
		return nil
	case performance.FieldTopicsExcellented:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicsExcellented(v)
		return nil
	case performance.FieldOutcomeOfCourse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcomeOfCourse(v)
		return nil
	case performance.FieldStudentProgress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentProgress(v)
		return nil
	case performance.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown Performance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Performance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Performance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceMutation) ResetField(name string) error {
	switch name {
	case performance.FieldRollNo:
		m.ResetRollNo()
		return nil
	case performance.FieldTopicsExcellented:
		m.ResetTopicsExcellented()
		return nil
	case performance.FieldOutcomeOfCourse:
		m.ResetOutcomeOfCourse()
		return nil
	case performance.FieldStudentProgress:
		m.ResetStudentProgress()
		return nil
	case performance.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown Performance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Performance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Performance edge %s", name)
}

// StudentMutation represents an operation that mutates the Student nodes in the graph.
type StudentMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	roll_no            *string
	name               *string
	domain             *string
	hours_per_day      *int
	addhours_per_day   *int
	weeks              *int
	addweeks           *int
	knowledge_scale    *int
	addknowledge_scale *int
	current_week_no    *int
	addcurrent_week_no *int
	current_step       *int
	addcurrent_step    *int
	cognitive_score    *int
	addcognitive_score *int
	cognitive_iq       *int
	addcognitive_iq    *int
	domain_score       *int
	adddomain_score    *int
	domain_iq          *int
	adddomain_iq       *int
	viva_score         *int
	addviva_score      *int
	viva_response      *string
	course_configured  *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Student, error)
	predicates         []predicate.Student
}

var _ ent.Mutation = (*StudentMutation)(nil)

// studentOption allows management of the mutation configuration using functional options.
type studentOption func(*StudentMutation)

// newStudentMutation creates new mutation for the Student entity.
func newStudentMutation(c config, op Op, opts ...studentOption) *StudentMutation {
	m := &StudentMutation{
		config:        c,
		op:            op,
		typ:           TypeStudent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentID sets the ID field of the mutation.
func withStudentID(id int) studentOption {
	return func(m *StudentMutation) {
		var (
			err   error
			once  sync.Once
			value *Student
		)
		m.oldValue = func(ctx context.Context) (*Student, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Student.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudent sets the old Student of the mutation.
func withStudent(node *Student) studentOption {
	return func(m *StudentMutation) {
		m.oldValue = func(context.Context) (*Student, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Student.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRollNo sets the "roll_no" field.
func (m *StudentMutation) SetRollNo(s string) {
	m.roll_no = &s
}

// RollNo returns the value of the "roll_no" field in the mutation.
func (m *StudentMutation) RollNo() (r string, exists bool) {
	v := m.roll_no
	if v == nil {
		return
	}
	return *v, true
}

// OldRollNo returns the old "roll_no" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldRollNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRollNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRollNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRollNo: %w", err)
	}
	return oldValue.RollNo, nil
}

// ResetRollNo resets all changes to the "roll_no" field.
func (m *StudentMutation) ResetRollNo() {
	m.roll_no = nil
}

// SetName sets the "name" field.
func (m *StudentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StudentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *StudentMutation) ResetName() {
	m.name = nil
}

// SetDomain sets the "domain" field.
func (m *StudentMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *StudentMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *StudentMutation) ResetDomain() {
	m.domain = nil
}

// SetHoursPerDay sets the "hours_per_day" field.
func (m *StudentMutation) SetHoursPerDay(i int) {
	m.hours_per_day = &i
	m.addhours_per_day = nil
}

// HoursPerDay returns the value of the "hours_per_day" field in the mutation.
func (m *StudentMutation) HoursPerDay() (r int, exists bool) {
	v := m.hours_per_day
	if v == nil {
		return
	}
	return *v, true
}

// OldHoursPerDay returns the old "hours_per_day" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldHoursPerDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoursPerDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoursPerDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoursPerDay: %w", err)
	}
	return oldValue.HoursPerDay, nil
}

// AddHoursPerDay adds i to the "hours_per_day" field.
func (m *StudentMutation) AddHoursPerDay(i int) {
	if m.addhours_per_day != nil {
		*m.addhours_per_day += i
	} else {
		m.addhours_per_day = &i
	}
}

// AddedHoursPerDay returns the value that was added to the "hours_per_day" field in this mutation.
func (m *StudentMutation) AddedHoursPerDay() (r int, exists bool) {
	v := m.addhours_per_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetHoursPerDay resets all changes to the "hours_per_day" field.
func (m *StudentMutation) ResetHoursPerDay() {
	m.hours_per_day = nil
	m.addhours_per_day = nil
}

// SetWeeks sets the "weeks" field.
func (m *StudentMutation) SetWeeks(i int) {
	m.weeks = &i
	m.addweeks = nil
}

// Weeks returns the value of the "weeks" field in the mutation.
func (m *StudentMutation) Weeks() (r int, exists bool) {
	v := m.weeks
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeks returns the old "weeks" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldWeeks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeks: %w", err)
	}
	return oldValue.Weeks, nil
}

// AddWeeks adds i to the "weeks" field.
func (m *StudentMutation) AddWeeks(i int) {
	if m.addweeks != nil {
		*m.addweeks += i
	} else {
		m.addweeks = &i
	}
}

// AddedWeeks returns the value that was added to the "weeks" field in this mutation.
func (m *StudentMutation) AddedWeeks() (r int, exists bool) {
	v := m.addweeks
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeeks resets all changes to the "weeks" field.
func (m *StudentMutation) ResetWeeks() {
	m.weeks = nil
	m.addweeks = nil
}

// SetKnowledgeScale sets the "knowledge_scale" field.
func (m *StudentMutation) SetKnowledgeScale(i int) {
	m.knowledge_scale = &i
	m.addknowledge_scale = nil
}

// KnowledgeScale returns the value of the "knowledge_scale" field in the mutation.
func (m *StudentMutation) KnowledgeScale() (r int, exists bool) {
	v := m.knowledge_scale
	if v == nil {
		return
	}
	return *v, true
}

// OldKnowledgeScale returns the old "knowledge_scale" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldKnowledgeScale(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnowledgeScale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnowledgeScale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnowledgeScale: %w", err)
	}
	return oldValue.KnowledgeScale, nil
}

// AddKnowledgeScale adds i to the "knowledge_scale" field.
func (m *StudentMutation) AddKnowledgeScale(i int) {
	if m.addknowledge_scale != nil {
		*m.addknowledge_scale += i
	} else {
		m.addknowledge_scale = &i
	}
}

// AddedKnowledgeScale returns the value that was added to the "knowledge_scale" field in this mutation.
func (m *StudentMutation) AddedKnowledgeScale() (r int, exists bool) {
	v := m.addknowledge_scale
	if v == nil {
		return
	}
	return *v, true
}

// ResetKnowledgeScale resets all changes to the "knowledge_scale" field.
func (m *StudentMutation) ResetKnowledgeScale() {
	m.knowledge_scale = nil
	m.addknowledge_scale = nil
}

// SetCurrentWeekNo sets the "current_week_no" field.
func (m *StudentMutation) SetCurrentWeekNo(i int) {
	m.current_week_no = &i
	m.addcurrent_week_no = nil
}

// CurrentWeekNo returns the value of the "current_week_no" field in the mutation.
func (m *StudentMutation) CurrentWeekNo() (r int, exists bool) {
	v := m.current_week_no
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentWeekNo returns the old "current_week_no" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCurrentWeekNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentWeekNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentWeekNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentWeekNo: %w", err)
	}
	return oldValue.CurrentWeekNo, nil
}

// AddCurrentWeekNo adds i to the "current_week_no" field.
func (m *StudentMutation) AddCurrentWeekNo(i int) {
	if m.addcurrent_week_no != nil {
		*m.addcurrent_week_no += i
	} else {
		m.addcurrent_week_no = &i
	}
}

// AddedCurrentWeekNo returns the value that was added to the "current_week_no" field in this mutation.
func (m *StudentMutation) AddedCurrentWeekNo() (r int, exists bool) {
	v := m.addcurrent_week_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentWeekNo resets all changes to the "current_week_no" field.
func (m *StudentMutation) ResetCurrentWeekNo() {
	m.current_week_no = nil
	m.addcurrent_week_no = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *StudentMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *StudentMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *StudentMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *StudentMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *StudentMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetCognitiveScore sets the "cognitive_score" field.
func (m *StudentMutation) SetCognitiveScore(i int) {
	m.cognitive_score = &i
	m.addcognitive_score = nil
}

// CognitiveScore returns the value of the "cognitive_score" field in the mutation.
func (m *StudentMutation) CognitiveScore() (r int, exists bool) {
	v := m.cognitive_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveScore returns the old "cognitive_score" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCognitiveScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveScore: %w", err)
	}
	return oldValue.CognitiveScore, nil
}

// AddCognitiveScore adds i to the "cognitive_score" field.
func (m *StudentMutation) AddCognitiveScore(i int) {
	if m.addcognitive_score != nil {
		*m.addcognitive_score += i
	} else {
		m.addcognitive_score = &i
	}
}

// AddedCognitiveScore returns the value that was added to the "cognitive_score" field in this mutation.
func (m *StudentMutation) AddedCognitiveScore() (r int, exists bool) {
	v := m.addcognitive_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCognitiveScore resets all changes to the "cognitive_score" field.
func (m *StudentMutation) ResetCognitiveScore() {
	m.cognitive_score = nil
	m.addcognitive_score = nil
}

// SetCognitiveIq sets the "cognitive_iq" field.
func (m *StudentMutation) SetCognitiveIq(i int) {
	m.cognitive_iq = &i
	m.addcognitive_iq = nil
}

// CognitiveIq returns the value of the "cognitive_iq" field in the mutation.
func (m *StudentMutation) CognitiveIq() (r int, exists bool) {
	v := m.cognitive_iq
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveIq returns the old "cognitive_iq" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCognitiveIq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveIq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveIq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveIq: %w", err)
	}
	return oldValue.CognitiveIq, nil
}

// AddCognitiveIq adds i to the "cognitive_iq" field.
func (m *StudentMutation) AddCognitiveIq(i int) {
	if m.addcognitive_iq != nil {
		*m.addcognitive_iq += i
	} else {
		m.addcognitive_iq = &i
	}
}

// AddedCognitiveIq returns the value that was added to the "cognitive_iq" field in this mutation.
func (m *StudentMutation) AddedCognitiveIq() (r int, exists bool) {
	v := m.addcognitive_iq
	if v == nil {
		return
	}
	return *v, true
}

// ResetCognitiveIq resets all changes to the "cognitive_iq" field.
func (m *StudentMutation) ResetCognitiveIq() {
	m.cognitive_iq = nil
	m.addcognitive_iq = nil
}

// SetDomainScore sets the "domain_score" field.
func (m *StudentMutation) SetDomainScore(i int) {
	m.domain_score = &i
	m.adddomain_score = nil
}

// DomainScore returns the value of the "domain_score" field in the mutation.
func (m *StudentMutation) DomainScore() (r int, exists bool) {
	v := m.domain_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainScore returns the old "domain_score" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldDomainScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainScore: %w", err)
	}
	return oldValue.DomainScore, nil
}

// AddDomainScore adds i to the "domain_score" field.
func (m *StudentMutation) AddDomainScore(i int) {
	if m.adddomain_score != nil {
		*m.adddomain_score += i
	} else {
		m.adddomain_score = &i
	}
}

// AddedDomainScore returns the value that was added to the "domain_score" field in this mutation.
func (m *StudentMutation) AddedDomainScore() (r int, exists bool) {
	v := m.adddomain_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDomainScore resets all changes to the "domain_score" field.
func (m *StudentMutation) ResetDomainScore() {
	m.domain_score = nil
	m.adddomain_score = nil
}

// SetDomainIq sets the "domain_iq" field.
func (m *StudentMutation) SetDomainIq(i int) {
	m.domain_iq = &i
	m.adddomain_iq = nil
}

// DomainIq returns the value of the "domain_iq" field in the mutation.
func (m *StudentMutation) DomainIq() (r int, exists bool) {
	v := m.domain_iq
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainIq returns the old "domain_iq" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldDomainIq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainIq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainIq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainIq: %w", err)
	}
	return oldValue.DomainIq, nil
}

// AddDomainIq adds i to the "domain_iq" field.
func (m *StudentMutation) AddDomainIq(i int) {
	if m.adddomain_iq != nil {
		*m.adddomain_iq += i
	} else {
		m.adddomain_iq = &i
	}
}

// AddedDomainIq returns the value that was added to the "domain_iq" field in this mutation.
func (m *StudentMutation) AddedDomainIq() (r int, exists bool) {
	v := m.adddomain_iq
	if v == nil {
		return
	}
	return *v, true
}

// ResetDomainIq resets all changes to the "domain_iq" field.
func (m *StudentMutation) ResetDomainIq() {
	m.domain_iq = nil
	m.adddomain_iq = nil
}

// SetVivaScore sets the "viva_score" field.
func (m *StudentMutation) SetVivaScore(i int) {
	m.viva_score = &i
	m.addviva_score = nil
}

// VivaScore returns the value of the "viva_score" field in the mutation.
func (m *StudentMutation) VivaScore() (r int, exists bool) {
	v := m.viva_score
	if v == nil {
		return
	}
	return *v, true
}

// OldVivaScore returns the old "viva_score" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldVivaScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVivaScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVivaScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVivaScore: %w", err)
	}
	return oldValue.VivaScore, nil
}

// AddVivaScore adds i to the "viva_score" field.
func (m *StudentMutation) AddVivaScore(i int) {
	if m.addviva_score != nil {
		*m.addviva_score += i
	} else {
		m.addviva_score = &i
	}
}

// AddedVivaScore returns the value that was added to the "viva_score" field in this mutation.
func (m *StudentMutation) AddedVivaScore() (r int, exists bool) {
	v := m.addviva_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetVivaScore resets all changes to the "viva_score" field.
func (m *StudentMutation) ResetVivaScore() {
	m.viva_score = nil
	m.addviva_score = nil
}

// SetVivaResponse sets the "viva_response" field.
func (m *StudentMutation) SetVivaResponse(s string) {
	m.viva_response = &s
}

// VivaResponse returns the value of the "viva_response" field in the mutation.
func (m *StudentMutation) VivaResponse() (r string, exists bool) {
	v := m.viva_response
	if v == nil {
		return
	}
	return *v, true
}

// OldVivaResponse returns the old "viva_response" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldVivaResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVivaResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVivaResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVivaResponse: %w", err)
	}
	return oldValue.VivaResponse, nil
}

// ResetVivaResponse resets all changes to the "viva_response" field.
func (m *StudentMutation) ResetVivaResponse() {
	m.viva_response = nil
}

// SetCourseConfigured sets the "course_configured" field.
func (m *StudentMutation) SetCourseConfigured(b bool) {
	m.course_configured = &b
}

// CourseConfigured returns the value of the "course_configured" field in the mutation.
func (m *StudentMutation) CourseConfigured() (r bool, exists bool) {
	v := m.course_configured
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseConfigured returns the old "course_configured" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCourseConfigured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseConfigured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseConfigured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseConfigured: %w", err)
	}
	return oldValue.CourseConfigured, nil
}

// ResetCourseConfigured resets all changes to the "course_configured" field.
func (m *StudentMutation) ResetCourseConfigured() {
	m.course_configured = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StudentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StudentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudentMutation builder.
func (m *StudentMutation) Where(ps ...predicate.Student) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Student, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Student).
func (m *StudentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.roll_no != nil {
		fields = append(fields, student.FieldRollNo)
	}
	if m.name != nil {
		fields = append(fields, student.FieldName)
	}
	if m.domain != nil {
		fields = append(fields, student.FieldDomain)
	}
	if m.hours_per_day != nil {
		fields = append(fields, student.FieldHoursPerDay)
	}
	if m.weeks != nil {
		fields = append(fields, student.FieldWeeks)
	}
	if m.knowledge_scale != nil {
		fields = append(fields, student.FieldKnowledgeScale)
	}
	if m.current_week_no != nil {
		fields = append(fields, student.FieldCurrentWeekNo)
	}
	if m.current_step != nil {
		fields = append(fields, student.FieldCurrentStep)
	}
	if m.cognitive_score != nil {
		fields = append(fields, student.FieldCognitiveScore)
	}
	if m.cognitive_iq != nil {
		fields = append(fields, student.FieldCognitiveIq)
	}
	if m.domain_score != nil {
		fields = append(fields, student.FieldDomainScore)
	}
	if m.domain_iq != nil {
		fields = append(fields, student.FieldDomainIq)
	}
	if m.viva_score != nil {
		fields = append(fields, student.FieldVivaScore)
	}
	if m.viva_response != nil {
		fields = append(fields, student.FieldVivaResponse)
	}
	if m.course_configured != nil {
		fields = append(fields, student.FieldCourseConfigured)
	}
	if m.created_at != nil {
		fields = append(fields, student.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case student.FieldRollNo:
		return m.RollNo()
	case student.FieldName:
		return m.Name()
	case student.FieldDomain:
		return m.Domain()
	case student.FieldHoursPerDay:
		return m.HoursPerDay()
	case student.FieldWeeks:
		return m.Weeks()
	case student.FieldKnowledgeScale:
		return m.KnowledgeScale()
	case student.FieldCurrentWeekNo:
		return m.CurrentWeekNo()
	case student.FieldCurrentStep:
		return m.CurrentStep()
	case student.FieldCognitiveScore:
		return m.CognitiveScore()
	case student.FieldCognitiveIq:
		return m.CognitiveIq()
	case student.FieldDomainScore:
		return m.DomainScore()
	case student.FieldDomainIq:
		return m.DomainIq()
	case student.FieldVivaScore:
		return m.VivaScore()
	case student.FieldVivaResponse:
		return m.VivaResponse()
	case student.FieldCourseConfigured:
		return m.CourseConfigured()
	case student.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case student.FieldRollNo:
		return m.OldRollNo(ctx)
	case student.FieldName:
		return m.OldName(ctx)
	case student.FieldDomain:
		return m.OldDomain(ctx)
	case student.FieldHoursPerDay:
		return m.OldHoursPerDay(ctx)
	case student.FieldWeeks:
		return m.OldWeeks(ctx)
	case student.FieldKnowledgeScale:
		return m.OldKnowledgeScale(ctx)
	case student.FieldCurrentWeekNo:
		return m.OldCurrentWeekNo(ctx)
	case student.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case student.FieldCognitiveScore:
		return m.OldCognitiveScore(ctx)
	case student.FieldCognitiveIq:
		return m.OldCognitiveIq(ctx)
	case student.FieldDomainScore:
		return m.OldDomainScore(ctx)
	case student.FieldDomainIq:
		return m.OldDomainIq(ctx)
	case student.FieldVivaScore:
		return m.OldVivaScore(ctx)
	case student.FieldVivaResponse:
		return m.OldVivaResponse(ctx)
	case student.FieldCourseConfigured:
		return m.OldCourseConfigured(ctx)
	case student.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Student field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case student.FieldRollNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRollNo(v)
		return nil
	case student.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case student.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case student.FieldHoursPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoursPerDay(v)
		return nil
	case student.FieldWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeks(v)
		return nil
	case student.FieldKnowledgeScale:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnowledgeScale(v)
		return nil
	case student.FieldCurrentWeekNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentWeekNo(v)
		return nil
	case student.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case student.FieldCognitiveScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveScore(v)
		return nil
	case student.FieldCognitiveIq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveIq(v)
		return nil
	case student.FieldDomainScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainScore(v)
		return nil
	case student.FieldDomainIq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainIq(v)
		return nil
	case student.FieldVivaScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVivaScore(v)
		return nil
	case student.FieldVivaResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVivaResponse(v)
		return nil
	case student.FieldCourseConfigured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseConfigured(v)
		return nil
	case student.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentMutation) AddedFields() []string {
	var fields []string
	if m.addhours_per_day != nil {
		fields = append(fields, student.FieldHoursPerDay)
	}
	if m.addweeks != nil {
		fields = append(fields, student.FieldWeeks)
	}
	if m.addknowledge_scale != nil {
		fields = append(fields, student.FieldKnowledgeScale)
	}
	if m.addcurrent_week_no != nil {
		fields = append(fields, student.FieldCurrentWeekNo)
	}
	if m.addcurrent_step != nil {
		fields = append(fields, student.FieldCurrentStep)
	}
	if m.addcognitive_score != nil {
		fields = append(fields, student.FieldCognitiveScore)
	}
	if m.addcognitive_iq != nil {
		fields = append(fields, student.FieldCognitiveIq)
	}
	if m.adddomain_score != nil {
		fields = append(fields, student.FieldDomainScore)
	}
	if m.adddomain_iq != nil {
		fields = append(fields, student.FieldDomainIq)
	}
	if m.addviva_score != nil {
		fields = append(fields, student.FieldVivaScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case student.FieldHoursPerDay:
		return m.AddedHoursPerDay()
	case student.FieldWeeks:
		return m.AddedWeeks()
	case student.FieldKnowledgeScale:
		return m.AddedKnowledgeScale()
	case student.FieldCurrentWeekNo:
		return m.AddedCurrentWeekNo()
	case student.FieldCurrentStep:
		return m.AddedCurrentStep()
	case student.FieldCognitiveScore:
		return m.AddedCognitiveScore()
	case student.FieldCognitiveIq:
		return m.AddedCognitiveIq()
	case student.FieldDomainScore:
		return m.AddedDomainScore()
	case student.FieldDomainIq:
		return m.AddedDomainIq()
	case student.FieldVivaScore:
		return m.AddedVivaScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case student.FieldHoursPerDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHoursPerDay(v)
		return nil
	case student.FieldWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeeks(v)
		return nil
	case student.FieldKnowledgeScale:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKnowledgeScale(v)
		return nil
	case student.FieldCurrentWeekNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentWeekNo(v)
		return nil
	case student.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	case student.FieldCognitiveScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCognitiveScore(v)
		return nil
	case student.FieldCognitiveIq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCognitiveIq(v)
		return nil
	case student.FieldDomainScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDomainScore(v)
		return nil
	case student.FieldDomainIq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDomainIq(v)
		return nil
	case student.FieldVivaScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVivaScore(v)
		return nil
	}
	return fmt.Errorf("unknown Student numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Student nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentMutation) ResetField(name string) error {
	switch name {
	case student.FieldRollNo:
		m.ResetRollNo()
		return nil
	case student.FieldName:
		m.ResetName()
		return nil
	case student.FieldDomain:
		m.ResetDomain()
		return nil
	case student.FieldHoursPerDay:
		m.ResetHoursPerDay()
		return nil
	case student.FieldWeeks:
		m.ResetWeeks()
		return nil
	case student.FieldKnowledgeScale:
		m.ResetKnowledgeScale()
		return nil
	case student.FieldCurrentWeekNo:
		m.ResetCurrentWeekNo()
		return nil
	case student.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case student.FieldCognitiveScore:
		m.ResetCognitiveScore()
		return nil
	case student.FieldCognitiveIq:
		m.ResetCognitiveIq()
		return nil
	case student.FieldDomainScore:
		m.ResetDomainScore()
		return nil
	case student.FieldDomainIq:
		m.ResetDomainIq()
		return nil
	case student.FieldVivaScore:
		m.ResetVivaScore()
		return nil
	case student.FieldVivaResponse:
		m.ResetVivaResponse()
		return nil
	case student.FieldCourseConfigured:
		m.ResetCourseConfigured()
		return nil
	case student.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Student unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Student edge %s", name)
}

// WeekQuizMutation represents an operation that mutates the WeekQuiz nodes in the graph.
type WeekQuizMutation struct {
	config
	op            Op
	typ           string
	id            *int
	roll_no       *string
	week_no       *int
	addweek_no    *int
	score         *int
	addscore      *int
	iq            *int
	addiq         *int
	strong_areas  *string
	weak_areas    *string
	analysis      *string
	taken_at      *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WeekQuiz, error)
	predicates    []predicate.WeekQuiz
}

var _ ent.Mutation = (*WeekQuizMutation)(nil)

// weekquizOption allows management of the mutation configuration using functional options.
type weekquizOption func(*WeekQuizMutation)

// newWeekQuizMutation creates new mutation for the WeekQuiz entity.
func newWeekQuizMutation(c config, op Op, opts ...weekquizOption) *WeekQuizMutation {
	m := &WeekQuizMutation{
		config:        c,
		op:            op,
		typ:           TypeWeekQuiz,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeekQuizID sets the ID field of the mutation.
func withWeekQuizID(id int) weekquizOption {
	return func(m *WeekQuizMutation) {
		var (
			err   error
			once  sync.Once
			value *WeekQuiz
		)
		m.oldValue = func(ctx context.Context) (*WeekQuiz, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeekQuiz.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeekQuiz sets the old WeekQuiz of the mutation.
func withWeekQuiz(node *WeekQuiz) weekquizOption {
	return func(m *WeekQuizMutation) {
		m.oldValue = func(context.Context) (*WeekQuiz, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeekQuizMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeekQuizMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeekQuizMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeekQuizMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeekQuiz.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRollNo sets the "roll_no" field.
func (m *WeekQuizMutation) SetRollNo(s string) {
	m.roll_no = &s
}

// RollNo returns the value of the "roll_no" field in the mutation.
func (m *WeekQuizMutation) RollNo() (r string, exists bool) {
	v := m.roll_no
	if v == nil {
		return
	}
	return *v, true
}

// OldRollNo returns the old "roll_no" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldRollNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRollNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRollNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRollNo: %w", err)
	}
	return oldValue.RollNo, nil
}

// ResetRollNo resets all changes to the "roll_no" field.
func (m *WeekQuizMutation) ResetRollNo() {
	m.roll_no = nil
}

// SetWeekNo sets the "week_no" field.
func (m *WeekQuizMutation) SetWeekNo(i int) {
	m.week_no = &i
	m.addweek_no = nil
}

// WeekNo returns the value of the "week_no" field in the mutation.
func (m *WeekQuizMutation) WeekNo() (r int, exists bool) {
	v := m.week_no
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekNo returns the old "week_no" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldWeekNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekNo: %w", err)
	}
	return oldValue.WeekNo, nil
}

// AddWeekNo adds i to the "week_no" field.
func (m *WeekQuizMutation) AddWeekNo(i int) {
	if m.addweek_no != nil {
		*m.addweek_no += i
	} else {
		m.addweek_no = &i
	}
}

// AddedWeekNo returns the value that was added to the "week_no" field in this mutation.
func (m *WeekQuizMutation) AddedWeekNo() (r int, exists bool) {
	v := m.addweek_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekNo resets all changes to the "week_no" field.
func (m *WeekQuizMutation) ResetWeekNo() {
	m.week_no = nil
	m.addweek_no = nil
}

// SetScore sets the "score" field.
func (m *WeekQuizMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *WeekQuizMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *WeekQuizMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *WeekQuizMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *WeekQuizMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetIq sets the "iq" field.
func (m *WeekQuizMutation) SetIq(i int) {
	m.iq = &i
	m.addiq = nil
}

// Iq returns the value of the "iq" field in the mutation.
func (m *WeekQuizMutation) Iq() (r int, exists bool) {
	v := m.iq
	if v == nil {
		return
	}
	return *v, true
}

// OldIq returns the old "iq" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldIq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIq: %w", err)
	}
	return oldValue.Iq, nil
}

// AddIq adds i to the "iq" field.
func (m *WeekQuizMutation) AddIq(i int) {
	if m.addiq != nil {
		*m.addiq += i
	} else {
		m.addiq = &i
	}
}

// AddedIq returns the value that was added to the "iq" field in this mutation.
func (m *WeekQuizMutation) AddedIq() (r int, exists bool) {
	v := m.addiq
	if v == nil {
		return
	}
	return *v, true
}

// ResetIq resets all changes to the "iq" field.
func (m *WeekQuizMutation) ResetIq() {
	m.iq = nil
	m.addiq = nil
}

// SetStrongAreas sets the "strong_areas" field.
func (m *WeekQuizMutation) SetStrongAreas(s string) {
	m.strong_areas = &s
}

// StrongAreas returns the value of the "strong_areas" field in the mutation.
func (m *WeekQuizMutation) StrongAreas() (r string, exists bool) {
	v := m.strong_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldStrongAreas returns the old "strong_areas" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldStrongAreas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrongAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrongAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrongAreas: %w", err)
	}
	return oldValue.StrongAreas, nil
}

// ResetStrongAreas resets all changes to the "strong_areas" field.
func (m *WeekQuizMutation) ResetStrongAreas() {
	m.strong_areas = nil
}

// SetWeakAreas sets the "weak_areas" field.
func (m *WeekQuizMutation) SetWeakAreas(s string) {
	m.weak_areas = &s
}

// WeakAreas returns the value of the "weak_areas" field in the mutation.
func (m *WeekQuizMutation) WeakAreas() (r string, exists bool) {
	v := m.weak_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakAreas returns the old "weak_areas" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldWeakAreas(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakAreas: %w", err)
	}
	return oldValue.WeakAreas, nil
}

// ResetWeakAreas resets all changes to the "weak_areas" field.
func (m *WeekQuizMutation) ResetWeakAreas() {
	m.weak_areas = nil
}

// SetAnalysis sets the "analysis" field.
func (m *WeekQuizMutation) SetAnalysis(s string) {
	m.analysis = &s
}

// Analysis returns the value of the "analysis" field in the mutation.
func (m *WeekQuizMutation) Analysis() (r string, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysis returns the old "analysis" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldAnalysis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysis: %w", err)
	}
	return oldValue.Analysis, nil
}

// ResetAnalysis resets all changes to the "analysis" field.
func (m *WeekQuizMutation) ResetAnalysis() {
	m.analysis = nil
}

// SetTakenAt sets the "taken_at" field.
func (m *WeekQuizMutation) SetTakenAt(t time.Time) {
	m.taken_at = &t
}

// TakenAt returns the value of the "taken_at" field in the mutation.
func (m *WeekQuizMutation) TakenAt() (r time.Time, exists bool) {
	v := m.taken_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTakenAt returns the old "taken_at" field's value of the WeekQuiz entity.
// If the WeekQuiz object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeekQuizMutation) OldTakenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTakenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTakenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTakenAt: %w", err)
	}
	return oldValue.TakenAt, nil
}

// ResetTakenAt resets all changes to the "taken_at" field.
func (m *WeekQuizMutation) ResetTakenAt() {
	m.taken_at = nil
}

// Where appends a list predicates to the WeekQuizMutation builder.
func (m *WeekQuizMutation) Where(ps ...predicate.WeekQuiz) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeekQuizMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeekQuizMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeekQuiz, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeekQuizMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeekQuizMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeekQuiz).
func (m *WeekQuizMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeekQuizMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.roll_no != nil {
		fields = append(fields, weekquiz.FieldRollNo)
	}
	if m.week_no != nil {
		fields = append(fields, weekquiz.FieldWeekNo)
	}
	if m.score != nil {
		fields = append(fields, weekquiz.FieldScore)
	}
	if m.iq != nil {
		fields = append(fields, weekquiz.FieldIq)
	}
	if m.strong_areas != nil {
		fields = append(fields, weekquiz.FieldStrongAreas)
	}
	if m.weak_areas != nil {
		fields = append(fields, weekquiz.FieldWeakAreas)
	}
	if m.analysis != nil {
		fields = append(fields, weekquiz.FieldAnalysis)
	}
	if m.taken_at != nil {
		fields = append(fields, weekquiz.FieldTakenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeekQuizMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weekquiz.FieldRollNo:
		return m.RollNo()
	case weekquiz.FieldWeekNo:
		return m.WeekNo()
	case weekquiz.FieldScore:
		return m.Score()
	case weekquiz.FieldIq:
		return m.Iq()
	case weekquiz.FieldStrongAreas:
		return m.StrongAreas()
	case weekquiz.FieldWeakAreas:
		return m.WeakAreas()
	case weekquiz.FieldAnalysis:
		return m.Analysis()
	case weekquiz.FieldTakenAt:
		return m.TakenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeekQuizMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weekquiz.FieldRollNo:
		return m.OldRollNo(ctx)
	case weekquiz.FieldWeekNo:
		return m.OldWeekNo(ctx)
	case weekquiz.FieldScore:
		return m.OldScore(ctx)
	case weekquiz.FieldIq:
		return m.OldIq(ctx)
	case weekquiz.FieldStrongAreas:
		return m.OldStrongAreas(ctx)
	case weekquiz.FieldWeakAreas:
		return m.OldWeakAreas(ctx)
	case weekquiz.FieldAnalysis:
		return m.OldAnalysis(ctx)
	case weekquiz.FieldTakenAt:
		return m.OldTakenAt(ctx)
	}
	return nil, fmt.Errorf("unknown WeekQuiz field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeekQuizMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weekquiz.FieldRollNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRollNo(v)
		return nil
	case weekquiz.FieldWeekNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekNo(v)
		return nil
	case weekquiz.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case weekquiz.FieldIq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIq(v)
		return nil
	case weekquiz.FieldStrongAreas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrongAreas(v)
		return nil
	case weekquiz.FieldWeakAreas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakAreas(v)
		return nil
	case weekquiz.FieldAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysis(v)
		return nil
	case weekquiz.FieldTakenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTakenAt(v)
		return nil
	}
	return fmt.Errorf("unknown WeekQuiz field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeekQuizMutation) AddedFields() []string {
	var fields []string
	if m.addweek_no != nil {
		fields = append(fields, weekquiz.FieldWeekNo)
	}
	if m.addscore != nil {
		fields = append(fields, weekquiz.FieldScore)
	}
	if m.addiq != nil {
		fields = append(fields, weekquiz.FieldIq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeekQuizMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weekquiz.FieldWeekNo:
		return m.AddedWeekNo()
	case weekquiz.FieldScore:
		return m.AddedScore()
	case weekquiz.FieldIq:
		return m.AddedIq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeekQuizMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weekquiz.FieldWeekNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekNo(v)
		return nil
	case weekquiz.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case weekquiz.FieldIq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIq(v)
		return nil
	}
	return fmt.Errorf("unknown WeekQuiz numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeekQuizMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeekQuizMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeekQuizMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WeekQuiz nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeekQuizMutation) ResetField(name string) error {
	switch name {
	case weekquiz.FieldRollNo:
		m.ResetRollNo()
		return nil
	case weekquiz.FieldWeekNo:
		m.ResetWeekNo()
		return nil
	case weekquiz.FieldScore:
		m.ResetScore()
		return nil
	case weekquiz.FieldIq:
		m.ResetIq()
		return nil
	case weekquiz.FieldStrongAreas:
		m.ResetStrongAreas()
		return nil
	case weekquiz.FieldWeakAreas:
		m.ResetWeakAreas()
		return nil
	case weekquiz.FieldAnalysis:
		m.ResetAnalysis()
		return nil
	case weekquiz.FieldTakenAt:
		m.ResetTakenAt()
		return nil
	}
	return fmt.Errorf("unknown WeekQuiz field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeekQuizMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeekQuizMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeekQuizMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeekQuizMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeekQuizMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeekQuizMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeekQuizMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeekQuiz unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeekQuizMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeekQuiz edge %s", name)
}
