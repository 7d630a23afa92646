// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/courtrec/archive-migrator/gen/ent/capturesession"
	"github.com/courtrec/archive-migrator/gen/ent/predicate"
	"github.com/courtrec/archive-migrator/gen/ent/recording"
	"github.com/google/uuid"
)

// RecordingUpdate is the builder for updating Recording entities.
type RecordingUpdate struct {
	config
	hooks    []Hook
	mutation *RecordingMutation
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdate) Where(ps ...predicate.Recording) *RecordingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaptureSessionID sets the "capture_session_id" field.
func (_u *RecordingUpdate) SetCaptureSessionID(v uuid.UUID) *RecordingUpdate {
	_u.mutation.SetCaptureSessionID(v)
	return _u
}

// SetNillableCaptureSessionID sets the "capture_session_id" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableCaptureSessionID(v *uuid.UUID) *RecordingUpdate {
	if v != nil {
		_u.SetCaptureSessionID(*v)
	}
	return _u
}

// SetParentRecordingID sets the "parent_recording_id" field.
func (_u *RecordingUpdate) SetParentRecordingID(v uuid.UUID) *RecordingUpdate {
	_u.mutation.SetParentRecordingID(v)
	return _u
}

// SetNillableParentRecordingID sets the "parent_recording_id" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableParentRecordingID(v *uuid.UUID) *RecordingUpdate {
	if v != nil {
		_u.SetParentRecordingID(*v)
	}
	return _u
}

// ClearParentRecordingID clears the value of the "parent_recording_id" field.
func (_u *RecordingUpdate) ClearParentRecordingID() *RecordingUpdate {
	_u.mutation.ClearParentRecordingID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *RecordingUpdate) SetVersion(v int) *RecordingUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableVersion(v *int) *RecordingUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RecordingUpdate) AddVersion(v int) *RecordingUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *RecordingUpdate) SetFilename(v string) *RecordingUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableFilename(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *RecordingUpdate) ClearFilename() *RecordingUpdate {
	_u.mutation.ClearFilename()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *RecordingUpdate) SetDuration(v int) *RecordingUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableDuration(v *int) *RecordingUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *RecordingUpdate) AddDuration(v int) *RecordingUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecordingUpdate) SetCreatedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableCreatedAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCaptureSession sets the "capture_session" edge to the CaptureSession entity.
func (_u *RecordingUpdate) SetCaptureSession(v *CaptureSession) *RecordingUpdate {
	return _u.SetCaptureSessionID(v.ID)
}

// SetParentID sets the "parent" edge to the Recording entity by ID.
func (_u *RecordingUpdate) SetParentID(id uuid.UUID) *RecordingUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Recording entity by ID if the given value is not nil.
func (_u *RecordingUpdate) SetNillableParentID(id *uuid.UUID) *RecordingUpdate {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Recording entity.
func (_u *RecordingUpdate) SetParent(v *Recording) *RecordingUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Recording entity by IDs.
func (_u *RecordingUpdate) AddChildIDs(ids ...uuid.UUID) *RecordingUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Recording entity.
func (_u *RecordingUpdate) AddChildren(v ...*Recording) *RecordingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdate) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearCaptureSession clears the "capture_session" edge to the CaptureSession entity.
func (_u *RecordingUpdate) ClearCaptureSession() *RecordingUpdate {
	_u.mutation.ClearCaptureSession()
	return _u
}

// ClearParent clears the "parent" edge to the Recording entity.
func (_u *RecordingUpdate) ClearParent() *RecordingUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Recording entity.
func (_u *RecordingUpdate) ClearChildren() *RecordingUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Recording entities by IDs.
func (_u *RecordingUpdate) RemoveChildIDs(ids ...uuid.UUID) *RecordingUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Recording entities.
func (_u *RecordingUpdate) RemoveChildren(v ...*Recording) *RecordingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := recording.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Recording.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := recording.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Recording.duration": %w`, err)}
		}
	}
	if _u.mutation.CaptureSessionCleared() && len(_u.mutation.CaptureSessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.capture_session"`)
	}
	return nil
}

func (_u *RecordingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(recording.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(recording.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(recording.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(recording.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(recording.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(recording.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CaptureSessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.CaptureSessionTable,
			Columns: []string{recording.CaptureSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaptureSessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.CaptureSessionTable,
			Columns: []string{recording.CaptureSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.ParentTable,
			Columns: []string{recording.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.ParentTable,
			Columns: []string{recording.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.ChildrenTable,
			Columns: []string{recording.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.ChildrenTable,
			Columns: []string{recording.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.ChildrenTable,
			Columns: []string{recording.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordingUpdateOne is the builder for updating a single Recording entity.
type RecordingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordingMutation
}

// SetCaptureSessionID sets the "capture_session_id" field.
func (_u *RecordingUpdateOne) SetCaptureSessionID(v uuid.UUID) *RecordingUpdateOne {
	_u.mutation.SetCaptureSessionID(v)
	return _u
}

// SetNillableCaptureSessionID sets the "capture_session_id" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableCaptureSessionID(v *uuid.UUID) *RecordingUpdateOne {
	if v != nil {
		_u.SetCaptureSessionID(*v)
	}
	return _u
}

// SetParentRecordingID sets the "parent_recording_id" field.
func (_u *RecordingUpdateOne) SetParentRecordingID(v uuid.UUID) *RecordingUpdateOne {
	_u.mutation.SetParentRecordingID(v)
	return _u
}

// SetNillableParentRecordingID sets the "parent_recording_id" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableParentRecordingID(v *uuid.UUID) *RecordingUpdateOne {
	if v != nil {
		_u.SetParentRecordingID(*v)
	}
	return _u
}

// ClearParentRecordingID clears the value of the "parent_recording_id" field.
func (_u *RecordingUpdateOne) ClearParentRecordingID() *RecordingUpdateOne {
	_u.mutation.ClearParentRecordingID()
	return _u
}

// SetVersion sets the "version" field.
func (_u *RecordingUpdateOne) SetVersion(v int) *RecordingUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableVersion(v *int) *RecordingUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RecordingUpdateOne) AddVersion(v int) *RecordingUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *RecordingUpdateOne) SetFilename(v string) *RecordingUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableFilename(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// ClearFilename clears the value of the "filename" field.
func (_u *RecordingUpdateOne) ClearFilename() *RecordingUpdateOne {
	_u.mutation.ClearFilename()
	return _u
}

// SetDuration sets the "duration" field.
func (_u *RecordingUpdateOne) SetDuration(v int) *RecordingUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableDuration(v *int) *RecordingUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *RecordingUpdateOne) AddDuration(v int) *RecordingUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecordingUpdateOne) SetCreatedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableCreatedAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCaptureSession sets the "capture_session" edge to the CaptureSession entity.
func (_u *RecordingUpdateOne) SetCaptureSession(v *CaptureSession) *RecordingUpdateOne {
	return _u.SetCaptureSessionID(v.ID)
}

// SetParentID sets the "parent" edge to the Recording entity by ID.
func (_u *RecordingUpdateOne) SetParentID(id uuid.UUID) *RecordingUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Recording entity by ID if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableParentID(id *uuid.UUID) *RecordingUpdateOne {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Recording entity.
func (_u *RecordingUpdateOne) SetParent(v *Recording) *RecordingUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Recording entity by IDs.
func (_u *RecordingUpdateOne) AddChildIDs(ids ...uuid.UUID) *RecordingUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Recording entity.
func (_u *RecordingUpdateOne) AddChildren(v ...*Recording) *RecordingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdateOne) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearCaptureSession clears the "capture_session" edge to the CaptureSession entity.
func (_u *RecordingUpdateOne) ClearCaptureSession() *RecordingUpdateOne {
	_u.mutation.ClearCaptureSession()
	return _u
}

// ClearParent clears the "parent" edge to the Recording entity.
func (_u *RecordingUpdateOne) ClearParent() *RecordingUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Recording entity.
func (_u *RecordingUpdateOne) ClearChildren() *RecordingUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Recording entities by IDs.
func (_u *RecordingUpdateOne) RemoveChildIDs(ids ...uuid.UUID) *RecordingUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Recording entities.
func (_u *RecordingUpdateOne) RemoveChildren(v ...*Recording) *RecordingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdateOne) Where(ps ...predicate.Recording) *RecordingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordingUpdateOne) Select(field string, fields ...string) *RecordingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recording entity.
func (_u *RecordingUpdateOne) Save(ctx context.Context) (*Recording, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdateOne) SaveX(ctx context.Context) *Recording {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := recording.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Recording.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := recording.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Recording.duration": %w`, err)}
		}
	}
	if _u.mutation.CaptureSessionCleared() && len(_u.mutation.CaptureSessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.capture_session"`)
	}
	return nil
}

func (_u *RecordingUpdateOne) sqlSave(ctx context.Context) (_node *Recording, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recording.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recording.FieldID)
		for _, f := range fields {
			if !recording.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recording.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(recording.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(recording.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(recording.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.FilenameCleared() {
		_spec.ClearField(recording.FieldFilename, field.TypeString)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(recording.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(recording.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CaptureSessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.CaptureSessionTable,
			Columns: []string{recording.CaptureSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CaptureSessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.CaptureSessionTable,
			Columns: []string{recording.CaptureSessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capturesession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.ParentTable,
			Columns: []string{recording.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.ParentTable,
			Columns: []string{recording.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.ChildrenTable,
			Columns: []string{recording.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.ChildrenTable,
			Columns: []string{recording.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recording.ChildrenTable,
			Columns: []string{recording.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recording{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
