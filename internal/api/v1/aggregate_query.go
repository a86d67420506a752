package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EditStatus tracks whether the owner is still working on a query.
type EditStatus string

const (
	EditStatusDraft EditStatus = "draft"
	EditStatusFinal EditStatus = "final"
)

// ExecuteStatus tracks whether a query has been run.
// Nothing in this service moves a query to executed on its own; clients
// patch it like any other status field.
type ExecuteStatus string

const (
	ExecuteStatusPending  ExecuteStatus = "pending"
	ExecuteStatusExecuted ExecuteStatus = "executed"
)

// ErrInvalidStatus is returned when a status value is outside its enum.
var ErrInvalidStatus = errors.New("invalid status value")

func (s EditStatus) Valid() bool {
	return s == EditStatusDraft || s == EditStatusFinal
}

func (s ExecuteStatus) Valid() bool {
	return s == ExecuteStatusPending || s == ExecuteStatusExecuted
}

// ParseEditStatus converts a client-supplied string into an EditStatus.
func ParseEditStatus(s string) (EditStatus, error) {
	status := EditStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: edit_status must be one of %q, %q (got %q)",
			ErrInvalidStatus, EditStatusDraft, EditStatusFinal, s)
	}
	return status, nil
}

// ParseExecuteStatus converts a client-supplied string into an ExecuteStatus.
func ParseExecuteStatus(s string) (ExecuteStatus, error) {
	status := ExecuteStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: execute_status must be one of %q, %q (got %q)",
			ErrInvalidStatus, ExecuteStatusPending, ExecuteStatusExecuted, s)
	}
	return status, nil
}

// Model is the client's query document. It is stored and returned as-is;
// the service never looks inside it.
type Model map[string]interface{}

// DecodeModel parses a JSON object into a Model. Numbers are kept as
// json.Number so they survive a round trip through storage unchanged.
func DecodeModel(raw []byte) (Model, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var m Model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("model must be a JSON object: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("model must be a JSON object")
	}
	return m, nil
}

// Clone returns a deep copy of the model.
func (m Model) Clone() Model {
	if m == nil {
		return nil
	}
	return cloneValue(map[string]interface{}(m)).(map[string]interface{})
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case Model:
		return Model(cloneValue(map[string]interface{}(t)).(map[string]interface{}))
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}

// ContainsNUL reports whether any key or string value holds a NUL
// character, which postgres jsonb cannot store.
func (m Model) ContainsNUL() bool {
	return containsNUL(map[string]interface{}(m))
}

func containsNUL(v interface{}) bool {
	switch t := v.(type) {
	case string:
		return strings.ContainsRune(t, 0)
	case map[string]interface{}:
		for k, val := range t {
			if strings.ContainsRune(k, 0) || containsNUL(val) {
				return true
			}
		}
	case Model:
		return containsNUL(map[string]interface{}(t))
	case []interface{}:
		for _, val := range t {
			if containsNUL(val) {
				return true
			}
		}
	}
	return false
}

// AggregateQuery is a user's saved query document.
//
// ID, User, Model and PostedAt are fixed at creation. Only the two status
// fields change afterwards, and every change advances PatchedAt.
type AggregateQuery struct {
	ID            int64         `json:"id"`
	User          uuid.UUID     `json:"user"`
	Model         Model         `json:"model"`
	PostedAt      time.Time     `json:"posted_at"`
	PatchedAt     time.Time     `json:"patched_at"`
	EditStatus    EditStatus    `json:"edit_status"`
	ExecuteStatus ExecuteStatus `json:"execute_status"`
}

// Clone returns a copy that shares no mutable state with q.
func (q *AggregateQuery) Clone() *AggregateQuery {
	c := *q
	c.Model = q.Model.Clone()
	return &c
}

// StatusPatch is the only mutation clients can apply to an existing query.
// A nil field means "leave unchanged".
type StatusPatch struct {
	EditStatus    *EditStatus    `json:"edit_status,omitempty"`
	ExecuteStatus *ExecuteStatus `json:"execute_status,omitempty"`
}

// Validate checks that every supplied field holds a known enum value.
func (p StatusPatch) Validate() error {
	if p.EditStatus != nil && !p.EditStatus.Valid() {
		_, err := ParseEditStatus(string(*p.EditStatus))
		return err
	}
	if p.ExecuteStatus != nil && !p.ExecuteStatus.Valid() {
		_, err := ParseExecuteStatus(string(*p.ExecuteStatus))
		return err
	}
	return nil
}

// Apply writes the supplied fields onto q and stamps PatchedAt.
func (p StatusPatch) Apply(q *AggregateQuery, now time.Time) {
	if p.EditStatus != nil {
		q.EditStatus = *p.EditStatus
	}
	if p.ExecuteStatus != nil {
		q.ExecuteStatus = *p.ExecuteStatus
	}
	q.PatchedAt = now
}

// CreateRequest holds the client-controlled fields of a new query.
type CreateRequest struct {
	User  uuid.UUID `json:"user"`
	Model Model     `json:"model"`
}

// Validate ensures the request has all required attributes.
func (r *CreateRequest) Validate() error {
	if r.User == uuid.Nil {
		return fmt.Errorf("user is required")
	}
	if r.Model == nil {
		return fmt.Errorf("model is required")
	}
	if r.Model.ContainsNUL() {
		return fmt.Errorf("model must not contain NUL characters")
	}
	return nil
}
