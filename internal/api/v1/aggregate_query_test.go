package v1

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) error
		input   string
		wantErr bool
	}{
		{name: "edit draft", parse: parseEdit, input: "draft"},
		{name: "edit final", parse: parseEdit, input: "final"},
		{name: "edit unknown", parse: parseEdit, input: "published", wantErr: true},
		{name: "edit wrong case", parse: parseEdit, input: "Final", wantErr: true},
		{name: "edit empty", parse: parseEdit, input: "", wantErr: true},
		{name: "execute pending", parse: parseExecute, input: "pending"},
		{name: "execute executed", parse: parseExecute, input: "executed"},
		{name: "execute unknown", parse: parseExecute, input: "running", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
		})
	}
}

func parseEdit(s string) error {
	_, err := ParseEditStatus(s)
	return err
}

func parseExecute(s string) error {
	_, err := ParseExecuteStatus(s)
	return err
}

func TestStatusPatch_ValidateAndApply(t *testing.T) {
	final := EditStatusFinal
	bogus := ExecuteStatus("running")

	require.NoError(t, StatusPatch{}.Validate())
	require.NoError(t, StatusPatch{EditStatus: &final}.Validate())

	err := StatusPatch{EditStatus: &final, ExecuteStatus: &bogus}.Validate()
	require.True(t, errors.Is(err, ErrInvalidStatus))
	require.ErrorContains(t, err, "execute_status")

	posted := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	q := &AggregateQuery{
		ID:            1,
		User:          uuid.New(),
		Model:         Model{"meh": "mah"},
		PostedAt:      posted,
		PatchedAt:     posted,
		EditStatus:    EditStatusDraft,
		ExecuteStatus: ExecuteStatusPending,
	}

	later := posted.Add(time.Minute)
	StatusPatch{EditStatus: &final}.Apply(q, later)

	require.Equal(t, EditStatusFinal, q.EditStatus)
	require.Equal(t, ExecuteStatusPending, q.ExecuteStatus)
	require.Equal(t, posted, q.PostedAt)
	require.Equal(t, later, q.PatchedAt)
}

func TestDecodeModel(t *testing.T) {
	m, err := DecodeModel([]byte(`{"meh":"mah","limit":12345678901234567890,"nested":{"a":[1,2]}}`))
	require.NoError(t, err)
	require.Equal(t, "mah", m["meh"])
	require.Equal(t, json.Number("12345678901234567890"), m["limit"])

	out, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"meh":"mah","limit":12345678901234567890,"nested":{"a":[1,2]}}`, string(out))

	for _, raw := range []string{`""`, `[]`, `42`, `null`, `{`} {
		_, err := DecodeModel([]byte(raw))
		require.Error(t, err, raw)
	}
}

func TestAggregateQuery_CloneIsDeep(t *testing.T) {
	q := &AggregateQuery{
		ID:    7,
		User:  uuid.New(),
		Model: Model{"nested": map[string]interface{}{"k": "v"}, "list": []interface{}{"x"}},
	}

	c := q.Clone()
	c.Model["nested"].(map[string]interface{})["k"] = "changed"
	c.Model["list"].([]interface{})[0] = "y"
	c.EditStatus = EditStatusFinal

	require.Equal(t, "v", q.Model["nested"].(map[string]interface{})["k"])
	require.Equal(t, "x", q.Model["list"].([]interface{})[0])
	require.Empty(t, q.EditStatus)
}

func TestAggregateQuery_UserSerializesAsString(t *testing.T) {
	user := uuid.MustParse("5f2b7c1e-3d4a-4b8e-9f10-2a3b4c5d6e7f")
	q := AggregateQuery{ID: 1, User: user, Model: Model{}}

	out, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, "5f2b7c1e-3d4a-4b8e-9f10-2a3b4c5d6e7f", decoded["user"])
}

func TestCreateRequest_Validate(t *testing.T) {
	require.Error(t, (&CreateRequest{Model: Model{}}).Validate())
	require.Error(t, (&CreateRequest{User: uuid.New()}).Validate())
	require.NoError(t, (&CreateRequest{User: uuid.New(), Model: Model{}}).Validate())
}

func TestCreateRequest_RejectsNUL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		nul  bool
	}{
		{"plain", `{"a": "b", "n": [1, {"c": "d"}]}`, false},
		{"escaped backslash is not NUL", `{"a": "\\u0000"}`, false},
		{"value", `{"a": "x\u0000y"}`, true},
		{"key", `{"a\u0000": 1}`, true},
		{"nested in array", `{"a": [{"b": "\u0000"}]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeModel([]byte(tt.raw))
			require.NoError(t, err)
			require.Equal(t, tt.nul, m.ContainsNUL())

			err = (&CreateRequest{User: uuid.New(), Model: m}).Validate()
			if tt.nul {
				require.ErrorContains(t, err, "NUL")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
