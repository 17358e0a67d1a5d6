package datatable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/datatable"
)

func TestColumnFallbacks(t *testing.T) {
	t.Parallel()
	plain := datatable.Column{Key: "amount"}
	assert.Equal(t, "amount", plain.Header())
	assert.Equal(t, "amount", plain.SortField())

	named := datatable.Column{Key: "amount", DisplayName: "Amount", SortKey: "amount_cents"}
	assert.Equal(t, "Amount", named.Header())
	assert.Equal(t, "amount_cents", named.SortField())
}

func TestColumnsLookup(t *testing.T) {
	t.Parallel()
	cols := datatable.Columns{
		{Key: "name", DisplayName: "Name"},
		{Key: "amount", SortKey: "amount_cents"},
	}
	assert.Equal(t, []string{"Name", "amount"}, cols.Header())
	assert.Equal(t, []string{"name", "amount"}, cols.Keys())

	c, ok := cols.Find("amount_cents")
	require.True(t, ok)
	assert.Equal(t, "amount", c.Key)

	c, ok = cols.Find("name")
	require.True(t, ok)
	assert.Equal(t, "Name", c.Header())

	_, ok = cols.Find("missing")
	assert.False(t, ok)
}

func TestColumnsValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cols    datatable.Columns
		wantErr string
	}{
		"valid": {
			cols: datatable.Columns{{Key: "a"}, {Key: "b", IsCurrency: true, CurrencyKey: "cur"}},
		},
		"empty key": {
			cols:    datatable.Columns{{DisplayName: "A"}},
			wantErr: "empty key",
		},
		"currency without key": {
			cols:    datatable.Columns{{Key: "price", IsCurrency: true}},
			wantErr: "without currency_key",
		},
		"duplicate key": {
			cols:    datatable.Columns{{Key: "a"}, {Key: "a"}},
			wantErr: `duplicate key "a"`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tt.cols.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, datatable.ErrInvalidColumn)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadColumns(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    datatable.Columns
		wantErr string
	}{
		"bare sequence": {
			input: "- key: name\n  display_name: Name\n- key: amount\n  currency: true\n  currency_key: cur\n",
			want: datatable.Columns{
				{Key: "name", DisplayName: "Name"},
				{Key: "amount", IsCurrency: true, CurrencyKey: "cur"},
			},
		},
		"columns mapping": {
			input: "columns:\n  - key: status\n    success: ok\n    error: failed\n    uppercase: true\n    default: unknown\n    sort_key: status_code\n",
			want: datatable.Columns{{
				Key:          "status",
				SortKey:      "status_code",
				DefaultValue: "unknown",
				SuccessValue: "ok",
				ErrorValue:   "failed",
				Uppercase:    true,
			}},
		},
		"empty input": {
			input:   "",
			wantErr: "no columns defined",
		},
		"empty mapping": {
			input:   "columns: []\n",
			wantErr: "no columns defined",
		},
		"scalar": {
			input:   "hello\n",
			wantErr: "expected a sequence or a mapping",
		},
		"invalid descriptor": {
			input:   "- key: price\n  currency: true\n",
			wantErr: "without currency_key",
		},
		"malformed yaml": {
			input:   "- key: [\n",
			wantErr: "invalid column",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := datatable.LoadColumns(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.ErrorIs(t, err, datatable.ErrInvalidColumn)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRecords(t *testing.T) {
	t.Parallel()
	records, err := datatable.DecodeRecords(strings.NewReader(
		`[{"name":"Alice","amount":-5,"ratio":2.0,"ok":true,"note":null,"tags":["a"]}]`,
	))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "Alice", r.Get("name").String())
	assert.Equal(t, "-5", r.Get("amount").String())
	assert.Equal(t, "2.0", r.Get("ratio").String())
	assert.Equal(t, datatable.KindBool, r.Get("ok").Kind())
	assert.Equal(t, datatable.KindNull, r.Get("note").Kind())
	assert.Equal(t, datatable.KindOther, r.Get("tags").Kind())
	assert.Equal(t, datatable.KindAbsent, r.Get("missing").Kind())

	f, ok := r.Get("amount").Float()
	require.True(t, ok)
	assert.InDelta(t, -5.0, f, 0)
}

func TestDecodeRecordsErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"not json":      "nope",
		"object":        `{"a":1}`,
		"null element":  `[null]`,
		"scalar member": `[1]`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := datatable.DecodeRecords(strings.NewReader(input))
			require.ErrorIs(t, err, datatable.ErrInvalidRecord)
		})
	}
}

func TestDecodeRecordsYAML(t *testing.T) {
	t.Parallel()
	records, err := datatable.DecodeRecordsYAML(strings.NewReader("- name: Bob\n  amount: 12.5\n  active: true\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bob", records[0].Get("name").String())
	assert.Equal(t, "12.5", records[0].Get("amount").String())
	assert.Equal(t, "true", records[0].Get("active").String())

	records, err = datatable.DecodeRecordsYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = datatable.DecodeRecordsYAML(strings.NewReader("name: Bob\n"))
	require.ErrorIs(t, err, datatable.ErrInvalidRecord)
}

func TestFieldValueJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value datatable.FieldValue
		want  string
	}{
		"string": {value: datatable.StringValue(`a"b`), want: `"a\"b"`},
		"int":    {value: datatable.IntValue(7), want: `7`},
		"float":  {value: datatable.FloatValue(2), want: `2.0`},
		"bool":   {value: datatable.BoolValue(true), want: `true`},
		"null":   {value: datatable.NullValue(), want: `null`},
		"absent": {value: datatable.Absent, want: `null`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.value.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
