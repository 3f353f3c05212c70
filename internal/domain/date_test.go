package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "two digit day and month", input: "15/03/2024", want: 20240315},
		{name: "single digit day and month", input: "9/1/2024", want: 20240109},
		{name: "surrounding spaces", input: " 01/12/2023 ", want: 20231201},
		{name: "leap day", input: "29/02/2024", want: 20240229},
		{name: "not a leap year", input: "29/02/2023", wantErr: true},
		{name: "day out of range", input: "32/01/2024", wantErr: true},
		{name: "month out of range", input: "01/13/2024", wantErr: true},
		{name: "zero day", input: "00/01/2024", wantErr: true},
		{name: "iso format", input: "2024-01-01", wantErr: true},
		{name: "letters", input: "aa/bb/cccc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_OrdersNumerically(t *testing.T) {
	// Lexically "10/01/2024" < "9/01/2024"; the encoding must not be fooled.
	early := MustParseDate("9/01/2024")
	late := MustParseDate("10/01/2024")
	assert.Less(t, early, late)

	assert.Less(t, MustParseDate("31/12/2023"), MustParseDate("01/01/2024"))
}

func TestDate_Parts(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, "05/03/2024", d.String())
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	out, err := json.Marshal(wrapper{Date: MustParseDate("1/2/2024")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"01/02/2024"}`, string(out))

	var back wrapper
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, NewDate(2024, time.February, 1), back.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"31/02/2024"}`), &back))
}
