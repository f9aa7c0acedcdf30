package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var item ListItem
	err := json.Unmarshal([]byte(`{"release_date":"2010-07-16"}`), &item)
	require.NoError(t, err)

	require.NotNil(t, item.ReleaseDate)
	assert.Equal(t, NewDate(2010, time.July, 16).Time, item.ReleaseDate.Time)
}

func TestDate_UnmarshalJSON_Null(t *testing.T) {
	var item ListItem
	err := json.Unmarshal([]byte(`{"release_date":null}`), &item)
	require.NoError(t, err)
	assert.Nil(t, item.ReleaseDate)
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "timestamp instead of date", body: `"2010-07-16T00:00:00Z"`},
		{name: "wrong order", body: `"16-07-2010"`},
		{name: "not a string", body: `20100716`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(test.body), &d))
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	release := NewDate(2010, time.July, 16)
	item := ListItem{ReleaseDate: &release}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"release_date":"2010-07-16"`)
}

func TestDate_MarshalJSON_Nil(t *testing.T) {
	data, err := json.Marshal(ListItem{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"release_date":null`)
}

func TestDate_RoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1999-10-15"`), &d))

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1999-10-15"`, string(data))
}

func TestDate_Value(t *testing.T) {
	release := NewDate(1999, time.October, 15)
	v, err := release.Value()
	require.NoError(t, err)
	assert.Equal(t, release.Time, v)

	var nilDate *Date
	v, err = nilDate.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1999, time.October, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1999-10-15", d.String())

	var fromString Date
	require.NoError(t, fromString.Scan("2010-07-16"))
	assert.Equal(t, "2010-07-16", fromString.String())

	var bad Date
	assert.Error(t, bad.Scan(42))
}
