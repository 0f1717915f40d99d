package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-15"`), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-15"`, string(out))
}

func TestDateAcceptsTimestamps(t *testing.T) {
	// Browsers tend to send full ISO timestamps from date pickers
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-10-15T08:30:00Z"`), &d))
	assert.Equal(t, "2026-10-15", d.Format("2006-01-02"))
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15.10.2026"`), &d))
}

func TestDateNormalizesToMidnightUTC(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Ljubljana")
	require.NoError(t, err)

	d := NewDate(time.Date(2026, 10, 15, 23, 45, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-01", d.AddDays(2).Format("2006-01-02"))
	assert.Equal(t, "2026-02-26", d.AddDays(-1).Format("2006-01-02"))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-10-15", d.Format("2006-01-02"))

	var fromString Date
	require.NoError(t, fromString.Scan("2026-10-15"))
	assert.Equal(t, "2026-10-15", fromString.Format("2006-01-02"))
}
