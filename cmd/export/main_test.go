package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSince(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected time.Time
		wantErr  bool
	}{
		{name: "date only", value: "2024-03-01", expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", value: "2024-03-01T10:30:00Z", expected: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{name: "garbage", value: "last tuesday", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSince(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "got %s", got)
		})
	}
}
