package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Location
		wantErr bool
	}{
		{name: "simple", input: "4,2", want: Location{Row: 4, Col: 2}},
		{name: "negative coordinates", input: "-1,-5", want: Location{Row: -1, Col: -5}},
		{name: "spaces around parts", input: " 3 , 7 ", want: Location{Row: 3, Col: 7}},
		{name: "missing column", input: "4", wantErr: true},
		{name: "too many parts", input: "1,2,3", wantErr: true},
		{name: "non-numeric", input: "a,b", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "4,2", NewLocation(4, 2).String())

	// String and ParseLocation round-trip
	loc := NewLocation(-3, 17)
	parsed, err := ParseLocation(loc.String())
	require.NoError(t, err)
	assert.Equal(t, loc, parsed)
}

func TestDistance(t *testing.T) {
	a := NewLocation(1, 1)
	b := NewLocation(4, 5)
	c := NewLocation(2, 2)

	assert.Equal(t, 7, Distance(a, b))
	assert.Equal(t, 7, Distance(b, a), "distance is symmetric")
	assert.Equal(t, 0, Distance(a, a), "distance is zero iff equal")
	assert.LessOrEqual(t, Distance(a, b), Distance(a, c)+Distance(c, b), "triangle inequality")
}
