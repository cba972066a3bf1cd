package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{"current only", 0, 0},
		{"within range", 4, 4},
		{"maximum", 7, 7},
		{"above maximum", 8, 7},
		{"negative", -1, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := LoadConfig{LocationID: "10381", Days: test.days}.Normalize()

			assert.Equal(t, test.want, got.Days)
			assert.Equal(t, "10381", got.LocationID)
		})
	}
}

func TestForecastSetClone(t *testing.T) {
	set := ForecastSet{{"id": "10381", "temp": "12"}, {"id": "10381", "temp": "14;3"}}

	clone := set.Clone()
	clone[1]["temp"] = "changed"

	assert.Equal(t, "14;3", set[1]["temp"])
	assert.Equal(t, DayRecord{"id": "10381", "temp": "12"}, clone.Current())
	assert.Nil(t, ForecastSet(nil).Clone())
	assert.Nil(t, ForecastSet{}.Current())
}
