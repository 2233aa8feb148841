package helpers_test

import (
	"testing"
	"time"

	"travel-service/internal/pkg/helpers"

	"github.com/stretchr/testify/assert"
)

func TestDurationCalculation(t *testing.T) {
	t.Run("future time returns the remaining duration", func(t *testing.T) {
		d := helpers.DurationCalculation(time.Now().Add(30 * time.Minute))

		assert.Greater(t, d, 29*time.Minute)
		assert.LessOrEqual(t, d, 30*time.Minute)
	})

	t.Run("past time is floored at zero", func(t *testing.T) {
		d := helpers.DurationCalculation(time.Now().Add(-time.Hour))

		assert.Equal(t, time.Duration(0), d)
	})
}
