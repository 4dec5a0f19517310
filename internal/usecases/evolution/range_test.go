package evolution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDayRange(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

	t.Run("Gera N dias em ordem cronológica terminando em hoje", func(t *testing.T) {
		days := buildDayRange(now, 7)

		assert.Len(t, days, 7)
		assert.Equal(t, "2024-05-04", days[0].ISO)
		assert.Equal(t, "2024-05-10", days[6].ISO)

		for i := 1; i < len(days); i++ {
			assert.True(t, days[i].Date.After(days[i-1].Date))
		}
	})

	t.Run("Rótulo de exibição no formato dd/MM", func(t *testing.T) {
		days := buildDayRange(now, 2)

		assert.Equal(t, "09/05", days[0].Label)
		assert.Equal(t, "10/05", days[1].Label)
	})

	t.Run("Dias normalizados para meia-noite", func(t *testing.T) {
		days := buildDayRange(now, 1)

		assert.Equal(t, 0, days[0].Date.Hour())
		assert.Equal(t, 0, days[0].Date.Minute())
	})

	t.Run("Intervalo atravessando virada de mês", func(t *testing.T) {
		endOfMonth := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
		days := buildDayRange(endOfMonth, 4)

		assert.Equal(t, "2024-02-28", days[0].ISO)
		assert.Equal(t, "2024-02-29", days[1].ISO)
		assert.Equal(t, "2024-03-01", days[2].ISO)
		assert.Equal(t, "2024-03-02", days[3].ISO)
	})

	t.Run("Quantidade de dias inválida gera intervalo vazio", func(t *testing.T) {
		assert.Empty(t, buildDayRange(now, 0))
		assert.Empty(t, buildDayRange(now, -3))
	})
}

func TestDayWindowBounds(t *testing.T) {
	days := buildDayRange(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC), 1)

	start := days[0].StartOfDay()
	end := days[0].EndOfDay()

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.True(t, end.Before(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)))
}
