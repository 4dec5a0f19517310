package evolution

import (
	"time"

	"github.com/aiatende/marketing-dashboard-api/internal/domain"
)

// buildDayRange gera os últimos N dias em ordem cronológica, terminando em
// "hoje" segundo o relógio recebido. Cada dia carrega o rótulo de exibição
// (dd/MM) e a chave ISO (YYYY-MM-DD) usada para alinhar as origens de dados.
func buildDayRange(now time.Time, days int) []domain.DayWindow {
	if days <= 0 {
		return []domain.DayWindow{}
	}

	windows := make([]domain.DayWindow, 0, days)

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

		windows = append(windows, domain.DayWindow{
			Date:  date,
			Label: date.Format("02/01"),
			ISO:   date.Format(time.DateOnly),
		})
	}

	return windows
}
