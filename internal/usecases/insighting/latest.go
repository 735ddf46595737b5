package insighting

import "github.com/vfg2006/performance-hub-api/internal/domain"

// LatestBy resolve o histórico do ledger em um valor atual por chave.
// As medições chegam em ordem de inserção, então a última vista vence.
func LatestBy[K comparable](updates []*domain.Update, key func(*domain.Update) K) map[K]*domain.Update {
	latest := make(map[K]*domain.Update, len(updates))
	for _, u := range updates {
		k := key(u)
		if current, ok := latest[k]; ok && current.ID > u.ID {
			continue
		}
		latest[k] = u
	}
	return latest
}

func byPeriod(u *domain.Update) int64 { return u.PeriodID }

func byKPI(u *domain.Update) int64 { return u.KPIID }

// ByOutlet agrupa pela loja (usado no ranking)
func ByOutlet(u *domain.Update) int64 { return u.OutletID }
