package domain

import "github.com/vfg2006/performance-hub-api/pkg/utils"

const (
	MinPeriodYear = 1
	MaxPeriodYear = 9999
)

// Period representa um único mês/ano (não um intervalo)
type Period struct {
	ID    int64 `json:"id"`
	Month int   `json:"month"`
	Year  int   `json:"year"`
}

// Label retorna o rótulo canônico no formato YYYY-MM
func (p Period) Label() string {
	return utils.FormatPeriodLabel(p.Year, p.Month)
}

// Before compara cronologicamente por (ano, mês)
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

type CreatePeriodRequest struct {
	Month *int `json:"month"`
	Year  *int `json:"year"`
}
