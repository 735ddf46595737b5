package domain

// Update é uma medição de um KPI para uma loja em um período.
// O ledger é somente de inserção: o ID define a ordem de escrita.
type Update struct {
	ID         int64   `json:"id"`
	OutletID   int64   `json:"outlet_id"`
	PeriodID   int64   `json:"period_id"`
	KPIID      int64   `json:"kpi_id"`
	Value      float64 `json:"value"`
	Note       *string `json:"note"`
	RecordedBy *int64  `json:"recorded_by"`
}

type AppendUpdateRequest struct {
	OutletID *int64   `json:"outlet_id"`
	PeriodID *int64   `json:"period_id"`
	KPIID    *int64   `json:"kpi_id"`
	Value    *float64 `json:"value"`
	Note     *string  `json:"note"`
}
