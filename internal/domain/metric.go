package domain

// MetricPoint é derivado do ledger, nunca persistido
type MetricPoint struct {
	Period string  `json:"period"` // Formato YYYY-MM
	Value  float64 `json:"value"`
	Note   *string `json:"note"`
}

// PeriodReport reúne os dados de uma loja em um período (valores atuais por KPI, feedbacks e arquivos)
type PeriodReport struct {
	OutletID int64            `json:"outlet_id"`
	PeriodID int64            `json:"period_id"`
	Period   string           `json:"period"`
	KPIs     []*ReportKPIItem `json:"kpis"`
	Feedback []*Feedback      `json:"feedback"`
	Files    []*FileRecord    `json:"files"`
}

type ReportKPIItem struct {
	KPIID   int64   `json:"kpi_id"`
	KPIName string  `json:"kpi_name"`
	Value   float64 `json:"value"`
	Note    *string `json:"note"`
}
