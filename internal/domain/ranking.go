package domain

type OutletRankingResponse struct {
	KPIID    int64                `json:"kpi_id"`
	KPIName  string               `json:"kpi_name"`
	PeriodID int64                `json:"period_id"`
	Period   string               `json:"period"`
	Ranking  []*OutletRankingItem `json:"ranking"`
}

type OutletRankingItem struct {
	Position   int     `json:"position"`
	OutletID   int64   `json:"outlet_id"`
	OutletName string  `json:"outlet_name"`
	Value      float64 `json:"value"`
	GapToLead  float64 `json:"gap_to_leader"`
}
