package domain

type KPI struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateKPIRequest struct {
	Name *string `json:"name"`
}
