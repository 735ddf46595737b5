package domain

// FileRecord guarda apenas a referência (caminho/identificador) do arquivo
type FileRecord struct {
	ID       int64  `json:"id"`
	OutletID int64  `json:"outlet_id"`
	PeriodID int64  `json:"period_id"`
	Path     string `json:"path"`
}

type AppendFileRequest struct {
	OutletID *int64  `json:"outlet_id"`
	PeriodID *int64  `json:"period_id"`
	Path     *string `json:"path"`
}
