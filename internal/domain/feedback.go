package domain

type Feedback struct {
	ID       int64  `json:"id"`
	OutletID int64  `json:"outlet_id"`
	PeriodID int64  `json:"period_id"`
	Text     string `json:"text"`
}

type AppendFeedbackRequest struct {
	OutletID *int64  `json:"outlet_id"`
	PeriodID *int64  `json:"period_id"`
	Text     *string `json:"text"`
}
