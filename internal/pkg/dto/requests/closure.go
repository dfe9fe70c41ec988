package requests

type ClosureQuery struct {
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	OrderType string `json:"type" validate:"omitempty,max=64"`
}
