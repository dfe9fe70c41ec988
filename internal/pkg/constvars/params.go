package constvars

const (
	URLQueryParamDate = "date"
	URLQueryParamType = "type"
)
