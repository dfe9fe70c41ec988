package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetConfigurationSuccessMessage    = "configuration fetched successfully"
	GetClosureSuccessMessage          = "closure status computed successfully"
	GetUpcomingClosuresSuccessMessage = "upcoming closures computed successfully"
	GetOpeningHoursSuccessMessage     = "opening hours fetched successfully"
)
