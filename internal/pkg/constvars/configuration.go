package constvars

// Categories and keys of the site configuration sheet.
const (
	ConfigurationCategoryClosedOn        = "Closed on"
	ConfigurationCategoryStop            = "Stop"
	ConfigurationCategoryBannerTemplates = "Banner Templates"
	ConfigurationKeyClosedTemplate       = "Closed"
	ConfigurationStopKeyFormat           = "%s for Today"
	ConfigurationCategoryHeaderSuffix    = ":"
)

const (
	ClosureReasonToday     = "Today"
	ClosurePrefixToday     = "Today"
	ClosurePrefixTomorrow  = "Tomorrow"
	BannerPlaceholder      = "..."
	BannerClosuresJoiner   = " & "
	BannerClassName        = "banner"
	BannerAppearClassName  = "appear"
	DefaultBannerDaysAhead = 10
)

var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
