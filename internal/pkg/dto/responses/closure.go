package responses

type Closure struct {
	Date   string `json:"date"`
	Closed bool   `json:"closed"`
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

type UpcomingClosures struct {
	From     string   `json:"from"`
	Days     int      `json:"days"`
	Closures []string `json:"closures"`
	Banner   string   `json:"banner,omitempty"`
}

type OpeningHours struct {
	Day  string  `json:"day"`
	From float64 `json:"from"`
	To   float64 `json:"to"`
}
