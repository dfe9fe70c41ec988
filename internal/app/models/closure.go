package models

import (
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/dto/responses"
	"time"
)

type ClosureKind string

const (
	NoClosure      ClosureKind = "none"
	ClosedToday    ClosureKind = "closed_today"
	ClosedNamedDay ClosureKind = "closed_named_day"
)

// ClosureResult tells whether the business is closed on a given day and why.
type ClosureResult struct {
	Kind  ClosureKind
	Label string
}

func NewNoClosure() ClosureResult {
	return ClosureResult{Kind: NoClosure}
}

func NewClosedToday() ClosureResult {
	return ClosureResult{Kind: ClosedToday, Label: constvars.ClosureReasonToday}
}

func NewClosedNamedDay(label string) ClosureResult {
	return ClosureResult{Kind: ClosedNamedDay, Label: label}
}

func (r ClosureResult) IsClosed() bool {
	return r.Kind != NoClosure && r.Kind != ""
}

// Reason is the text shown in the banner, empty when open.
func (r ClosureResult) Reason() string {
	if !r.IsClosed() {
		return ""
	}
	return r.Label
}

func (r ClosureResult) ConvertIntoResponse(date time.Time) responses.Closure {
	kind := r.Kind
	if kind == "" {
		kind = NoClosure
	}
	return responses.Closure{
		Date:   date.Format(constvars.DateQueryLayout),
		Closed: r.IsClosed(),
		Kind:   string(kind),
		Reason: r.Reason(),
	}
}

// DayHours are the opening hours of one weekday as fractional hours.
type DayHours struct {
	Day  string
	From float64
	To   float64
}

func (d DayHours) ConvertIntoResponse() responses.OpeningHours {
	return responses.OpeningHours{Day: d.Day, From: d.From, To: d.To}
}
