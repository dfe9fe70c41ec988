package models

import (
	"net/http"
	"time"
)

type OriginResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *OriginResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RenderedPage is a decorated page ready to be written to the client.
type RenderedPage struct {
	StatusCode  int
	ContentType string
	Header      http.Header
	Body        []byte
	Decorated   bool
}

// Announcement is published when upcoming closures are found.
type Announcement struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Closures    []string  `json:"closures"`
	Banner      string    `json:"banner"`
}
