package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportEventType string

const (
	EventReportSubmitted     ReportEventType = "report.submitted"
	EventReportStatusChanged ReportEventType = "report.status_changed"
)

type ReportEvent struct {
	Type       ReportEventType `json:"type"`
	ReportID   uuid.UUID       `json:"report_id"`
	CitizenID  uuid.UUID       `json:"citizen_id"`
	CenterID   *uuid.UUID      `json:"center_id,omitempty"`
	Status     ReportStatus    `json:"status"`
	DistanceKM *float64        `json:"distance_km,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
