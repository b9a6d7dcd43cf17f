package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportInProgress ReportStatus = "in_progress"
	ReportCompleted  ReportStatus = "completed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportInProgress, ReportCompleted:
		return true
	}
	return false
}

type WasteReport struct {
	ID              uuid.UUID    `json:"id"`
	CitizenID       uuid.UUID    `json:"citizen_id"`
	CitizenUsername string       `json:"citizen_username,omitempty"`
	CenterID        *uuid.UUID   `json:"center_id,omitempty"`
	CenterName      string       `json:"center_name,omitempty"`
	Location        GeoPoint     `json:"location"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"image_url,omitempty"`
	Status          ReportStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type SubmitReportRequest struct {
	Description string  `json:"description" validate:"required,max=5000"`
	Lat         float64 `json:"lat" validate:"lat"`
	Lng         float64 `json:"lng" validate:"lng"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

// UpdateReportRequest changes status and/or reassigns the center by hand.
// Reassignment never goes through the resolver.
type UpdateReportRequest struct {
	Status      *ReportStatus `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	CenterID    *uuid.UUID    `json:"center_id"`
	ClearCenter bool          `json:"clear_center"`
}

type ReportFilter struct {
	CitizenID *uuid.UUID
	CenterID  *uuid.UUID
	Status    ReportStatus
	Search    string
	Page      int
	Limit     int
}

type ListReportsResponse struct {
	Reports []*WasteReport `json:"reports"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int64          `json:"total"`
}
