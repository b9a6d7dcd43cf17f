package domain

import (
	"time"

	"github.com/google/uuid"
)

type RecyclingCenter struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Address           string     `json:"address"`
	Location          GeoPoint   `json:"location"`
	MaterialsAccepted string     `json:"materials_accepted"`
	WorkingHours      string     `json:"working_hours"`
	AssignedStaffID   *uuid.UUID `json:"assigned_staff_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type CenterRequest struct {
	Name              string     `json:"name" validate:"required,max=200"`
	Address           string     `json:"address" validate:"required"`
	Lat               float64    `json:"lat" validate:"lat"`
	Lng               float64    `json:"lng" validate:"lng"`
	MaterialsAccepted string     `json:"materials_accepted" validate:"required"`
	WorkingHours      string     `json:"working_hours" validate:"required,max=200"`
	AssignedStaffID   *uuid.UUID `json:"assigned_staff_id"`
}

type UpdateCenterRequest struct {
	Name              *string    `json:"name" validate:"omitempty,max=200"`
	Address           *string    `json:"address"`
	Lat               *float64   `json:"lat" validate:"omitempty,lat"`
	Lng               *float64   `json:"lng" validate:"omitempty,lng"`
	MaterialsAccepted *string    `json:"materials_accepted"`
	WorkingHours      *string    `json:"working_hours" validate:"omitempty,max=200"`
	AssignedStaffID   *uuid.UUID `json:"assigned_staff_id"`
	ClearStaff        bool       `json:"clear_staff"`
}

type CenterFilter struct {
	Search string
}
