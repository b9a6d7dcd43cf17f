package main

import (
	"context"
	"fmt"
	"log/slog"

	"wastetrack/internal/domain"
	"wastetrack/internal/geo"
)

type userStore interface {
	Upsert(ctx context.Context, u *domain.User) (bool, error)
}

type centerStore interface {
	UpsertByName(ctx context.Context, c *domain.RecyclingCenter) (bool, error)
	Snapshot(ctx context.Context) ([]domain.RecyclingCenter, error)
}

type reportStore interface {
	CreateIfAbsent(ctx context.Context, r *domain.WasteReport) (bool, error)
}

type hasher interface {
	Hash(password string) (string, error)
}

type seedUser struct {
	domain.User
	password string
}

type seedCenter struct {
	domain.RecyclingCenter
	staff string
}

type seedReport struct {
	citizen     string
	description string
	at          domain.GeoPoint
	status      domain.ReportStatus
}

var users = []seedUser{
	{User: domain.User{Username: "admin", Email: "admin@wastemanagement.com", FirstName: "Admin", LastName: "User", Role: domain.RoleAdmin}, password: "admin123"},
	{User: domain.User{Username: "staff1", Email: "staff1@wastemanagement.com", FirstName: "Ahmed", LastName: "Al-Fahad", Role: domain.RoleStaff}, password: "staff123"},
	{User: domain.User{Username: "staff2", Email: "staff2@wastemanagement.com", FirstName: "Sara", LastName: "Al-Saud", Role: domain.RoleStaff}, password: "staff123"},
	{User: domain.User{Username: "citizen1", Email: "citizen1@example.com", FirstName: "Mohammed", LastName: "Al-Salem", Role: domain.RoleCitizen}, password: "citizen123"},
	{User: domain.User{Username: "citizen2", Email: "citizen2@example.com", FirstName: "Fatima", LastName: "Al-Harbi", Role: domain.RoleCitizen}, password: "citizen123"},
	{User: domain.User{Username: "citizen3", Email: "citizen3@example.com", FirstName: "Omar", LastName: "Al-Ghamdi", Role: domain.RoleCitizen}, password: "citizen123"},
}

var centers = []seedCenter{
	{
		RecyclingCenter: domain.RecyclingCenter{
			Name:              "Riyadh Eco Center",
			Address:           "King Fahd Road, Riyadh, Saudi Arabia",
			Location:          domain.GeoPoint{Lat: 24.7136, Lng: 46.6753},
			MaterialsAccepted: "Plastic bottles, Glass containers, Aluminum cans, Paper, Cardboard",
			WorkingHours:      "Mon-Fri: 8:00 AM - 5:00 PM, Sat: 9:00 AM - 2:00 PM",
		},
		staff: "staff1",
	},
	{
		RecyclingCenter: domain.RecyclingCenter{
			Name:              "Jeddah Sustainable Waste Hub",
			Address:           "Corniche Road, Jeddah, Saudi Arabia",
			Location:          domain.GeoPoint{Lat: 21.5433, Lng: 39.1728},
			MaterialsAccepted: "Electronic waste, Batteries, Metal scraps, Plastic containers",
			WorkingHours:      "Mon-Sat: 7:00 AM - 6:00 PM",
		},
		staff: "staff2",
	},
	{
		RecyclingCenter: domain.RecyclingCenter{
			Name:              "Dammam Community Recycling",
			Address:           "King Abdullah Street, Dammam, Saudi Arabia",
			Location:          domain.GeoPoint{Lat: 26.4207, Lng: 50.0888},
			MaterialsAccepted: "Glass, Paper, Cardboard, Organic waste",
			WorkingHours:      "Mon-Fri: 9:00 AM - 4:00 PM",
		},
	},
}

var reports = []seedReport{
	{"citizen1", "Large pile of plastic waste near the park entrance. Needs immediate attention.", domain.GeoPoint{Lat: 24.7140, Lng: 46.6760}, domain.ReportPending},
	{"citizen2", "Overflowing trash bins at Main Street shopping center.", domain.GeoPoint{Lat: 24.7150, Lng: 46.6770}, domain.ReportInProgress},
	{"citizen3", "Illegal dumping site with electronic waste and old appliances.", domain.GeoPoint{Lat: 21.5440, Lng: 39.1735}, domain.ReportPending},
	{"citizen1", "Broken glass bottles scattered on sidewalk near school.", domain.GeoPoint{Lat: 21.5450, Lng: 39.1740}, domain.ReportCompleted},
	{"citizen2", "Cardboard boxes piled up in alley behind restaurants.", domain.GeoPoint{Lat: 26.4215, Lng: 50.0895}, domain.ReportInProgress},
}

type Seeder struct {
	users   userStore
	centers centerStore
	reports reportStore
	hasher  hasher
	logger  *slog.Logger
}

type summary struct {
	UsersCreated   int
	CentersCreated int
	ReportsCreated int
}

// Seed is safe to run repeatedly: users match by username, centers by name,
// reports by citizen and description.
func (s *Seeder) Seed(ctx context.Context) (summary, error) {
	var sum summary
	ids := make(map[string]*domain.User, len(users))

	for _, su := range users {
		u := su.User
		hash, err := s.hasher.Hash(su.password)
		if err != nil {
			return sum, fmt.Errorf("hash %s: %w", u.Username, err)
		}
		u.PasswordHash = hash

		created, err := s.users.Upsert(ctx, &u)
		if err != nil {
			return sum, fmt.Errorf("upsert user %s: %w", u.Username, err)
		}
		if created {
			sum.UsersCreated++
		}
		s.logger.Info("user seeded", slog.String("username", u.Username), slog.Bool("created", created))
		ids[u.Username] = &u
	}

	for _, sc := range centers {
		c := sc.RecyclingCenter
		c.Location = domain.NormalizePoint(c.Location)
		if staff, ok := ids[sc.staff]; ok {
			id := staff.ID
			c.AssignedStaffID = &id
		}

		created, err := s.centers.UpsertByName(ctx, &c)
		if err != nil {
			return sum, fmt.Errorf("upsert center %s: %w", c.Name, err)
		}
		if created {
			sum.CentersCreated++
		}
		s.logger.Info("center seeded", slog.String("name", c.Name), slog.Bool("created", created))
	}

	snapshot, err := s.centers.Snapshot(ctx)
	if err != nil {
		return sum, fmt.Errorf("load centers: %w", err)
	}

	for _, sr := range reports {
		citizen, ok := ids[sr.citizen]
		if !ok {
			return sum, fmt.Errorf("unknown citizen %s", sr.citizen)
		}

		r := &domain.WasteReport{
			CitizenID:   citizen.ID,
			Location:    domain.NormalizePoint(sr.at),
			Description: sr.description,
			Status:      sr.status,
		}
		if m, ok := geo.FindNearest(r.Location, snapshot); ok {
			id := m.Center.ID
			r.CenterID = &id
		}

		created, err := s.reports.CreateIfAbsent(ctx, r)
		if err != nil {
			return sum, fmt.Errorf("create report for %s: %w", sr.citizen, err)
		}
		if created {
			sum.ReportsCreated++
		}
	}

	return sum, nil
}
