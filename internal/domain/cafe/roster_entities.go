package cafe

import "time"

func NewCustomer(id, name, email, phone string, now time.Time) Customer {
	return Customer{
		ID:            id,
		CafeID:        DefaultCafeID,
		Name:          name,
		Email:         email,
		Phone:         phone,
		FavoriteItems: []string{},
		Mood:          MoodNeutral,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func NewStaff(id, name string, role StaffRole, hourlyRate float64, email string, now time.Time) Staff {
	return Staff{
		ID:         id,
		CafeID:     DefaultCafeID,
		Name:       name,
		Role:       role,
		HourlyRate: hourlyRate,
		Email:      email,
		IsActive:   true,
		HireDate:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
