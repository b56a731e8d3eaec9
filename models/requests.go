package models

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDay accepts either a plain calendar day (2006-01-02) or an RFC3339
// instant and returns it in UTC.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC3339", s)
	}
	return t.UTC(), nil
}

// CreateEntryRequest is the body of POST /entry.
type CreateEntryRequest struct {
	Date              string              `json:"date" binding:"required"`
	DayType           DayType             `json:"dayType" binding:"required,daytype"`
	Rows              []ProductiveLine    `json:"rows" binding:"required"`
	NonProductiveRows []NonProductiveLine `json:"nonProductiveRows"`
	// Username lets an admin attribute the entry to another processor.
	Username string `json:"username"`
}

// UpdateEntryRequest only carries the mutable parts of an entry; owner and
// date cannot be changed after creation.
type UpdateEntryRequest struct {
	DayType           *DayType             `json:"dayType" binding:"omitempty,daytype"`
	Rows              *[]ProductiveLine    `json:"rows"`
	NonProductiveRows *[]NonProductiveLine `json:"nonProductiveRows"`
}

func (r *UpdateEntryRequest) Empty() bool {
	return r.DayType == nil && r.Rows == nil && r.NonProductiveRows == nil
}

type ListEntriesQuery struct {
	Limit     int    `form:"limit" binding:"omitempty,min=0"`
	Skip      int    `form:"skip" binding:"omitempty,min=0"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
