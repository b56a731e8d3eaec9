package models

import (
	"time"

	"gorm.io/datatypes"
)

// DayType classifies how much of the day was worked.
type DayType string

const (
	HalfDay DayType = "Half Day"
	FullDay DayType = "Full Day"
	PTO     DayType = "PTO"
)

var DayTypes = []DayType{HalfDay, FullDay, PTO}

func (d DayType) Valid() bool {
	for _, t := range DayTypes {
		if d == t {
			return true
		}
	}
	return false
}

// ProductiveLine is one row of a daily log: documents processed on a
// platform/docType/queue combination and the minutes spent on them.
type ProductiveLine struct {
	Platform   string    `json:"platform,omitempty" bson:"platform,omitempty"`
	DocType    string    `json:"docType,omitempty" bson:"doc_type,omitempty"`
	Queue      string    `json:"queue,omitempty" bson:"queue,omitempty"`
	Count      *Quantity `json:"count,omitempty" bson:"count,omitempty"`
	TimeInMins *Quantity `json:"timeInMins,omitempty" bson:"time_in_mins,omitempty"`
}

type NonProductiveLine struct {
	ActivityType string    `json:"activityType,omitempty" bson:"activity_type,omitempty"`
	Duration     *Quantity `json:"duration,omitempty" bson:"duration,omitempty"`
	Comments     string    `json:"comments,omitempty" bson:"comments,omitempty"`
}

// Entry is one user's log for one calendar day.
type Entry struct {
	ID                 string                                 `gorm:"type:varchar(50);primaryKey" json:"id" bson:"_id"`
	OwnerID            string                                 `gorm:"type:varchar(50);index:idx_entries_owner_date" json:"ownerId" bson:"owner_id"`
	DisplayName        string                                 `gorm:"type:varchar(100)" json:"displayName" bson:"display_name"`
	Date               time.Time                              `gorm:"index:idx_entries_owner_date" json:"date" bson:"date"`
	DayType            DayType                                `gorm:"type:varchar(20)" json:"dayType" bson:"day_type"`
	ProductiveLines    datatypes.JSONSlice[ProductiveLine]    `json:"productiveLines" bson:"productive_lines"`
	NonProductiveLines datatypes.JSONSlice[NonProductiveLine] `json:"nonProductiveLines" bson:"non_productive_lines"`
	CreatedAt          time.Time                              `json:"createdAt" bson:"created_at"`
}

func (Entry) TableName() string {
	return "entries"
}

// Entry field names shared by the gorm columns and the mongo documents.
const (
	FieldOwnerID            = "owner_id"
	FieldDate               = "date"
	FieldDayType            = "day_type"
	FieldProductiveLines    = "productive_lines"
	FieldNonProductiveLines = "non_productive_lines"
)
