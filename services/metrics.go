package services

import (
	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalDocuments     int64   `json:"totalDocuments"`
	TotalTime          int64   `json:"totalTime"`
	TotalTimeHours     float64 `json:"totalTimeHours"`
	AvgDocumentsPerDay float64 `json:"avgDocumentsPerDay"`
	AvgTimePerDay      float64 `json:"avgTimePerDay"`
	AvgTimePerDocument float64 `json:"avgTimePerDocument"`
	DaysActive         int     `json:"daysActive"`
}

// DeriveSummary computes averages from raw sums. daysActive is the number of
// distinct days with data; spanDays is the length of the whole window. Every
// division by zero yields 0, which the dashboard displays as-is.
func DeriveSummary(totalDocuments, totalTime int64, daysActive, spanDays int) Summary {
	s := Summary{
		TotalDocuments: totalDocuments,
		TotalTime:      totalTime,
		TotalTimeHours: round(float64(totalTime)/60, 2),
		DaysActive:     daysActive,
	}
	if spanDays > 0 {
		s.AvgDocumentsPerDay = round(float64(totalDocuments)/float64(spanDays), 2)
		s.AvgTimePerDay = round(float64(totalTime)/float64(spanDays), 2)
	}
	if totalDocuments > 0 {
		s.AvgTimePerDocument = round(float64(totalTime)/float64(totalDocuments), 2)
	}
	return s
}

// Efficiency is documents per hour, one decimal.
func Efficiency(documents, minutes int64) float64 {
	if minutes <= 0 {
		return 0
	}
	return round(float64(documents)/(float64(minutes)/60), 1)
}

// Hours converts minutes to hours with the given number of decimals.
func Hours(minutes int64, places int32) float64 {
	return round(float64(minutes)/60, places)
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
