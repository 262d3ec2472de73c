package utils

import (
	"fmt"
	"time"
)

// Wire formats for dates and times as they appear in extracted data
const (
	DATE_LAYOUT = "02/01/2006"
	TIME_LAYOUT = "15:04"
)

var monthNamesPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LongDatePT renders a dd/mm/yyyy date as "2 de maio de 2025". Dates that do
// not parse are returned unchanged.
func LongDatePT(date string) string {
	t, err := time.Parse(DATE_LAYOUT, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNamesPT[t.Month()-1], t.Year())
}

// BoardingTimeBefore returns the hh:mm boarding time the given number of
// minutes before an hh:mm departure time, wrapping across midnight. An
// unparseable departure yields an empty string.
func BoardingTimeBefore(departure string, minutes int) string {
	t, err := time.Parse(TIME_LAYOUT, departure)
	if err != nil {
		return ""
	}
	return t.Add(-time.Duration(minutes) * time.Minute).Format(TIME_LAYOUT)
}
