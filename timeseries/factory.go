// File: factory.go
// Title: Calendar Series Factories
// Description: Implements the calendar-based factory functions for periodic
//              numeric sequences: monthly series starting at a year and month
//              (optionally with a day) and quarterly series starting at a year
//              and quarter. Date arithmetic is deterministic; the only work
//              here is validating calendar units and anchoring the start
//              instant in the configured time zone.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation of monthly and quarterly factories

package timeseries

import (
	"sync"
	"time"

	"github.com/msto63/tsmath/core/errors"
)

// DefaultZoneID is the time zone series starts are anchored in unless a
// location is given explicitly or the default is changed via SetDefaultZone.
const DefaultZoneID = "America/Chicago"

// Cycle structure of the supported series kinds
const (
	monthsPerMonthlyObservation   = 1
	monthsPerQuarterlyObservation = 3
	monthlyObservationsPerCycle   = 12
	quarterlyObservationsPerCycle = 4
)

// Time zone cache for commonly used locations
var (
	zoneCache = make(map[string]*time.Location)
	zoneMu    sync.RWMutex

	defaultZoneMu sync.RWMutex
	defaultZoneID = DefaultZoneID
)

// getCachedLocation returns a cached time zone location or loads and caches it
func getCachedLocation(tz string) (*time.Location, error) {
	zoneMu.RLock()
	if loc, exists := zoneCache[tz]; exists {
		zoneMu.RUnlock()
		return loc, nil
	}
	zoneMu.RUnlock()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleTimeseries).
			Operation("load_zone").
			Messagef("unknown time zone %q", tz).
			Cause(err).
			Code(errors.CodeTimeseriesInvalidTimeZone).
			Build()
	}

	zoneMu.Lock()
	zoneCache[tz] = loc
	zoneMu.Unlock()

	return loc, nil
}

// SetDefaultZone changes the package-wide default time zone for series
// construction. It fails with a TIMESERIES_INVALID_TIMEZONE error when the
// zone name is unknown.
func SetDefaultZone(tz string) error {
	if _, err := getCachedLocation(tz); err != nil {
		return err
	}

	defaultZoneMu.Lock()
	defaultZoneID = tz
	defaultZoneMu.Unlock()
	return nil
}

// DefaultLocation returns the location for the current default zone
func DefaultLocation() *time.Location {
	defaultZoneMu.RLock()
	tz := defaultZoneID
	defaultZoneMu.RUnlock()

	loc, err := getCachedLocation(tz)
	if err != nil {
		// The default is validated on every change, so this only happens if
		// the zone database itself is unavailable. Fall back to UTC.
		return time.UTC
	}
	return loc
}

// NewMonthlySeries constructs a monthly series with a cycle length of one
// year, starting at the first day of the given year and month.
// The month is an integer between 1 and 12 corresponding to January through
// December.
func NewMonthlySeries(startYear, startMonth int, values ...float64) (TimeSeries, error) {
	return NewMonthlySeriesIn(DefaultLocation(), startYear, startMonth, values...)
}

// NewMonthlySeriesIn is like NewMonthlySeries with an explicit location
func NewMonthlySeriesIn(loc *time.Location, startYear, startMonth int, values ...float64) (TimeSeries, error) {
	return NewMonthlySeriesAtIn(loc, startYear, startMonth, 1, values...)
}

// NewMonthlySeriesAt constructs a monthly series with a cycle length of one
// year, starting at the given year, month, and day
func NewMonthlySeriesAt(startYear, startMonth, startDay int, values ...float64) (TimeSeries, error) {
	return NewMonthlySeriesAtIn(DefaultLocation(), startYear, startMonth, startDay, values...)
}

// NewMonthlySeriesAtIn is like NewMonthlySeriesAt with an explicit location
func NewMonthlySeriesAtIn(loc *time.Location, startYear, startMonth, startDay int, values ...float64) (TimeSeries, error) {
	start, err := startInstant(loc, startYear, startMonth, startDay, "new_monthly_series")
	if err != nil {
		return TimeSeries{}, err
	}
	return newTimeSeries(start, monthsPerMonthlyObservation, monthlyObservationsPerCycle, values), nil
}

// MustNewMonthlySeries is like NewMonthlySeries but panics on invalid calendar
// units. Use this for literal, known-valid starts.
func MustNewMonthlySeries(startYear, startMonth int, values ...float64) TimeSeries {
	ts, err := NewMonthlySeries(startYear, startMonth, values...)
	if err != nil {
		panic(err)
	}
	return ts
}

// NewQuarterlySeries constructs a quarterly series with a cycle length of one
// year, starting at the first day of the given year and quarter.
// The quarter is an integer between 1 and 4.
func NewQuarterlySeries(startYear, startQuarter int, values ...float64) (TimeSeries, error) {
	return NewQuarterlySeriesIn(DefaultLocation(), startYear, startQuarter, values...)
}

// NewQuarterlySeriesIn is like NewQuarterlySeries with an explicit location
func NewQuarterlySeriesIn(loc *time.Location, startYear, startQuarter int, values ...float64) (TimeSeries, error) {
	if startQuarter < 1 || startQuarter > 4 {
		return TimeSeries{}, errors.TimeseriesInvalidUnit("new_quarterly_series", "quarter", startQuarter, 1, 4)
	}

	startMonth := 3*startQuarter - 2
	start, err := startInstant(loc, startYear, startMonth, 1, "new_quarterly_series")
	if err != nil {
		return TimeSeries{}, err
	}
	return newTimeSeries(start, monthsPerQuarterlyObservation, quarterlyObservationsPerCycle, values), nil
}

// MustNewQuarterlySeries is like NewQuarterlySeries but panics on invalid
// calendar units
func MustNewQuarterlySeries(startYear, startQuarter int, values ...float64) TimeSeries {
	ts, err := NewQuarterlySeries(startYear, startQuarter, values...)
	if err != nil {
		panic(err)
	}
	return ts
}

// startInstant validates the calendar units and anchors the start of the
// series at midnight in the given location
func startInstant(loc *time.Location, year, month, day int, operation string) (time.Time, error) {
	if loc == nil {
		loc = DefaultLocation()
	}
	if month < 1 || month > 12 {
		return time.Time{}, errors.TimeseriesInvalidUnit(operation, "month", month, 1, 12)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, errors.TimeseriesInvalidUnit(operation, "day", day, 1, daysIn(year, time.Month(month)))
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// daysIn returns the number of days in the given month, respecting leap years
func daysIn(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
