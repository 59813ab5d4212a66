// File: timeseries.go
// Title: Time Series Container Implementation
// Description: Implements the TimeSeries container: an immutable, timestamped
//              sequence of real-valued observations with a fixed number of
//              sub-periods per cycle. Construction happens through the calendar
//              factories in factory.go; after that the container never changes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation of the series container

package timeseries

import (
	"fmt"
	"strings"
	"time"

	"github.com/msto63/tsmath/core/errors"
)

// TimeSeries represents an ordered sequence of real-valued observations, each
// anchored to a calendar instant. The observation spacing and the number of
// observations per cycle are fixed at construction (12 for monthly series
// within a yearly cycle, 4 for quarterly).
//
// A TimeSeries is immutable after construction and performs no arithmetic on
// its observations.
type TimeSeries struct {
	values               []float64
	times                []time.Time
	monthsPerObservation int
	observationsPerCycle int
}

// newTimeSeries builds the container from a validated start instant
func newTimeSeries(start time.Time, monthsPerObservation, observationsPerCycle int, values []float64) TimeSeries {
	copied := make([]float64, len(values))
	copy(copied, values)

	times := make([]time.Time, len(values))
	for i := range times {
		times[i] = start.AddDate(0, i*monthsPerObservation, 0)
	}

	return TimeSeries{
		values:               copied,
		times:                times,
		monthsPerObservation: monthsPerObservation,
		observationsPerCycle: observationsPerCycle,
	}
}

// Len returns the number of observations
func (ts TimeSeries) Len() int {
	return len(ts.values)
}

// At returns the observation at the given index. It fails with a
// TIMESERIES_INDEX_OUT_OF_RANGE error for indices outside [0, Len).
func (ts TimeSeries) At(index int) (float64, error) {
	if index < 0 || index >= len(ts.values) {
		return 0, errors.TimeseriesIndexOutOfRange("at", index, len(ts.values))
	}
	return ts.values[index], nil
}

// MustAt is like At but panics on an out-of-range index
func (ts TimeSeries) MustAt(index int) float64 {
	value, err := ts.At(index)
	if err != nil {
		panic(err)
	}
	return value
}

// TimeAt returns the calendar instant of the observation at the given index
func (ts TimeSeries) TimeAt(index int) (time.Time, error) {
	if index < 0 || index >= len(ts.times) {
		return time.Time{}, errors.TimeseriesIndexOutOfRange("time_at", index, len(ts.times))
	}
	return ts.times[index], nil
}

// Values returns a defensive copy of the observation values
func (ts TimeSeries) Values() []float64 {
	copied := make([]float64, len(ts.values))
	copy(copied, ts.values)
	return copied
}

// ObservationTimes returns a defensive copy of the observation instants
func (ts TimeSeries) ObservationTimes() []time.Time {
	copied := make([]time.Time, len(ts.times))
	copy(copied, ts.times)
	return copied
}

// StartTime returns the instant of the first observation. For an empty series
// the zero time is returned.
func (ts TimeSeries) StartTime() time.Time {
	if len(ts.times) == 0 {
		return time.Time{}
	}
	return ts.times[0]
}

// CycleLength returns the number of observations per cycle
// (12 for monthly series, 4 for quarterly series)
func (ts TimeSeries) CycleLength() int {
	return ts.observationsPerCycle
}

// MonthsPerObservation returns the calendar spacing between observations
func (ts TimeSeries) MonthsPerObservation() int {
	return ts.monthsPerObservation
}

// String returns a diagnostic listing of the series, one observation per line
func (ts TimeSeries) String() string {
	if len(ts.values) == 0 {
		return "TimeSeries: empty"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("TimeSeries: %d observations, cycle length %d\n",
		len(ts.values), ts.observationsPerCycle))
	for i, v := range ts.values {
		sb.WriteString(fmt.Sprintf("  %s  %g\n", ts.times[i].Format("2006-01-02"), v))
	}
	return sb.String()
}
