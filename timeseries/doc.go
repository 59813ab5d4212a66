// Package timeseries provides calendar-anchored containers for periodic
// numeric sequences.
//
// Package: timeseries
// Title: Calendar Time Series Construction
// Description: This package implements the TimeSeries container and its
//              calendar factories. A series is built from an ordered sequence
//              of real-valued observations, a cycle description (12 monthly or
//              4 quarterly sub-periods per yearly cycle), and a starting
//              calendar instant derived from a year and either a month, a
//              month and day, or a quarter. The container is immutable and
//              performs no arithmetic on its observations; it has no
//              dependency on the mathx scalar types.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with monthly and quarterly factories
//
// # Time Zones
//
// Series starts are anchored at midnight in a time zone. The package default
// is America/Chicago; it can be changed globally with SetDefaultZone or per
// call with the In-suffixed factory variants. Locations are cached after the
// first lookup.
//
// # Usage Examples
//
// Monthly observations starting January 2020:
//
//	ts, err := timeseries.NewMonthlySeries(2020, 1, 2.5, 2.7, 3.1)
//	if err != nil {
//	    // invalid calendar unit
//	}
//	fmt.Println(ts.Len())        // 3
//	fmt.Println(ts.CycleLength()) // 12
//
// Quarterly observations starting Q3 2019:
//
//	ts := timeseries.MustNewQuarterlySeries(2019, 3, 110.0, 118.5)
package timeseries
