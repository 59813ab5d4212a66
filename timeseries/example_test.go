// File: example_test.go
// Title: Example Tests for Timeseries Package Documentation
// Description: Executable examples demonstrating the calendar series factories.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial example implementation

package timeseries_test

import (
	"fmt"
	"time"

	"github.com/msto63/tsmath/timeseries"
)

func ExampleNewMonthlySeriesIn() {
	ts, err := timeseries.NewMonthlySeriesIn(time.UTC, 2024, 11, 10.5, 11.0, 11.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i := 0; i < ts.Len(); i++ {
		tm, _ := ts.TimeAt(i)
		fmt.Printf("%s  %g\n", tm.Format("2006-01"), ts.MustAt(i))
	}
	// Output:
	// 2024-11  10.5
	// 2024-12  11
	// 2025-01  11.5
}

func ExampleNewQuarterlySeriesIn() {
	ts, err := timeseries.NewQuarterlySeriesIn(time.UTC, 2024, 3, 100.0, 200.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(ts.StartTime().Format("2006-01-02"))
	fmt.Println(ts.CycleLength())
	// Output:
	// 2024-07-01
	// 4
}
