package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tsmath/core/log"
	"github.com/msto63/tsmath/timeseries"
)

var (
	flagYear    int
	flagMonth   int
	flagDay     int
	flagQuarter int
	flagValues  []float64
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Kalenderbasierte Zeitreihen erzeugen",
	Long: `Erzeugt monatliche oder quartalsweise Zeitreihen und gibt die
Beobachtungen mit ihren Kalenderzeitpunkten aus.

Die Standard-Zeitzone ist America/Chicago und kann über die
Konfiguration (timeseries.zone) geändert werden.`,
}

var seriesMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Erzeugt eine monatliche Zeitreihe",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("Erzeuge monatliche Zeitreihe", log.Fields{
			"year": flagYear, "month": flagMonth, "day": flagDay, "values": len(flagValues),
		})

		ts, err := timeseries.NewMonthlySeriesAt(flagYear, flagMonth, flagDay, flagValues...)
		if err != nil {
			printError("Zeitreihe konnte nicht erzeugt werden", err)
			return err
		}
		printSeries("Monatliche Zeitreihe", ts)
		return nil
	},
}

var seriesQuarterlyCmd = &cobra.Command{
	Use:   "quarterly",
	Short: "Erzeugt eine quartalsweise Zeitreihe",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("Erzeuge quartalsweise Zeitreihe", log.Fields{
			"year": flagYear, "quarter": flagQuarter, "values": len(flagValues),
		})

		ts, err := timeseries.NewQuarterlySeries(flagYear, flagQuarter, flagValues...)
		if err != nil {
			printError("Zeitreihe konnte nicht erzeugt werden", err)
			return err
		}
		printSeries("Quartalsweise Zeitreihe", ts)
		return nil
	},
}

func init() {
	seriesCmd.PersistentFlags().IntVar(&flagYear, "year", 2025, "Startjahr")
	seriesCmd.PersistentFlags().Float64SliceVar(&flagValues, "values", nil, "Beobachtungswerte (kommagetrennt)")
	seriesMonthlyCmd.Flags().IntVar(&flagMonth, "month", 1, "Startmonat (1-12)")
	seriesMonthlyCmd.Flags().IntVar(&flagDay, "day", 1, "Starttag im Monat")
	seriesQuarterlyCmd.Flags().IntVar(&flagQuarter, "quarter", 1, "Startquartal (1-4)")

	seriesCmd.AddCommand(seriesMonthlyCmd)
	seriesCmd.AddCommand(seriesQuarterlyCmd)
	rootCmd.AddCommand(seriesCmd)
}

func printSeries(title string, ts timeseries.TimeSeries) {
	fmt.Println(renderTitle(title))
	fmt.Println(renderMuted(fmt.Sprintf("Zeitzone: %s", ts.StartTime().Location())))
	fmt.Println()

	for i := 0; i < ts.Len(); i++ {
		tm, _ := ts.TimeAt(i)
		fmt.Printf("  %s  %s\n", tm.Format("2006-01-02"), renderResult(fmt.Sprintf("%g", ts.MustAt(i))))
	}

	fmt.Println()
	fmt.Println(renderMuted(fmt.Sprintf("%d Beobachtungen, Zykluslänge %d", ts.Len(), ts.CycleLength())))
}
