package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/tsmath/core/config"
	"github.com/msto63/tsmath/core/log"
	"github.com/msto63/tsmath/timeseries"
)

var (
	cfgFile string
	verbose bool

	logger = log.GetDefault().WithName("tsmath")
)

var rootCmd = &cobra.Command{
	Use:   "tsmath",
	Short: "tsmath - Feldarithmetik und Kalender-Zeitreihen",
	Long: `tsmath ist eine Bibliothek und Kommandozeile für Feldarithmetik
mit komplexen Zahlen und kalenderbasierte Zeitreihen.

Befehle:
  complex  - Arithmetik mit komplexen Zahlen (add, sub, mul, div, sqrt, abs)
  series   - Monatliche und quartalsweise Zeitreihen erzeugen
  version  - Versionsinformationen anzeigen`,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/tsmath.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func initConfig(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.SetLevel(log.LevelDebug)
	}

	path := cfgFile
	if path == "" {
		path = "./configs/tsmath.toml"
		if _, err := os.Stat(path); err != nil {
			// No default config present, run with built-in defaults
			return nil
		}
	}

	cfg, err := config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "TSMATH",
	})
	if err != nil {
		printError("Config konnte nicht geladen werden", err)
		return err
	}
	logger.Debug("Konfiguration geladen", log.Fields{"path": path, "format": cfg.Format().String()})

	if zone := cfg.GetString("timeseries.zone"); zone != "" {
		if err := timeseries.SetDefaultZone(zone); err != nil {
			printError("Ungültige Zeitzone in der Konfiguration", err)
			return err
		}
		logger.Debug("Standard-Zeitzone gesetzt", log.Fields{"zone": zone})
	}

	if levelName := cfg.GetString("log.level"); levelName != "" && !verbose {
		level, err := log.ParseLevel(levelName)
		if err != nil {
			printError("Ungültiger Log-Level in der Konfiguration", err)
			return err
		}
		logger.SetLevel(level)
	}

	return nil
}

func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, renderError(fmt.Sprintf("%s: %v", msg, err)))
}
