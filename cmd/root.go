package cmd

import (
	"github.com/jsphweid/songsheet/config"
	"github.com/jsphweid/songsheet/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	appFs      afero.Fs = afero.NewOsFs()
	cfg                 = config.Default()
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "songsheet",
	Short: "Chord sheet toolkit",
	Long: `Transposes ChordPro-style chord sheets, detects their key and
rewrites chords as roman numerals or solfege. Also renders chord charts to
MIDI and serves all of it over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(appFs, configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		level, err := logging.ParseLevel(loaded.LogLevel)
		if err != nil {
			return err
		}
		logging.SetLevel(level)
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.Path(), "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
