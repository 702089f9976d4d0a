package main

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Compile Weft documents",
	Long: `Weft compiles HTML-like documents with embedded expressions and
control-flow elements (<if>, <else-if>, <else>, <for>, <let>) into
pure expression markup.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		processGlobalFlags()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.weft.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "write the compiler debug stream to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindEnv("no-color", "NO_COLOR")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fatal(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".weft")
	}
	viper.SetEnvPrefix("weft")
	viper.AutomaticEnv()
	// A missing config file is fine; flags and env cover everything.
	viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
	os.Exit(exitCode)
}

// exitCode lets commands fail the process after their output is fully
// written, without cutting Execute short.
var exitCode int
