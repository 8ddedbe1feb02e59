package cli

import (
	"context"
	"image/color"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kasiopea-org/sumjson/internal/parser"
	"github.com/kasiopea-org/sumjson/internal/reader"
	"github.com/kasiopea-org/sumjson/internal/style"
	"github.com/kasiopea-org/sumjson/internal/writer"
)

var (
	// Global flags
	logLevel string
	quiet    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sumjson",
	Short: "Sum integers from stdin and print the total as JSON",
	Long: `sumjson reads whitespace-separated signed 64-bit integers from standard
input, adds them up, and writes the total to standard output as a bare JSON
number followed by a newline.

The sum is computed in full before anything is written: a malformed token or
a 64-bit overflow aborts with a diagnostic and no output line. Empty input
sums to 0.

Examples:
  echo "1 2 3" | sumjson        # prints 6
  sumjson < numbers.txt
  seq 1 100 | sumjson | jq .`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSum(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return fang.Execute(context.Background(), rootCmd, fang.WithColorSchemeFunc(func(lightDark lipgloss.LightDarkFunc) fang.ColorScheme {
		return fang.ColorScheme{
			Base:           style.PrimaryTextColor,
			Title:          style.AccentColor,
			Description:    style.PrimaryTextColor,
			Codeblock:      style.CodeColor,
			Program:        style.AccentColor,
			DimmedArgument: style.MutedColor,
			Comment:        style.MutedColor,
			Flag:           style.InfoColor,
			FlagDefault:    style.MutedColor,
			Command:        style.SuccessColor,
			QuotedString:   style.WarningColor,
			Argument:       style.PrimaryTextColor,
			Help:           style.InfoColor,
			Dash:           style.MutedColor,
			ErrorHeader:    [2]color.Color{style.ErrorColor, style.ErrorBgColor},
			ErrorDetails:   style.ErrorColor,
		}
	}))
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "disabled", "log level (debug, info, warn, error) (default: disabled)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	// Bind flags to viper
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// initConfig reads in environment variables if set.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("SUMJSON")
	viper.AutomaticEnv() // read in environment variables that match
}

// initLogging configures the global logger
func initLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := viper.GetString("log-level")
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	// Logging goes to stderr so stdout stays a clean JSON document
	if !viper.GetBool("quiet") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// runSum is the whole pipeline: drain stdin, fold into a sum, emit JSON.
// Nothing is written until the sum is final.
func runSum(cmd *cobra.Command) error {
	buf, err := reader.ReadAll(cmd.InOrStdin())
	if err != nil {
		log.Error().Err(err).Msg("input stage failed")
		return err
	}

	sum, err := parser.Sum(buf)
	if err != nil {
		log.Error().Err(err).Msg("parse stage failed")
		return err
	}

	if err := writer.WriteSum(cmd.OutOrStdout(), sum); err != nil {
		log.Error().Err(err).Msg("output stage failed")
		return err
	}

	return nil
}
