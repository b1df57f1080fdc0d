package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/sw33tLie/playscope/internal/utils"
	"github.com/sw33tLie/playscope/pkg/providers/cached"
	"github.com/sw33tLie/playscope/pkg/providers/playstore"
	"github.com/sw33tLie/playscope/pkg/search"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `        _
  _ __ | | __ _ _   _ ___  ___ ___  _ __   ___
 | '_ \| |/ _' | | | / __|/ __/ _ \| '_ \ / _ \
 | |_) | | (_| | |_| \__ \ (_| (_) | |_) |  __/
 | .__/|_|\__,_|\__, |___/\___\___/| .__/ \___|
 |_|            |___/              |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "playscope",
	Short: "Search the Google Play Store from your command line.",
	Long: LOGO + `playscope searches Google Play for apps, across countries and queries, and
fetches the full details of a single package.

Examples:
  playscope -s "WhatsApp" -l 5
  playscope -s "Instagram" -e --all-countries -o instagram.json
  playscope --queries "whatsapp" "telegram" "signal" -c in
  playscope -p com.spotify.music`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.playscope.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("proxy", "", "", "HTTP Proxy (Useful for debugging. Example: http://127.0.0.1:8080)")
	rootCmd.PersistentFlags().StringP("loglevel", "", "info", "Set log level. Available: debug, info, warn, error, fatal")

	flags := rootCmd.Flags()
	flags.StringP("search", "s", "", "Search query (e.g. \"WhatsApp\", \"games\")")
	flags.StringArray("queries", nil, "Search query, repeatable; extra arguments are taken as more queries")
	flags.StringP("package", "p", "", "Package name to fetch details for (e.g. com.whatsapp)")
	flags.IntP("limit", "l", search.DefaultLimit, "Number of results per search")
	flags.StringP("output", "o", "", "Save results to this JSON file")
	flags.StringP("country", "c", search.DefaultCountry, "Country code (e.g. us, in, uk)")
	flags.String("lang", search.DefaultLang, "Language code (e.g. en, hi, es)")
	flags.BoolP("exact", "e", false, "Only keep results that closely match the query")
	flags.Bool("all-countries", false, "Search across all major countries ("+strings.ToUpper(strings.Join(search.DefaultCountries, ", "))+")")
	flags.StringSlice("countries", nil, "Comma-separated countries to search across (overrides --all-countries)")

	viper.BindPFlag("proxy", rootCmd.PersistentFlags().Lookup("proxy"))
	viper.BindPFlag("limit", flags.Lookup("limit"))
	viper.BindPFlag("country", flags.Lookup("country"))
	viper.BindPFlag("lang", flags.Lookup("lang"))
}

// setDefaults registers every config key with its default value.
func setDefaults(v *viper.Viper) {
	v.SetDefault("country", search.DefaultCountry)
	v.SetDefault("lang", search.DefaultLang)
	v.SetDefault("limit", search.DefaultLimit)
	v.SetDefault("proxy", "")
	v.SetDefault("playstore.base_url", playstore.DefaultBaseURL)
	v.SetDefault("playstore.timeout", playstore.DefaultTimeout)
	v.SetDefault("playstore.retries", playstore.DefaultRetries)
	v.SetDefault("playstore.rate", playstore.DefaultRateLimit)
	v.SetDefault("cache.size", cached.DefaultSize)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".playscope")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("playscope")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			fresh := viper.New()
			setDefaults(fresh)
			if err := fresh.SafeWriteConfigAs(filepath.Join(home, ".playscope.yaml")); err != nil {
				utils.Log.Debugf("Error creating config file: %s", err)
			}
		} else {
			utils.Log.Warnf("Error reading config file: %s", err)
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
