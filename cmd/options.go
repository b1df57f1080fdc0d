package cmd

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/sw33tLie/playscope/internal/utils"
	"github.com/sw33tLie/playscope/pkg/search"
)

// UserInputError is a problem with the command line, reported before anything
// is fetched.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string { return e.Msg }

var errBothSearchModes = &UserInputError{Msg: "Cannot use both --search and --queries. Please use one or the other."}

// options is the parsed command line.
type options struct {
	Search       string
	Queries      []string
	Package      string
	Limit        int `flag:"limit" validate:"min=1"`
	Output       string
	Country      string `flag:"country" validate:"required,alpha"`
	Lang         string `flag:"lang" validate:"required"`
	Exact        bool
	AllCountries bool
	Countries    []string `flag:"countries" validate:"dive,alpha"`
}

// hasAction reports whether the command line asks for any work.
func (o *options) hasAction() bool {
	return o.Search != "" || len(o.Queries) > 0 || o.Package != ""
}

// countries returns the multi-country list, or nil for a single-country run.
func (o *options) countries() []string {
	if len(o.Countries) > 0 {
		return o.Countries
	}
	if o.AllCountries {
		return search.DefaultCountries
	}
	return nil
}

func (o *options) searchOptions() search.Options {
	return search.Options{Limit: o.Limit, Exact: o.Exact, Lang: o.Lang}
}

var optionsValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	return v
}

// validate checks o and returns a *UserInputError describing the first
// problem found.
func (o *options) validate() error {
	if o.Search != "" && len(o.Queries) > 0 {
		return errBothSearchModes
	}

	err := optionsValidator.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	name := strings.SplitN(fe.Field(), "[", 2)[0]
	switch fe.Tag() {
	case "min":
		return &UserInputError{Msg: fmt.Sprintf("--%s must be at least %s (got %v)", name, fe.Param(), fe.Value())}
	case "required":
		return &UserInputError{Msg: fmt.Sprintf("--%s must not be empty", name)}
	default:
		return &UserInputError{Msg: fmt.Sprintf("invalid --%s value %q", name, fmt.Sprint(fe.Value()))}
	}
}

// checkLang warns about language codes that are not BCP 47. The Play Store
// falls back to English for those, so it is not an error.
func checkLang(lang string, log search.Logger) {
	if _, err := language.Parse(lang); err != nil {
		log.Warnf("Language code %q is not recognized, results may be in English: %v", lang, err)
	}
}

// readOptions collects the command line. Flags bound to viper also pick up
// the environment and config file.
func readOptions(cmd *cobra.Command, args []string) (*options, error) {
	flags := cmd.Flags()

	queries, _ := flags.GetStringArray("queries")
	if len(args) > 0 {
		if len(queries) == 0 {
			return nil, fmt.Errorf("unknown command: '%s'. See 'playscope --help'", args[0])
		}
		queries = append(queries, args...)
	}

	o := &options{Queries: queries}
	o.Search, _ = flags.GetString("search")
	o.Package, _ = flags.GetString("package")
	o.Output, _ = flags.GetString("output")
	o.Exact, _ = flags.GetBool("exact")
	o.AllCountries, _ = flags.GetBool("all-countries")
	countries, _ := flags.GetStringSlice("countries")

	o.Search = strings.TrimSpace(o.Search)
	o.Package = strings.TrimSpace(o.Package)
	o.Limit = viper.GetInt("limit")
	o.Country = strings.ToLower(strings.TrimSpace(viper.GetString("country")))
	o.Lang = strings.TrimSpace(viper.GetString("lang"))
	o.Countries = utils.LowerAll(utils.CleanList(countries))
	return o, nil
}
