package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/i18n"
	"github.com/whatishedoing/domainmodels/pkg/logger"
)

type app struct {
	lang    string
	verbose bool
	catalog *i18n.Catalog
	log     *slog.Logger
}

// NewRootCmd builds the domainctl command tree. Output goes to out, logs and
// errors to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "domainctl",
		Short: "Validate and inspect domain values",
		Long: `domainctl validates and inspects the domain value types used by the API.

Types:
  ean          EAN-8, UPC-A, EAN-13, EAN-14 and SSCC barcodes
  isbn         ISBN-13 in the 978 and 979 ranges
  countrycode  two or three letter country codes
  postcode     UK postcodes`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.lang, "lang", i18n.DefaultLanguage, "language for error messages")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(a.checkCmd(), a.parseCmd(), a.detectCmd())
	return root
}

// Execute runs the command tree with os.Args.
func Execute(out, errOut io.Writer) error {
	return NewRootCmd(out, errOut).Execute()
}

func (a *app) init(errOut io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = logger.New(
		logger.WithTextFormatter(),
		logger.WithOutput(errOut),
		logger.WithLevel(level),
		logger.WithAttr(logger.Component("domainctl")),
	)

	catalog, err := i18n.Default(i18n.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.catalog = catalog
	a.lang = catalog.Match(a.lang)
	return nil
}

// describe returns the localized message for a rejected value and falls back
// to the error text for anything else.
func (a *app) describe(err error) string {
	if dve, ok := domainmodel.AsDomainValueError(err); ok && a.catalog != nil {
		if msg := a.catalog.T(a.lang, dve.TranslationKey, dve.TranslationValues); msg != "" {
			return msg
		}
	}
	return err.Error()
}
