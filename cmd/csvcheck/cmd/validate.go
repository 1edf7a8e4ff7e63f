package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/csvcheck/pkg/config"
	"github.com/dmitrymomot/csvcheck/pkg/csvsource"
	"github.com/dmitrymomot/csvcheck/pkg/csvvalidator"
	"github.com/dmitrymomot/csvcheck/pkg/logger"
	"github.com/dmitrymomot/csvcheck/pkg/metrics"
	"github.com/dmitrymomot/csvcheck/pkg/schema"
)

type validateOptions struct {
	schemaPath    string
	lang          string
	messagesFile  string
	rowStart      int
	noHeaderNames bool
	blank         []string
	delimiter     string
	output        string
	concurrency   int
	pushGateway   string
	pushJob       string
	trimHeaders   bool
	lazyQuotes    bool
	skipEmpty     bool
}

func newValidateCommand(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate --schema FILE SOURCE...",
		Short: "Validate CSV sources against a schema",
		Long: `Validate one or more CSV sources against a schema document.

A source is a local path, "-" for stdin or an s3://bucket/key location.
Sources are checked concurrently; reports are printed in argument order.
The exit status is 1 when any source is invalid and 2 on errors.`,
		Example: `  csvcheck validate --schema users.yaml users.csv
  csvcheck validate -s users.yaml --lang es --output json s3://exports/users.csv
  cat users.csv | csvcheck validate -s users.yaml --blank -,N/A -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.schemaPath, "schema", "s", "", "schema document (.yaml, .yml, .json, .toml)")
	f.StringVarP(&opts.lang, "lang", "l", "", "message language, e.g. en, es, fr-CA")
	f.StringVar(&opts.messagesFile, "messages", "", "message overrides file (.yaml, .json, .toml)")
	f.IntVar(&opts.rowStart, "row-start", csvvalidator.DefaultRowIndexStart, "row number of the first data row")
	f.BoolVar(&opts.noHeaderNames, "no-header-names", false, "match columns by position when header names differ")
	f.StringSliceVar(&opts.blank, "blank", nil, "values treated as blank in addition to empty cells")
	f.StringVarP(&opts.delimiter, "delimiter", "d", ",", "field delimiter")
	f.StringVarP(&opts.output, "output", "o", config.OutputText, "report format: text or json")
	f.IntVarP(&opts.concurrency, "concurrency", "j", 4, "sources validated in parallel")
	f.StringVar(&opts.pushGateway, "push-gateway", "", "Prometheus Pushgateway URL for run metrics")
	f.StringVar(&opts.pushJob, "push-job", "csvcheck", "Pushgateway job name")
	f.BoolVar(&opts.trimHeaders, "trim-headers", false, "trim whitespace around header names")
	f.BoolVar(&opts.lazyQuotes, "lazy-quotes", false, "accept bare quotes inside fields")
	f.BoolVar(&opts.skipEmpty, "skip-empty-lines", false, "drop records whose fields are all empty")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

// apply copies explicitly set flags over the environment configuration.
func (o *validateOptions) apply(f *pflag.FlagSet, cfg *config.Config) {
	if f.Changed("lang") {
		cfg.Lang = o.lang
	}
	if f.Changed("messages") {
		cfg.MessagesFile = o.messagesFile
	}
	if f.Changed("row-start") {
		cfg.RowIndexStart = o.rowStart
	}
	if f.Changed("no-header-names") {
		cfg.ValidateHeaderNames = !o.noHeaderNames
	}
	if f.Changed("blank") {
		cfg.BlankValues = o.blank
	}
	if f.Changed("delimiter") {
		cfg.Delimiter = o.delimiter
	}
	if f.Changed("output") {
		cfg.Output = o.output
	}
	if f.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if f.Changed("push-gateway") {
		cfg.PushGatewayURL = o.pushGateway
	}
	if f.Changed("push-job") {
		cfg.PushGatewayJob = o.pushJob
	}
	if f.Changed("trim-headers") {
		cfg.TrimHeaders = o.trimHeaders
	}
	if f.Changed("lazy-quotes") {
		cfg.LazyQuotes = o.lazyQuotes
	}
	if f.Changed("skip-empty-lines") {
		cfg.SkipEmptyLines = o.skipEmpty
	}
}

func parseOptions(cfg config.Config) []csvsource.Option {
	return []csvsource.Option{
		csvsource.WithComma(cfg.Comma()),
		csvsource.WithTrimHeaders(cfg.TrimHeaders),
		csvsource.WithLazyQuotes(cfg.LazyQuotes),
		csvsource.WithSkipEmptyRecords(cfg.SkipEmptyLines),
	}
}

func runValidate(cmd *cobra.Command, root *rootOptions, opts *validateOptions, sources []string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	opts.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	log := root.newLogger(cmd, cfg)

	s, err := schema.Load(ctx, opts.schemaPath)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	backend, err := newMetricsBackend(cfg)
	if err != nil {
		return err
	}

	v, err := csvvalidator.New(s, validatorOptions(cfg, log, backend)...)
	if err != nil {
		return err
	}

	opener, err := newOpener(ctx, cmd, cfg, sources)
	if err != nil {
		return err
	}

	reports := make([]sourceReport, len(sources))
	parseOpts := parseOptions(cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			start := time.Now()
			table, err := opener.Load(gctx, src, parseOpts...)
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			rep, err := v.ValidateTable(gctx, table)
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			log.DebugContext(gctx, "source checked",
				logger.Source(src),
				logger.RunID(rep.RunID),
				logger.Valid(rep.Valid),
				logger.Duration(time.Since(start)))
			reports[i] = sourceReport{Source: src, Report: rep}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := backend.Flush(); err != nil {
		log.WarnContext(ctx, "metrics push failed", logger.Error(err))
	}

	if err := writeReports(cmd.OutOrStdout(), cfg.Output, reports); err != nil {
		return err
	}

	for _, r := range reports {
		if !r.Valid {
			return ErrInvalidData
		}
	}
	return nil
}

func validatorOptions(cfg config.Config, log *slog.Logger, backend metrics.Backend) []csvvalidator.Option {
	opts := []csvvalidator.Option{
		csvvalidator.WithLanguage(cfg.Lang),
		csvvalidator.WithRowIndexStart(cfg.RowIndexStart),
		csvvalidator.WithValidateHeaderNames(cfg.ValidateHeaderNames),
		csvvalidator.WithLogger(log),
		csvvalidator.WithMetrics(backend),
	}
	if cfg.MessagesFile != "" {
		opts = append(opts, csvvalidator.WithMessagesFile(cfg.MessagesFile))
	}
	if len(cfg.BlankValues) > 0 {
		opts = append(opts, csvvalidator.WithEmptyValueCheck(blankTokens(cfg.BlankValues)))
	}
	return opts
}

// blankTokens treats empty cells and any of tokens as blank.
func blankTokens(tokens []string) csvvalidator.EmptyValueCheck {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.TrimSpace(t)] = struct{}{}
	}
	return func(value string) bool {
		value = strings.TrimSpace(value)
		if value == "" {
			return true
		}
		_, ok := set[value]
		return ok
	}
}

func newMetricsBackend(cfg config.Config) (metrics.Backend, error) {
	if cfg.PushGatewayURL == "" {
		return metrics.Nop(), nil
	}
	return metrics.NewPrometheus(metrics.WithPushGateway(cfg.PushGatewayURL, cfg.PushGatewayJob))
}

// newOpener builds the source opener. The S3 client is only created when a
// source needs it, so local runs never touch AWS configuration.
func newOpener(ctx context.Context, cmd *cobra.Command, cfg config.Config, sources []string) (*csvsource.Opener, error) {
	opts := []csvsource.OpenerOption{csvsource.WithStdin(cmd.InOrStdin())}

	for _, src := range sources {
		loc, err := csvsource.ParseLocation(src)
		if err != nil {
			return nil, err
		}
		if loc.Scheme != "s3" {
			continue
		}
		client, err := csvsource.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		opts = append(opts, csvsource.WithS3(client))
		break
	}

	return csvsource.NewOpener(opts...), nil
}
