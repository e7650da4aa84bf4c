package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"nhrsa/application"
	"nhrsa/core"
	"nhrsa/infrastructure/clients"
	"nhrsa/infrastructure/loggers"
	"nhrsa/infrastructure/scrapers"
	"nhrsa/infrastructure/settings"
	"nhrsa/infrastructure/stores"

	"github.com/spf13/cobra"
)

type options struct {
	source       string
	outPath      string
	smokeChapter string
	citation     string
	configPath   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "rebuild_mapping",
		Short: "Build chapter_to_title.json from the NH RSA Table of Contents",
		Long: `Build chapter_to_title.json from the NH RSA Table of Contents.

The mapping turns 'RSA 225-A:24' into
  https://gc.nh.gov/rsa/html/xix-a/225-a/225-a-24.htm`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rebuildMapping(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.source, "source", string(core.SourceFixture), "where to read the TOC from: live | fixture")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "output path (default OUT_PATH or "+core.DefaultOutPath+")")
	cmd.Flags().StringVar(&opts.smokeChapter, "smoke", core.SmokeTestChapter, "chapter to resolve after writing the mapping")
	cmd.Flags().StringVar(&opts.citation, "cite", "", "citation to turn into a deep link, e.g. 'RSA 225-A:24'")
	cmd.Flags().StringVar(&opts.configPath, "config", ".", "directory holding settings.env")
	return cmd
}

func rebuildMapping(ctx context.Context, out io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mode, err := core.ParseSourceMode(opts.source)
	if err != nil {
		return err
	}

	mySettings, err := settings.GetSettings(opts.configPath)
	if err != nil {
		return fmt.Errorf("error on get settings: %w", err)
	}
	logger, err := loggers.InitializeMultiLogger(mySettings.DoLogToStdout, mySettings.LogLevel)
	if err != nil {
		return fmt.Errorf("error on initializing multilogger: %w", err)
	}

	outPath := mySettings.OutPath
	if len(opts.outPath) > 0 {
		outPath = opts.outPath
	}

	fileHelper, err := stores.InitializeLocalFileHelper()
	if err != nil {
		return fmt.Errorf("error on initializing local file helper: %w", err)
	}
	webClient, err := clients.InitializeHTTPClientHelper(mySettings.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("error on initializing http client: %w", err)
	}
	scraper, err := scrapers.InitializeScraper()
	if err != nil {
		return fmt.Errorf("error on initializing scraper: %w", err)
	}

	var rawArchive core.RawDataStore
	if mode == core.SourceLive && len(mySettings.BucketName) > 0 {
		logger.Info("initializing s3 helper for bucket='%s'", mySettings.BucketName)
		s3Helper, err := stores.InitializeS3Helper(ctx, mySettings.BucketName, mySettings.RawPathPrefix, mySettings.ContextTimeout, mySettings.LocalEndpoint)
		if err != nil {
			return fmt.Errorf("error on initializing s3 helper: %w", err)
		}
		rawArchive = s3Helper
	}

	request := application.RebuildRequest{
		Mode:         mode,
		TOCURL:       mySettings.TOCURL,
		FixturePath:  mySettings.FixturePath,
		OutPath:      outPath,
		SmokeChapter: opts.smokeChapter,
		Citation:     opts.citation,
	}
	result, err := application.RebuildMapping(ctx, request, fileHelper, webClient, rawArchive, scraper, logger)
	if err != nil {
		logger.Error("error on rebuild mapping: %v", err)
		return err
	}

	folder := "<not found>"
	if result.SmokeFound {
		folder = "'" + result.SmokeFolder + "'"
	}
	fmt.Fprintf(out, "Wrote %s. Example %s -> folder %s\n", outPath, opts.smokeChapter, folder)
	if len(result.CitationLink) > 0 {
		fmt.Fprintf(out, "%s -> %s\n", opts.citation, result.CitationLink)
	}
	return nil
}
