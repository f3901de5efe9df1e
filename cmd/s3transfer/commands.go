package main

import (
	"context"
	"fmt"
	"io"

	"github.com/bitrise-io/go-s3transfer/bucket"
	"github.com/bitrise-io/go-s3transfer/config"
	"github.com/bitrise-io/go-s3transfer/transfer"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

type clientFactory func(ctx context.Context, params bucket.Params, logger log.Logger) (bucket.Client, error)

type app struct {
	envRepo   env.Repository
	logger    log.Logger
	out       io.Writer
	newClient clientFactory

	bucket             string
	region             string
	endpoint           string
	insecureSkipVerify bool
	partCount          int
	multipartThreshold int64
	abortOnFailure     bool
	downloadRetries    int
	exclude            []string
	verbose            bool
}

func newApp(envRepo env.Repository, logger log.Logger, out io.Writer) *app {
	return &app{
		envRepo: envRepo,
		logger:  logger,
		out:     out,
		newClient: func(ctx context.Context, params bucket.Params, logger log.Logger) (bucket.Client, error) {
			return bucket.NewS3Client(ctx, params, logger)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "s3transfer",
		Short: "Transfer files to and from an S3 bucket",
		Long: `s3transfer lists, uploads, downloads and deletes objects of an S3 bucket.
Files of 1,000,000,000 bytes and more are uploaded in 100 parts.

Settings are read from S3TRANSFER_* environment variables, flags override them.

Examples:
  s3transfer ls data/
  s3transfer put ./model.bin models/
  s3transfer put ./dataset backups/
  s3transfer get models/model.bin ./model.bin
  s3transfer rm models/model.bin`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.bucket, "bucket", "", "Bucket name ("+config.BucketKey+")")
	flags.StringVar(&a.region, "region", "", "Bucket region ("+config.RegionKey+")")
	flags.StringVar(&a.endpoint, "endpoint", "", "S3 compatible endpoint URL ("+config.EndpointKey+")")
	flags.BoolVar(&a.insecureSkipVerify, "insecure-skip-verify", false, "Skip TLS certificate verification of the storage endpoint")
	flags.IntVar(&a.partCount, "part-count", 0, "Number of parts of a multipart upload")
	flags.Int64Var(&a.multipartThreshold, "multipart-threshold", 0, "Smallest file size in bytes uploaded in parts")
	flags.BoolVar(&a.abortOnFailure, "abort-on-failure", true, "Abort the multipart upload when a part fails")
	flags.IntVar(&a.downloadRetries, "download-retries", 0, "Number of retries of a failed download")
	flags.StringSliceVar(&a.exclude, "exclude", nil, "Glob patterns of files skipped in directory uploads")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newListCmd(a),
		newPutCmd(a),
		newGetCmd(a),
		newRemoveCmd(a),
	)

	return rootCmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [prefix]",
		Short: "List the objects under a prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			session, err := a.session(cmd)
			if err != nil {
				return err
			}

			entries, err := session.List(cmd.Context(), prefix)
			if err != nil {
				return err
			}
			return transfer.PrintListing(a.out, prefix, entries)
		},
	}
}

func newPutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put <local path> <remote path>",
		Short: "Upload a file or a directory",
		Long: `Upload a file or a directory.

A remote path ending in "/" is a directory: the uploaded file keeps its name.
A directory is uploaded under <remote path>/<directory name>/.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd)
			if err != nil {
				return err
			}

			results, err := session.UploadPath(cmd.Context(), args[0], args[1])
			if len(results) > 1 || err != nil {
				var total int64
				for _, r := range results {
					total += r.BytesTransferred
				}
				a.logger.Printf("%d files uploaded (%s)", len(results), units.HumanSizeWithPrecision(float64(total), 3))
			}
			return err
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <remote path> <local path>",
		Short: "Download an object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd)
			if err != nil {
				return err
			}

			_, err = session.Download(cmd.Context(), args[0], args[1])
			return err
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <remote path>",
		Short: "Delete an object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd)
			if err != nil {
				return err
			}

			outcome, err := session.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: %s\n", args[0], outcome) //nolint:errcheck
			return nil
		},
	}
}

func (a *app) session(cmd *cobra.Command) (*transfer.Session, error) {
	cfg, err := a.config(cmd)
	if err != nil {
		return nil, err
	}

	a.logger.EnableDebugLog(cfg.Verbose)
	if cfg.Verbose {
		cfg.Print(a.logger)
	}

	client, err := a.newClient(cmd.Context(), cfg.BucketParams(), a.logger)
	if err != nil {
		return nil, fmt.Errorf("create bucket client: %w", err)
	}

	return transfer.NewSession(client, cfg.TransferOptions(), a.logger), nil
}

// config reads the environment and applies the flags set on the command line.
func (a *app) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.NewFromEnv(a.envRepo)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("bucket") {
		cfg.Bucket = a.bucket
	}
	if flags.Changed("region") {
		cfg.Region = a.region
	}
	if flags.Changed("endpoint") {
		cfg.Endpoint = a.endpoint
	}
	if flags.Changed("insecure-skip-verify") {
		cfg.InsecureSkipVerify = a.insecureSkipVerify
	}
	if flags.Changed("part-count") {
		cfg.PartCount = a.partCount
	}
	if flags.Changed("multipart-threshold") {
		cfg.MultipartThreshold = a.multipartThreshold
	}
	if flags.Changed("abort-on-failure") {
		cfg.AbortOnFailure = a.abortOnFailure
	}
	if flags.Changed("download-retries") {
		cfg.DownloadRetries = a.downloadRetries
	}
	if flags.Changed("exclude") {
		cfg.ExcludePatterns = a.exclude
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
