package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Thandava3114/Catalog-Answers/internal/config"
	"github.com/Thandava3114/Catalog-Answers/internal/loader"
	"github.com/Thandava3114/Catalog-Answers/pkg/math/arith"
	"github.com/Thandava3114/Catalog-Answers/pkg/reconstruct"
	"github.com/Thandava3114/Catalog-Answers/pkg/share"
)

var errFailed = errors.New("some share files could not be reconstructed")

func newRootCmd() *cobra.Command {
	command := &cobra.Command{
		Use:           "sss",
		Short:         "Recover secrets from Shamir secret shares",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addReconstructCmd(command)
	return command
}

// addReconstructCmd adds `sss reconstruct FILE...`.
func addReconstructCmd(command *cobra.Command) {
	var (
		configPath string
		flags      config.Config
	)

	reconstructCmd := &cobra.Command{
		Use:   "reconstruct FILE...",
		Short: "Reconstruct the secret of each share file",
		Long: "Reconstruct the secret of each JSON share file, using exact arithmetic.\n" +
			"Files are processed concurrently and reported in argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.LoadFile(configPath); err != nil {
					return err
				}
			}
			set := cmd.Flags().Changed
			if set("jobs") {
				cfg.Jobs = flags.Jobs
			}
			if set("format") {
				cfg.Format = flags.Format
			}
			if set("log-level") {
				cfg.LogLevel = flags.LogLevel
			}
			if set("exhaustive") {
				cfg.ExhaustiveLimit = flags.ExhaustiveLimit
			}
			if set("prime") {
				cfg.Prime = flags.Prime
			}
			if set("base") {
				cfg.Base = flags.Base
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args, cmd.OutOrStdout())
		},
	}

	defaults := config.Default()
	reconstructCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	reconstructCmd.Flags().IntVarP(&flags.Jobs, "jobs", "j", defaults.Jobs, "number of files reconstructed concurrently")
	reconstructCmd.Flags().StringVarP(&flags.Format, "format", "f", defaults.Format, "output format: text, json or cbor")
	reconstructCmd.Flags().StringVar(&flags.LogLevel, "log-level", defaults.LogLevel, "log level")
	reconstructCmd.Flags().IntVar(&flags.ExhaustiveLimit, "exhaustive", 0, "check up to N alternative subsets of shares")
	reconstructCmd.Flags().StringVar(&flags.Prime, "prime", "", "interpolate modulo this prime instead of over the rationals")
	reconstructCmd.Flags().IntVar(&flags.Base, "base", defaults.Base, "base of the secrets printed by the text format")

	command.AddCommand(reconstructCmd)
}

// fileResult is the report of one file.
type fileResult struct {
	File   string              `json:"file" cbor:"file"`
	Result *reconstruct.Result `json:"result,omitempty" cbor:"result,omitempty"`
	Error  string              `json:"error,omitempty" cbor:"error,omitempty"`
	Kind   reconstruct.Kind    `json:"kind,omitempty" cbor:"kind,omitempty"`
	err    error
}

// run reconstructs every file and writes one report per file to out, in
// the order of files. It returns errFailed if any file failed.
func run(ctx context.Context, cfg config.Config, files []string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	modulus, err := cfg.Modulus()
	if err != nil {
		return err
	}
	logger := log.Logger.Level(level).With().Str("run", xid.New().String()).Logger()

	results := make([]fileResult, len(files))
	reqs := make([]*share.Request, 0, len(files))
	// positions maps an index of reqs to an index of files
	positions := make([]int, 0, len(files))
	for i, file := range files {
		results[i].File = file
		req, err := load(file)
		if err != nil {
			results[i].err = err
			continue
		}
		for _, d := range req.Diagnostics {
			logger.Warn().Str("file", file).Err(d).Msg("continuing despite diagnostic")
		}
		reqs = append(reqs, req)
		positions = append(positions, i)
	}

	opts := []reconstruct.Option{reconstruct.WithLogger(logger)}
	if cfg.ExhaustiveLimit > 0 {
		opts = append(opts, reconstruct.WithExhaustiveCheck(cfg.ExhaustiveLimit))
	}
	if modulus != nil {
		opts = append(opts, reconstruct.WithModulus(modulus))
	}
	logger.Debug().Int("files", len(files)).Int("jobs", cfg.Jobs).Msg("starting reconstruction")
	for _, o := range reconstruct.Batch(ctx, reqs, cfg.Jobs, opts...) {
		i := positions[o.Index]
		results[i].Result = o.Result
		results[i].err = o.Err
	}

	failed := false
	for i := range results {
		r := &results[i]
		if r.err != nil {
			failed = true
			r.Error = r.err.Error()
			r.Kind = reconstruct.KindOf(r.err)
			logger.Error().Str("file", r.File).Str("kind", string(r.Kind)).Err(r.err).Msg("reconstruction failed")
		}
		if err := write(out, cfg, r); err != nil {
			return err
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func load(file string) (*share.Request, error) {
	in, err := loader.LoadFile(file)
	if err != nil {
		return nil, err
	}
	return share.Extract(in)
}

func write(out io.Writer, cfg config.Config, r *fileResult) error {
	switch cfg.Format {
	case config.FormatJSON:
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case config.FormatCBOR:
		data, err := cbor.Marshal(r)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		if r.err != nil {
			_, err := fmt.Fprintf(out, "%s: error: %s\n", r.File, r.Error)
			return err
		}
		secret, err := arith.Encode(r.Result.Secret, cfg.Base)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s: %s\n", r.File, secret)
		return err
	}
}
