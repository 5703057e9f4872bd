package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-auth-param-map/internal/config"
	apperrors "github.com/jrsteele09/go-auth-param-map/internal/errors"
	"github.com/jrsteele09/go-auth-param-map/internal/logging"
	"github.com/jrsteele09/go-auth-param-map/parammap"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type cliDeps struct {
	cfg      config.Config
	mapper   parammap.Mapper
	newRunID func() string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func defaultDeps() cliDeps {
	return cliDeps{
		cfg:      config.New(),
		mapper:   parammap.DefaultRule(),
		newRunID: uuid.NewString,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

type mapOptions struct {
	username     string
	password     string
	fromStdin    bool
	redact       bool
	failOnReject bool
}

// stdinCredentials keeps pointers so a missing field can be told apart from an empty one.
type stdinCredentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func newRootCmd(deps cliDeps) *cobra.Command {
	logger := zerolog.Nop()

	rootCmd := &cobra.Command{
		Use:   "parammap",
		Short: "Evaluate the authentication parameter map for a pair of credentials",
		Long: `Runs the gateway's authentication parameter mapping rule and prints the
resulting identity service request, or false when the rule rejects the
credentials. Nothing is sent to the identity service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Init(deps.cfg, deps.stderr); err != nil {
				return err
			}
			logger = log.Logger.With().Str("run_id", deps.newRunID()).Logger()
			return nil
		},
	}
	rootCmd.SetIn(deps.stdin)
	rootCmd.SetOut(deps.stdout)
	rootCmd.SetErr(deps.stderr)

	var opts mapOptions
	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "Map credentials to an identity service request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, opts, deps, logger)
		},
	}
	mapCmd.Flags().StringVarP(&opts.username, "username", "u", "", "username to map")
	mapCmd.Flags().StringVarP(&opts.password, "password", "p", "", "password to map")
	mapCmd.Flags().BoolVar(&opts.fromStdin, "stdin", false, `read {"username": ..., "password": ...} from stdin`)
	mapCmd.Flags().BoolVar(&opts.redact, "redact", false, "mask the password in the printed request")
	mapCmd.Flags().BoolVar(&opts.failOnReject, "fail-on-reject", false, "exit with an error when the credentials are rejected")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			displayAppname(deps.stdout, deps.cfg.GetAppName())
			_, err := fmt.Fprintf(deps.stdout, "version %s (%s)\n", deps.cfg.GetVersion(), deps.cfg.GetEnv())
			return err
		},
	}

	rootCmd.AddCommand(mapCmd, versionCmd)
	return rootCmd
}

func runMap(cmd *cobra.Command, opts mapOptions, deps cliDeps, logger zerolog.Logger) error {
	creds := parammap.Credentials{Username: opts.username, Password: opts.password}

	if opts.fromStdin {
		if cmd.Flags().Changed("username") || cmd.Flags().Changed("password") {
			return apperrors.Wrapf(apperrors.ErrInvalidInput, "--stdin cannot be combined with --username or --password")
		}
		var err error
		if creds, err = readCredentials(deps.stdin); err != nil {
			return err
		}
	}

	result := deps.mapper.Map(creds.Username, creds.Password)

	if d, ok := result.Redacted().Descriptor(); ok {
		body, err := d.Body.Encode()
		if err != nil {
			return apperrors.Wrapf(err, "encoding request body")
		}
		logger.Info().Str("username", creds.Username).Str("url", d.URL).Msg("credentials mapped")
		logger.Debug().RawJSON("request", body).Msg("authentication request")
	} else {
		logger.Info().Str("username", creds.Username).Msg("credentials rejected")
	}

	printed := result
	if opts.redact {
		printed = result.Redacted()
	}
	if err := writeResult(deps.stdout, printed); err != nil {
		return err
	}

	if opts.failOnReject && result.IsRejected() {
		return apperrors.ErrRejected
	}
	return nil
}

// execute runs the CLI and reports a failure once, through the configured global logger.
func execute(deps cliDeps, args []string) error {
	cmd := newRootCmd(deps)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("parammap failed")
	}
	return err
}

func readCredentials(r io.Reader) (parammap.Credentials, error) {
	var in stdinCredentials
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return parammap.Credentials{}, apperrors.Wrapf(apperrors.ErrInvalidInput, "decoding stdin: %s", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return parammap.Credentials{}, apperrors.Wrapf(apperrors.ErrInvalidInput, "trailing data on stdin")
	}
	if in.Username == nil {
		return parammap.Credentials{}, apperrors.Wrapf(apperrors.ErrMissingField, "username")
	}
	if in.Password == nil {
		return parammap.Credentials{}, apperrors.Wrapf(apperrors.ErrMissingField, "password")
	}
	return parammap.Credentials{Username: *in.Username, Password: *in.Password}, nil
}

func writeResult(w io.Writer, result parammap.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrWriteResult, "%s", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return apperrors.Wrapf(apperrors.ErrWriteResult, "%s", err)
	}
	return nil
}

func displayAppname(w io.Writer, appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", false)
	fmt.Fprintln(w, myFigure.String())
}
