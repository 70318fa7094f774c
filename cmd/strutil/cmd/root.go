package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/strutil/foundation/core/config"
	mdwerror "github.com/msto63/strutil/foundation/core/error"
	mdwlog "github.com/msto63/strutil/foundation/core/log"
	"github.com/msto63/strutil/foundation/utils/parsex"
	"github.com/msto63/strutil/foundation/utils/urlx"
)

// errNoMatch makes `has` exit with status 1 without printing an error
var errNoMatch = errors.New("no match")

// app holds the state shared by all commands of one invocation
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgFile string
	verbose bool

	cfg           *config.Config
	logger        *mdwlog.Logger
	correlationID string
}

// Execute runs the CLI on the process streams and returns the exit code
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		logger: mdwlog.NewWithConfig(mdwlog.Config{
			Level:  mdwlog.DefaultLevel(),
			Format: mdwlog.FormatText,
			Output: errOut,
			Name:   "strutil",
		}),
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	}

	a.logger.LogError(err)
	fmt.Fprintf(errOut, "error: %s\n", errorText(err))
	return mdwerror.ExitCode(err)
}

// errorText drops the sentinel suffix of library errors
func errorText(err error) string {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) && (errors.Is(err, urlx.ErrInvalidEscape) || errors.Is(err, parsex.ErrCannotParse)) {
		return mdwErr.Message()
	}
	return err.Error()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "strutil",
		Short: "ASCII string utilities, percent-encoding and typed parsing",
		Long: `strutil exposes the stringx, urlx and parsex libraries on the command line.

Every command reads its text from the arguments, or from stdin when no
argument is given. A single trailing newline on stdin is dropped.

Configuration is read from --config or discovered as strutil.toml,
config.toml (or .yaml/.yml) in ., the user config directory and
/etc/strutil. Every key can be overridden with STRUTIL_<KEY>, for
example STRUTIL_ENCODE_POLICY=uri.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		lowerCmd(a), upperCmd(a), titleCmd(a), caseCmd(a),
		trimCmd(a), padCmd(a),
		splitCmd(a), linesCmd(a), joinCmd(a),
		replaceCmd(a), hasCmd(a),
		encodeCmd(a), decodeCmd(a),
		parseCmd(a), unixpathCmd(a),
		configCmd(a), versionCmd(a), playgroundCmd(a),
	)
	return root
}

// validationRules are the checks applied to every loaded configuration
func validationRules() config.ValidationRules {
	policies := make([]string, 0, 4)
	for _, p := range urlx.Policies() {
		policies = append(policies, p.String())
	}
	return config.ValidationRules{
		config.KeyLogLevel:       {OneOf: []string{"trace", "debug", "info", "warn", "error", "off", "none", "quiet"}},
		config.KeyLogFormat:      {OneOf: []string{"json", "text", "console", "logfmt"}},
		config.KeyEncodePolicy:   {OneOf: append(policies, "url")},
		config.KeyPadChar:        {MinLen: 1, MaxLen: 1},
		config.KeySplitDelimiter: {Required: true},
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadWithOptions(a.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.EnvPrefix,
			Defaults:  config.Defaults(),
		})
	} else {
		a.cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	if err := a.cfg.Validate(validationRules()).Err(); err != nil {
		return err
	}

	level, err := mdwlog.ParseLevel(a.cfg.GetString(config.KeyLogLevel))
	if err != nil {
		return err
	}
	if a.verbose {
		level = mdwlog.LevelDebug
	}
	format, _ := mdwlog.ParseFormat(a.cfg.GetString(config.KeyLogFormat))

	a.correlationID = uuid.NewString()
	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: a.errOut,
		Name:   "strutil",
	}).WithCorrelationID(a.correlationID)

	a.logger.Debug("command started", mdwlog.Fields{
		"command": cmd.Name(),
		"config":  a.cfg.FilePath(),
	})
	return nil
}
