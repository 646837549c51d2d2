package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/ConradIrwin/json5-go"
)

// command checks JSON5 documents and optionally prints them as JSON.
type command struct {
	files      []string
	maxDepth   int
	doubleOnly bool
	indent     int
	check      bool
	logLevel   string
}

func (cmd *command) register(app *kingpin.Application) {
	app.Flag("max-depth", "Maximum nesting of arrays and objects (0 for no limit).").
		Default("1000").IntVar(&cmd.maxDepth)
	app.Flag("double-quotes-only", "Reject 'single quoted' strings.").BoolVar(&cmd.doubleOnly)
	app.Flag("indent", "Spaces per indentation level in the JSON output (0 for compact).").
		Default("2").IntVar(&cmd.indent)
	app.Flag("check", "Only check the documents, print nothing on success.").BoolVar(&cmd.check)
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").EnumVar(&cmd.logLevel, "debug", "info", "warn", "error")
	app.Arg("files", "JSON5 files to read (standard input if none).").ExistingFilesVar(&cmd.files)
}

func (cmd *command) options() []json5.Option {
	opts := []json5.Option{json5.WithMaxDepth(cmd.maxDepth)}
	if cmd.doubleOnly {
		opts = append(opts, json5.WithQuotes(json5.QuoteDouble))
	}
	return opts
}

// run processes every input and returns the number that failed.
func (cmd *command) run(logger log.Logger, stdin io.Reader, stdout io.Writer) int {
	if len(cmd.files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			level.Error(logger).Log("msg", "failed to read stdin", "err", err)
			return 1
		}
		if err := cmd.process(logger, "-", data, stdout); err != nil {
			level.Error(logger).Log("msg", "invalid document", "file", "-", "err", err)
			return 1
		}
		return 0
	}

	failures := 0
	for _, name := range cmd.files {
		data, err := os.ReadFile(name)
		if err == nil {
			err = cmd.process(logger, name, data, stdout)
		} else {
			err = errors.Wrap(err, "reading file")
		}
		if err != nil {
			level.Error(logger).Log("msg", "invalid document", "file", name, "err", err)
			failures++
		}
	}
	return failures
}

func (cmd *command) process(logger log.Logger, name string, data []byte, stdout io.Writer) error {
	doc, err := json5.ParseBytes(data, cmd.options()...)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", name)
	}
	level.Debug(logger).Log("msg", "parsed document", "file", name, "kind", doc.Kind(), "len", doc.Len())

	if cmd.check {
		return nil
	}
	return errors.Wrapf(json5.WriteJSON(stdout, doc, cmd.indent), "converting %s", name)
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	return level.NewFilter(logger, allow)
}

func main() {
	cmd := &command{}
	app := kingpin.New("json5", "Check JSON5 documents and convert them to JSON.")
	cmd.register(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	os.Exit(cmd.run(newLogger(cmd.logLevel), os.Stdin, os.Stdout))
}
