package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"cmsearch/internal/config"
	"cmsearch/internal/fasta"
	"cmsearch/internal/model"
	"cmsearch/internal/output"
	"cmsearch/internal/pipeline"
	"cmsearch/internal/runutil"
	"cmsearch/internal/version"
)

// usageError marks errors caused by bad invocation rather than a failed run.
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }

func usagef(format string, a ...any) error {
	return usageError{err: fmt.Errorf(format, a...)}
}

// Run executes the CLI and returns the process exit code: 0 on success,
// 1 on runtime errors, 2 on usage errors.
func Run(argv []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.Run(append([]string{app.Name}, argv...))
	if err == nil {
		return 0
	}
	_, _ = fmt.Fprintln(stderr, "error:", err)
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "cmsearch",
		Usage:     "search a sequence family model against a sequence database",
		Version:   version.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: func(c *cli.Context) error {
			return setupLogger(c, stderr)
		},
		ExitErrHandler: func(*cli.Context, error) {}, // codes are handled in Run
		Commands: []*cli.Command{
			searchCommand(),
			validateCommand(),
			infoCommand(),
		},
	}
}

func setupLogger(c *cli.Context, stderr io.Writer) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return usagef("invalid log level %q", c.String("log-level"))
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search a model against FASTA sequence file(s)",
		ArgsUsage: "<model-file> <seq-file>...",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "evalue",
				Aliases: []string{"E"},
				Usage:   "report hits with E-value at most this",
				Value:   10.0,
			},
			&cli.Float64Flag{
				Name:    "score",
				Aliases: []string{"T"},
				Usage:   "report hits with score at least this",
			},
			&cli.IntFlag{
				Name:  "threads",
				Usage: "number of worker threads (0 = all CPUs)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: text | tsv | json | jsonl",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write results to file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "no-header",
				Usage: "suppress header line in tsv output",
			},
		},
		Action: searchAction,
	}
}

func searchAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return usagef("search needs a model file and at least one sequence file")
	}
	format := c.String("format")
	switch format {
	case "text", "tsv", "json", "jsonl":
	default:
		return usagef("invalid --format %q", format)
	}

	m, err := loadModel(c.Args().Get(0))
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.EValue = c.Float64("evalue")
	if c.IsSet("score") {
		v := c.Float64("score")
		cfg.Score = &v
	}
	if t := c.Int("threads"); t > 0 {
		cfg.Threads = t
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err: err}
	}

	seqFiles := c.Args().Slice()[1:]
	var seqs []fasta.Record
	for _, path := range seqFiles {
		recs, err := fasta.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read sequences: %w", err)
		}
		seqs = append(seqs, recs...)
	}
	slog.Info("loaded sequence database", "sequences", len(seqs), "files", len(seqFiles))

	p, err := pipeline.New(m, cfg)
	if err != nil {
		return err
	}
	timer := runutil.StartTimer("search", slog.Default())
	hits, err := p.Search(seqs)
	timer.Stop()
	if err != nil {
		return err
	}

	w := c.App.Writer
	if path := c.String("output"); path != "" {
		fh, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer fh.Close()
		w = fh
	}

	switch format {
	case "tsv":
		return output.WriteTSV(w, hits, !c.Bool("no-header"))
	case "json":
		return output.WriteJSON(w, hits)
	case "jsonl":
		return output.WriteJSONL(w, hits)
	default:
		return output.WriteText(w, output.Report{
			Query:  c.Args().Get(0),
			Target: strings.Join(seqFiles, ","),
		}, hits)
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "load a model file and check its invariants",
		ArgsUsage: "<model-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return usagef("validate needs exactly one model file")
			}
			m, err := loadModel(c.Args().Get(0))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.App.Writer, "model ok: name=%s length=%d alphabet=%s\n",
				m.Name(), m.Length(), m.Alphabet())
			return err
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "print model metadata",
		ArgsUsage: "<model-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return usagef("info needs exactly one model file")
			}
			m, err := loadModel(c.Args().Get(0))
			if err != nil {
				return err
			}
			bg := m.Background()
			_, err = fmt.Fprintf(c.App.Writer,
				"Name:        %s\nAccession:   %s\nDescription: %s\nAlphabet:    %s\nLength:      %d\nConsensus:   %d symbols\nBackground:  A=%.3f C=%.3f G=%.3f U=%.3f\n",
				m.Name(), orDash(m.Accession()), orDash(m.Description()), m.Alphabet(),
				m.Length(), len(m.Consensus()), bg[0], bg[1], bg[2], bg[3])
			return err
		},
	}
}

func loadModel(path string) (*model.Model, error) {
	m, err := model.Load(path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
