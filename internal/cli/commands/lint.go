package commands

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/veclint/veclint/internal/cli/output"
	"github.com/veclint/veclint/internal/discovery"
	"github.com/veclint/veclint/internal/watch"
	"github.com/veclint/veclint/pkg/lint"
	_ "github.com/veclint/veclint/pkg/lint/rules" // register built-in rules
	"github.com/veclint/veclint/pkg/svg"
	"golang.org/x/sync/errgroup"
)

// ErrLintFailed signals that linting completed and found errors. The
// entry point maps it to exit code 1, distinct from usage/IO failures.
var ErrLintFailed = errors.New("lint errors found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths  []string // Files, directories, or glob patterns
	Format string   // Output format override: text, json
	Watch  bool     // Re-lint on file changes
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint SVG files against the configured rules",
		Long: `Validate SVG files against the rules configured in .veclint.yaml.

Every configured rule instance runs against each file; the file's verdict
is error if any rule reported an error or failed to evaluate, warning if
only warnings were reported, and success otherwise.`,
		Example: `  # Lint everything under the current directory
  veclint lint

  # Lint specific files and globs
  veclint lint logo.svg "icons/**/*.svg"

  # Machine-readable output
  veclint lint --format json

  # Re-lint on change
  veclint lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint when files change")

	return cmd
}

// fileResult holds the outcome of linting a single file.
type fileResult struct {
	Path        string
	State       lint.State
	Diagnostics []lint.Diagnostic
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	rt := RuntimeFrom(cmd)
	r := rt.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := discovery.Discover(paths, rt.Cfg.Ignore)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no SVG files found")
	}

	once := func() error {
		results, err := lintFiles(rt, files)
		if err != nil {
			return err
		}
		return renderResults(r, results)
	}

	if !opts.Watch {
		return once()
	}

	if err := once(); err != nil && !errors.Is(err, ErrLintFailed) {
		return err
	}
	rt.Logger.Info("watching for changes", "files", len(files))
	return watch.Files(cmd.Context(), files, rt.Logger, func() {
		if err := once(); err != nil && !errors.Is(err, ErrLintFailed) {
			r.Errorf("lint failed: %v\n", err)
		}
	})
}

// lintFiles lints every file, bounded by the CPU count. Results come back
// in input order regardless of completion order.
func lintFiles(rt *Runtime, files []string) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			res, err := lintFile(rt, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func lintFile(rt *Runtime, path string) (fileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := svg.Parse(src)
	if err != nil {
		return fileResult{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	p := lint.NewProcess(doc, lint.Instances(rt.Cfg.Rules), lint.WithLogger(rt.Logger))
	state := p.Wait()

	return fileResult{
		Path:        path,
		State:       state,
		Diagnostics: p.Diagnostics(),
	}, nil
}

// =============================================================================
// Rendering
// =============================================================================

// lintSummary aggregates counts across all linted files.
type lintSummary struct {
	Files      int `json:"files"`
	Failed     int `json:"failed"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
	Exceptions int `json:"exceptions"`
}

type jsonDiagnostic struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type jsonFileResult struct {
	Path        string           `json:"path"`
	State       string           `json:"state"`
	Diagnostics []jsonDiagnostic `json:"diagnostics,omitempty"`
}

type jsonOutput struct {
	Summary lintSummary      `json:"summary"`
	Files   []jsonFileResult `json:"files"`
}

func summarize(results []fileResult) lintSummary {
	s := lintSummary{Files: len(results)}
	for _, res := range results {
		if res.State == lint.StateError {
			s.Failed++
		}
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case lint.SeverityError:
				s.Errors++
			case lint.SeverityWarning:
				s.Warnings++
			case lint.SeverityException:
				s.Exceptions++
			}
		}
	}
	return s
}

func renderResults(r *output.Renderer, results []fileResult) error {
	summary := summarize(results)

	if r.EffectiveMode() == output.ModeJSON {
		out := jsonOutput{Summary: summary}
		for _, res := range results {
			jf := jsonFileResult{Path: res.Path, State: res.State.String()}
			for _, d := range res.Diagnostics {
				jd := jsonDiagnostic{
					Rule:     d.RuleID,
					Severity: d.Severity.String(),
					Message:  d.Message,
				}
				if d.Element != nil {
					pos := d.Element.Position()
					jd.Line, jd.Column = pos.Line, pos.Column
				}
				jf.Diagnostics = append(jf.Diagnostics, jd)
			}
			out.Files = append(out.Files, jf)
		}
		if err := r.JSON(out); err != nil {
			return err
		}
		if summary.Failed > 0 {
			return ErrLintFailed
		}
		return nil
	}

	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		r.Println(r.Styles().FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			loc := "-"
			if d.Element != nil && d.Element.Position().IsValid() {
				loc = d.Element.Position().String()
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-6s", loc)),
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	if summary.Errors == 0 && summary.Warnings == 0 && summary.Exceptions == 0 {
		r.Success(fmt.Sprintf("%d files linted, no issues found", summary.Files))
		return nil
	}

	r.Printf("Summary: %d errors, %d warnings, %d exceptions in %d files (%d failed)\n",
		summary.Errors, summary.Warnings, summary.Exceptions, summary.Files, summary.Failed)

	if summary.Failed > 0 {
		return ErrLintFailed
	}
	return nil
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error    ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning  ")
	case lint.SeverityException:
		return r.Styles().Error.Render("exception")
	default:
		return r.Styles().Muted.Render("unknown  ")
	}
}
