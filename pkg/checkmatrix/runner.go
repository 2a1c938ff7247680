package checkmatrix

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner invokes the check tool once per combination of a matrix.
type Runner struct {
	// Tool is the command prefix the combination's flags are appended to.
	// Defaults to DefaultTool.
	Tool string

	// DryRun only prints the commands instead of executing them.
	DryRun bool

	// Stdout and Stderr default to the process streams. Status lines go to
	// Stdout; the tool's own output is forwarded unchanged.
	Stdout io.Writer
	Stderr io.Writer

	// Exec overrides the handler that spawns the external command. Only
	// used by tests; leave nil for the real thing.
	Exec interp.ExecHandlerFunc
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

// RunMatrix checks every combination in list order. A non-zero exit from
// the tool is logged and ignored; the returned error is non-nil only if a
// command couldn't be invoked at all, in which case the remaining
// combinations are skipped.
func (r *Runner) RunMatrix(ctx context.Context, matrix Matrix) error {
	tool := r.Tool
	if tool == "" {
		tool = DefaultTool
	}

	parser := syntax.NewParser()
	for _, combo := range matrix {
		if err := ctx.Err(); err != nil {
			return err
		}

		colorstring.Fprintf(r.stdout(), "[blue][bold]==>[reset] checking %s\n", combo)

		cmdLine := combo.CommandLine(tool)
		log(ctx).Info().
			Str("target", combo.Target).
			Str("features", combo.Features).
			Bool("command", true).
			Msg(cmdLine)

		if r.DryRun {
			continue
		}

		err := r.invoke(ctx, parser, cmdLine)
		if status, ok := interp.IsExitStatus(err); ok {
			log(ctx).Warn().
				Str("target", combo.Target).
				Msgf("check exited with status %d", status)
			continue
		}
		if err != nil {
			return eris.Wrapf(err, "failed to invoke %q", cmdLine)
		}
	}

	return nil
}

func (r *Runner) invoke(ctx context.Context, parser *syntax.Parser, cmdLine string) error {
	file, err := parser.Parse(strings.NewReader(cmdLine), "check")
	if err != nil {
		return eris.Wrapf(err, "failed to parse command %s", cmdLine)
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, r.stdout(), r.stderr()),
	}
	if r.Exec != nil {
		opts = append(opts, interp.ExecHandler(r.Exec))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return eris.Wrap(err, "failed to initialize the shell interpreter")
	}

	return runner.Run(ctx, file)
}
