// Command kongc is the Kongruent front end CLI.
//
// Usage:
//
//	kongc [options] <input.kong>...
//
// Examples:
//
//	kongc shader.kong                  # Print the AST
//	kongc -tokens shader.kong          # Print the token stream
//	kongc -tokens -ast shader.kong     # Print both
//	kongc -o shader.ast shader.kong    # Write the AST to a file
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kongruent/kongruent"
	"github.com/kongruent/kongruent/kong"
)

const kongcVersion = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes kongc and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kongc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		output      = fs.String("o", "", "output file (default: stdout)")
		printTokens = fs.Bool("tokens", false, "print the token stream")
		printAST    = fs.Bool("ast", false, "print the AST (default when -tokens is not given)")
		allMembers  = fs.Bool("all-members", false, "keep every struct member")
		multiArgs   = fs.Bool("multi-args", false, "accept calls with several arguments")
		rightAssign = fs.Bool("right-assign", false, "parse assignment right-associatively")
		verbose     = fs.Bool("v", false, "log progress to stderr")
		version     = fs.Bool("version", false, "print version")
	)
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "kongc version %s\n", kongcVersion)
		return 0
	}

	inputs := fs.Args()
	if len(inputs) < 1 {
		fmt.Fprintln(stderr, "Error: no input file specified")
		usage(fs)
		return 1
	}
	if !*printTokens {
		*printAST = true
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := kongruent.DefaultOptions()
	opts.Parser = kong.ParserOptions{
		AllStructMembers:       *allMembers,
		MultiArgumentCalls:     *multiArgs,
		RightAssociativeAssign: *rightAssign,
	}

	var out strings.Builder
	failed := false
	for _, path := range inputs {
		if err := compileFile(&out, path, len(inputs) > 1, *printTokens, *printAST, opts, logger); err != nil {
			reportError(stderr, path, err)
			failed = true
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out.String()), 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return 1
		}
		logger.Debug("wrote output", "path", *output, "bytes", out.Len())
	} else if _, err := io.WriteString(stdout, out.String()); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	if failed {
		return 1
	}
	return 0
}

// compileFile reads one input and appends the requested renderings to out.
func compileFile(out *strings.Builder, path string, header, printTokens, printAST bool, opts kongruent.Options, logger *slog.Logger) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tokens, err := kongruent.Tokenize(string(source))
	if err != nil {
		return err
	}
	logger.Debug("tokenized", "path", path, "tokens", len(tokens))

	stmts, err := kongruent.ParseTokensWithOptions(tokens, opts)
	if err != nil {
		var srcErr *kong.SourceError
		if errors.As(err, &srcErr) {
			srcErr.Source = string(source)
		}
		return err
	}
	logger.Debug("parsed", "path", path, "statements", len(stmts))

	if header {
		fmt.Fprintf(out, "== %s\n", path)
	}
	if printTokens {
		out.WriteString(kong.FormatTokens(tokens))
	}
	if printAST {
		if err := kong.Fprint(out, stmts); err != nil {
			return err
		}
	}
	return nil
}

func reportError(w io.Writer, path string, err error) {
	var srcErr *kong.SourceError
	if errors.As(err, &srcErr) {
		msg := srcErr.FormatWithContext()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprintf(w, "%s: %s", path, msg)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", path, err)
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: kongc [options] <input.kong>...\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  kongc shader.kong               Print the AST\n")
	fmt.Fprintf(w, "  kongc -tokens shader.kong       Print the token stream\n")
	fmt.Fprintf(w, "  kongc -o shader.ast shader.kong Write the AST to a file\n")
}
