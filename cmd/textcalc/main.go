package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/textcalc"
)

const (
	hint   = "Hint: press Ctrl-C to break out of program execution. \n"
	prompt = "Please enter your formula: "
)

func main() {
	log.SetFlags(0)
	var (
		inname       string
		quiet, trace bool
		verbose      bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.BoolVar(&quiet, "q", false, "don't print the hint and prompts")
	flag.BoolVar(&trace, "trace", false, "print each substitution before the result")
	flag.BoolVar(&verbose, "v", false, "log reduction steps to stderr")
	flag.Parse()

	var opts []textcalc.Option
	if verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, textcalc.WithLogger(slog.New(h)))
	}
	s := session{out: os.Stdout, trace: trace, opts: opts}

	if flag.NArg() > 0 && inname == "" {
		for _, arg := range flag.Args() {
			s.eval(arg)
		}
		return
	}

	in, interactive, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	s.prompt = interactive && !quiet
	err = s.loop(in)
	in.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// session evaluates lines one at a time and writes a report for each.
type session struct {
	out    io.Writer
	prompt bool
	trace  bool
	opts   []textcalc.Option
}

// loop reads expressions from in until EOF. A failed evaluation is reported
// and does not stop the loop. Lines may be any length.
func (s *session) loop(in io.Reader) error {
	r := bufio.NewReader(in)
	if s.prompt {
		fmt.Fprint(s.out, hint)
	}
	for {
		if s.prompt {
			fmt.Fprint(s.out, prompt)
		}
		line, err := r.ReadString('\n')
		if line != "" {
			s.eval(strings.TrimSuffix(line, "\n"))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			if s.prompt {
				fmt.Fprintln(s.out)
			}
			return nil
		}
	}
}

// eval evaluates one expression with a fresh Expr and prints the report.
func (s *session) eval(src string) {
	e := textcalc.New(src, s.opts...)
	r, err := e.Reduce()
	if s.trace {
		for _, st := range e.Steps() {
			fmt.Fprintf(s.out, "%s => %s\n", st.Unit, st.Value)
		}
	}
	fmt.Fprintln(s.out, textcalc.Report(r, err))
}

// infile opens the input and reports whether it is an interactive terminal.
func infile(inname string) (io.ReadCloser, bool, error) {
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	}
	return os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), nil
}
