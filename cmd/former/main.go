// SPDX-License-Identifier: MIT

// Command former loads a board, lists its choices, applies selections and
// optionally searches for a clearing sequence.
//
//	former -board puzzle.txt
//	former -board puzzle.txt -select "8,0;7,3"
//	former -board puzzle.txt -solve -timeout 30s -v
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/mhusbyn/former-solver/grid"
	"github.com/mhusbyn/former-solver/session"
	"github.com/mhusbyn/former-solver/solver"
)

var log = logrus.New()

type options struct {
	board     string
	selects   string
	solve     bool
	greedy    bool
	maxStates int
	maxDepth  int
	timeout   time.Duration
	collapse  bool
	plain     bool
	strict    bool
}

func main() {
	var o options
	flag.StringVar(&o.board, "board", "", "Path to a board file (\"-\" reads stdin)")
	flag.StringVar(&o.selects, "select", "", "Selections to apply, as \"row,col;row,col\"")
	flag.BoolVar(&o.solve, "solve", false, "Search for a shortest clearing sequence")
	flag.BoolVar(&o.greedy, "greedy", false, "Print the largest-cluster-first sequence")
	flag.IntVar(&o.maxStates, "max-states", solver.DefaultMaxStates, "Solver expansion budget")
	flag.IntVar(&o.maxDepth, "max-depth", 0, "Longest sequence the solver considers (0 = no limit)")
	flag.DurationVar(&o.timeout, "timeout", time.Minute, "Solver time limit")
	flag.BoolVar(&o.collapse, "collapse", false, "Close up empty columns after every move")
	flag.BoolVar(&o.plain, "plain", false, "Print the board without colours")
	flag.BoolVar(&o.strict, "strict", false, fmt.Sprintf("Require a %dx%d board", grid.DefaultHeight, grid.DefaultWidth))
	verbose := flag.Bool("v", false, "Debug logging")
	prof := flag.String("profile", "", "Write a \"cpu\" or \"mem\" profile to the working directory")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		log.WithField("profile", *prof).Fatal("unknown profile kind")
	}

	if o.board == "" && flag.NArg() > 0 {
		o.board = flag.Arg(0)
	}
	if o.board == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), o, os.Stdout, log); err != nil {
		log.WithError(err).WithField("board", o.board).Fatal("former failed")
	}
}

// run executes one CLI invocation and writes its report to out.
func run(ctx context.Context, o options, out io.Writer, log logrus.FieldLogger) error {
	g, err := loadBoard(o.board, o.strict)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"height": g.Height(),
		"width":  g.Width(),
		"tiles":  len(g.Occupied()),
	}).Debug("board loaded")

	var sessOpts []session.Option
	if o.collapse {
		sessOpts = append(sessOpts, session.WithColumnCollapse())
	}
	s, err := session.FromGrid(g, sessOpts...)
	if err != nil {
		return err
	}

	cells, err := parseSelections(o.selects)
	if err != nil {
		return err
	}
	for _, rc := range cells {
		p, err := pointAt(s.Grid(), rc)
		if err != nil {
			return err
		}
		if err := s.Select(p); err != nil {
			return err
		}
		log.WithField("selected", p.String()).Debug("applied selection")
	}

	r := newRenderer(o.plain)
	fmt.Fprintln(out, r.board(s.Grid()))
	if s.IsSolved() {
		fmt.Fprintf(out, "solved in %d moves\n", len(s.Moves()))
		return nil
	}
	fmt.Fprintf(out, "choices: %s\n", formatPoints(s.Choices()))

	var solveOpts []solver.Option
	solveOpts = append(solveOpts, solver.WithLogger(log))
	if o.collapse {
		solveOpts = append(solveOpts, solver.WithColumnCollapse())
	}

	if o.greedy {
		sol, err := solver.Greedy(s.Grid(), solveOpts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "greedy (%d moves): %s\n", len(sol.Moves), formatPoints(sol.Moves))
	}

	if o.solve {
		if o.maxStates > 0 {
			solveOpts = append(solveOpts, solver.WithMaxStates(o.maxStates))
		}
		if o.maxDepth > 0 {
			solveOpts = append(solveOpts, solver.WithMaxDepth(o.maxDepth))
		}
		if o.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, o.timeout)
			defer cancel()
		}

		start := time.Now()
		sol, err := solver.Solve(ctx, s.Grid(), solveOpts...)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"expanded": sol.Expanded,
			"elapsed":  time.Since(start).Round(time.Millisecond),
		}).Info("search finished")
		fmt.Fprintf(out, "solution (%d moves): %s\n", len(sol.Moves), formatPoints(sol.Moves))
	}
	return nil
}

// loadBoard reads and parses a board file; "-" is stdin.
func loadBoard(path string, strict bool) (*grid.Grid, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}

	var opts []grid.Option
	if strict {
		opts = append(opts, grid.WithDefaultSize())
	}
	return grid.Parse(string(data), opts...)
}
