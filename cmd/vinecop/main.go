/*
vinecop fits, selects, simulates from, and scores regular vine copula
models over pseudo-observation data.

usage: vinecop [ -h | -v ] <command> [flags] <args>

commands:

	select    run structure-and-family selection on pseudo-observations
	fit       fit pair-copula families onto a fixed structure
	simulate  draw rows from a fitted vine
	score     report log-likelihood, AIC, and BIC for a fitted vine

flags (per subcommand):

	-n threads      worker count (default 1)
	-criterion c    family selection criterion for select and fit
	                [ aic | bic | mbic ] (default "aic")
	-rows n         number of rows for simulate (default 1000)
	-seed1, -seed2  QMC seed words for simulate

examples:

	vinecop select -n 4 data.csv > vine.json
	vinecop fit -n 4 data.csv structure.json > vine.json
	vinecop simulate -rows 4000 vine.json > draws.csv
	vinecop score data.csv vine.json
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"vinecop/internal/dissmann"
	"vinecop/vinecop"
)

const (
	Version    = "v0.1.0"
	ErrMessage = "the cascade did not converge :("
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "select":
		runSelect(os.Args[2:])
	case "fit":
		runFit(os.Args[2:])
	case "simulate":
		runSimulate(os.Args[2:])
	case "score":
		runScore(os.Args[2:])
	case "-h", "--help":
		usage()
	case "-v", "--version":
		fmt.Printf("vinecop version %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "%q is not a valid command: select, fit, simulate, or score required\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr,
		"usage: vinecop [ -h | -v ] <command> [flags] <args>\n\n",
		"commands:\n\n",
		"  select\t\trun structure-and-family selection on pseudo-observations\n",
		"  fit\t\t\tfit pair-copula families onto a fixed structure\n",
		"  simulate\t\tdraw rows from a fitted vine\n",
		"  score\t\t\treport log-likelihood, AIC, and BIC for a fitted vine\n",
	)
}

func runSelect(argv []string) {
	fs := flag.NewFlagSet("select", flag.ExitOnError)
	n := fs.Int("n", 1, "worker `threads`")
	criterion := fs.String("criterion", "aic", "family selection `criterion` [ aic | bic | mbic ]")
	fs.Parse(argv)
	if fs.NArg() != 1 {
		log.Fatalf("select requires exactly one positional argument: <data.csv>")
	}
	data, err := readCSVMatrix(fs.Arg(0))
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	ctrl := dissmann.DefaultControls()
	ctrl.Nprocs = *n
	ctrl.Bicop.Nprocs = *n
	if err := setCriterion(&ctrl.Bicop, *criterion); err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}

	log.Println("running select...")
	vc, err := vinecop.Select(context.Background(), data, ctrl)
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	writeVine(vc)
}

func runFit(argv []string) {
	fs := flag.NewFlagSet("fit", flag.ExitOnError)
	n := fs.Int("n", 1, "worker `threads`")
	criterion := fs.String("criterion", "aic", "family selection `criterion` [ aic | bic | mbic ]")
	fs.Parse(argv)
	if fs.NArg() != 2 {
		log.Fatalf("fit requires exactly two positional arguments: <data.csv> <structure.json>")
	}
	data, err := readCSVMatrix(fs.Arg(0))
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	structVine, err := readVine(fs.Arg(1))
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	ctrl := dissmann.DefaultControls()
	ctrl.Nprocs = *n
	ctrl.Bicop.Nprocs = *n
	if err := setCriterion(&ctrl.Bicop, *criterion); err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}

	log.Println("running fit...")
	vc, err := vinecop.SelectFamilies(context.Background(), data, structVine.Matrix(), ctrl)
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	writeVine(vc)
}

func runSimulate(argv []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	n := fs.Int("n", 1, "worker `threads`")
	rows := fs.Int("rows", 1000, "number of rows to simulate")
	seed1 := fs.Uint64("seed1", 1, "first QMC seed word")
	seed2 := fs.Uint64("seed2", 2, "second QMC seed word")
	fs.Parse(argv)
	if fs.NArg() != 1 {
		log.Fatalf("simulate requires exactly one positional argument: <vine.json>")
	}
	vc, err := readVine(fs.Arg(0))
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}

	log.Printf("simulating %d rows...", *rows)
	src := qmcSource(*seed1, *seed2)
	draws, err := vc.Simulate(context.Background(), *rows, src, *n)
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	if err := writeCSVMatrix(os.Stdout, draws); err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
}

func runScore(argv []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	n := fs.Int("n", 1, "worker `threads`")
	fs.Parse(argv)
	if fs.NArg() != 2 {
		log.Fatalf("score requires exactly two positional arguments: <data.csv> <vine.json>")
	}
	data, err := readCSVMatrix(fs.Arg(0))
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	vc, err := readVine(fs.Arg(1))
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}

	log.Println("running score...")
	if err := vc.Fit(context.Background(), data, *n); err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	ll, err := vc.LogLik()
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	aic, err := vc.AIC()
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	bic, err := vc.BIC()
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	fmt.Printf("nobs,loglik,aic,bic\n%d,%g,%g,%g\n", vc.Nobs(), ll, aic, bic)
}
