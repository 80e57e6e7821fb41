package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"

	"vinecop/bicop"
	"vinecop/internal/ntree"
	"vinecop/internal/qmc"
	"vinecop/vinecop"
)

// readCSVMatrix reads a headerless n x d matrix of pseudo-observations
// from a CSV file, one row per observation.
func readCSVMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	data := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %d: %w", path, i, j, err)
			}
			row[j] = v
		}
		data = append(data, row)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: empty data file", path)
	}
	return data, nil
}

// writeCSVMatrix writes an n x d matrix to w in CSV, one row per
// observation, losslessly round-trippable via strconv.ParseFloat.
func writeCSVMatrix(w io.Writer, data [][]float64) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	records := make([][]string, len(data))
	for i, row := range data {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		records[i] = rec
	}
	return writer.WriteAll(records)
}

// readVine loads a fitted vine from a named-node JSON file.
func readVine(path string) (*vinecop.Vinecop, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	node, err := ntree.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	vc, err := vinecop.FromNamedNode(node)
	if err != nil {
		return nil, fmt.Errorf("error decoding vine from %s: %w", path, err)
	}
	return vc, nil
}

// writeVine renders a fitted vine as named-node JSON to stdout.
func writeVine(vc *vinecop.Vinecop) {
	raw, err := ntree.Marshal(vc.ToNamedNode())
	if err != nil {
		log.Fatalf("%s %s\n", ErrMessage, err)
	}
	os.Stdout.Write(raw)
	fmt.Println()
}

// setCriterion maps a command-line criterion name onto the family
// selection's scoring rule.
func setCriterion(ctrl *bicop.ControlsBicop, name string) error {
	switch name {
	case "aic":
		ctrl.SelectionCriterion = bicop.CriterionAIC
	case "bic":
		ctrl.SelectionCriterion = bicop.CriterionBIC
	case "mbic":
		ctrl.SelectionCriterion = bicop.CriterionMBIC
	default:
		return fmt.Errorf("%q is not a valid criterion: aic, bic, or mbic required", name)
	}
	return nil
}

// qmcSource seeds a quasi-random source from two command-line words; a
// zero pair draws entropy from the runtime instead of a fixed seed.
func qmcSource(seed1, seed2 uint64) *qmc.Source {
	if seed1 == 0 && seed2 == 0 {
		return qmc.NewSource([2]uint64{rand.Uint64(), rand.Uint64()})
	}
	return qmc.NewSource([2]uint64{seed1, seed2})
}
