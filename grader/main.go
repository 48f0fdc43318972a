package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.solver4all.com/azaryc2s/coeval"
	"golang.org/x/sync/errgroup"
)

var solFiles coeval.ArrayStringFlags

// grader batch-evaluates many submissions against one instance and prints a
// CSV summary line per submission. Every submission is an independent
// evaluation with its own models, so they are graded in parallel.
func main() {
	kind := flag.String("kind", coeval.TSP, fmt.Sprintf("Problem kind, one of %v", coeval.Kinds()))
	instF := flag.String("instance", "instance.txt", "Path to the problem instance")
	outDir := flag.String("out", "", "Directory for per-submission report JSON files (none written by default)")
	workers := flag.Int("workers", 4, "Number of submissions graded in parallel")
	flag.Var(&solFiles, "sol", "Solution file to grade (can be repeated, in addition to directories)")
	flag.Parse()

	files := append([]string{}, solFiles...)
	for _, dirName := range flag.Args() {
		dir, err := os.ReadDir(dirName)
		if err != nil {
			log.Printf("At %s: %s\n", dirName, err.Error())
			return
		}
		for _, f := range dir {
			if strings.HasSuffix(f.Name(), ".sol") {
				files = append(files, filepath.Join(dirName, f.Name()))
			}
		}
	}
	if len(files) == 0 {
		log.Printf("No solution files passed!")
		return
	}
	sort.Strings(files)

	reports := make([]coeval.Report, len(files))
	var g errgroup.Group
	g.SetLimit(*workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			reports[i] = coeval.EvaluateFiles(*kind, *instF, f)
			if *outDir != "" {
				name := strings.TrimSuffix(filepath.Base(f), ".sol") + ".json"
				if err := coeval.WriteReport(reports[i], filepath.Join(*outDir, name)); err != nil {
					log.Printf("At %s: %s\n", f, err.Error())
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Println(err)
	}

	fmt.Printf("Name,Status,Objective,Time,Comment\n")
	for i, f := range files {
		rep := reports[i]
		fmt.Printf("%s,%s,%g,%s,%s\n", filepath.Base(f), rep.Status, rep.Objective, rep.Time, strings.Join(rep.Messages, " | "))
	}
}
