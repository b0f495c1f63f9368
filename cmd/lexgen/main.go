// Command lexgen is a thin driver over the compilation pipeline in
// package lexgen, per spec.md section 4.5: it parses a fixed, ordered
// regex list from its command-line arguments, builds the DFA, and
// either prints it as a Graphviz graph or classifies lines read from
// stdin against it. Not part of the compilation pipeline itself — out
// of spec.md's scope, kept here only as the thing a user actually runs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/coregx/lexgen"
)

func main() {
	dot := flag.Bool("dot", false, "print the compiled DFA as a Graphviz graph and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-dot] regex [regex ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	regexes := flag.Args()
	if len(regexes) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	l, err := lexgen.Generate(regexes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: %v\n", err)
		os.Exit(1)
	}

	if *dot {
		fmt.Print(l.DFA().Dot())
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if matched, token := l.Classify(line); matched {
			fmt.Printf("%s\t%d\n", line, token)
		} else {
			fmt.Printf("%s\tno match\n", line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: reading stdin: %v\n", err)
		os.Exit(1)
	}
}
