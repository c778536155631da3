// Command steinerroute reads a net description (bounds and pins) from a
// text file, computes a rectilinear Steiner tree approximation for it,
// and writes the routable two-layer wiring plan as XML.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	steinerwire "github.com/vlsiroute/steinerwire"
)

func main() {
	log.SetPrefix("steinerroute: ")
	log.SetFlags(0)

	input := flag.String("input", "", "input file with net configuration (required)")
	dump := flag.Bool("dump", false, "also print a plain-text debug dump of the routed net to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: steinerroute --input <file> [--dump]

Allowed options:
  --help           prints usage and exits
  --input <file>   specifies input file with net configuration
  --dump           also print a plain-text debug dump to stderr

Options:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *input == "" {
		flag.Usage()
		log.Fatalf("--input is required")
	}

	in, err := readInput(*input)
	if err != nil {
		log.Fatalf("%v", err)
	}

	net, err := steinerwire.Route(in)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *dump {
		fmt.Fprint(os.Stderr, net.DebugString())
	}

	if err := writeXML(os.Stdout, net); err != nil {
		log.Fatalf("%v", err)
	}
}
