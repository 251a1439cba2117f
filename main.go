// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"anglekit/angle"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: anglekit <degrees> <degrees>")
	os.Exit(2)
}

func parseAngle(s string) float64 {
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "anglekit: bad angle %q\n", s)
		os.Exit(1)
	}
	return a
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
	}
	a := parseAngle(flag.Arg(0))
	b := parseAngle(flag.Arg(1))
	d, err := angle.DistanceStrict(a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "anglekit: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(d)
}
