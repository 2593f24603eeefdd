// SPDX-License-Identifier: MIT

// Command spinmix estimates mixing times of Ising spin chains by coupling.
//
//	spinmix sweep   <model> <n> <trials> [low high step]
//	spinmix trial   <model> <n> <param>
//	spinmix summary <file>... | --sqlite DB
//	spinmix models
//	spinmix config
//
// Run "spinmix <command> --help" for flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
