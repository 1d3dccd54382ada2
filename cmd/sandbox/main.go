// Command sandbox is a small playground for the matrix package: it traces the
// wrapped-diagonal determinant and runs submatrix and resize operations on
// matrices given on the command line.
//
// Usage:
//
//	sandbox det --row 5,10,2 --row 6,8,1 --row 5,44,0 --trace
//	sandbox sub --row 1,2,3 --row 4,5,6 --rows 1 --cols 2 --at-row 1 --at-col 1
//	sandbox resize --row 1,2 --row 3,4 --rows 3 --cols 3 --origin-row -1 --origin-col -1
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
