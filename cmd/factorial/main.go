// Command factorial runs the instrumented factorial pair (iterative and
// recursive-by-addition) and prints the timing, memory and recursion
// depth figures for each input value.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gemmkit/gemmkit"
)

func main() {
	var (
		valuesFlag = flag.String("values", "3,6,7,8", "comma-separated inputs")
		recursive  = flag.Bool("recursive", false, "use the recursive variant")
	)
	flag.Parse()

	values, err := parseValues(*valuesFlag)
	if err != nil {
		log.Fatalf("bad -values: %v", err)
	}

	if *recursive {
		fmt.Println("Recursive Factorial Implementation")
	} else {
		fmt.Println("Iterative Factorial Implementation")
	}
	fmt.Println("==================================")

	for _, n := range values {
		p := gemmkit.ProfileFactorial(n, *recursive)

		fmt.Printf("Factorial of %d = %d\n", p.N, p.Value)
		fmt.Printf("Time taken: %f seconds\n", p.Elapsed.Seconds())
		fmt.Printf("Memory used: %d bytes\n", p.MemoryUse)
		if *recursive {
			fmt.Printf("(Stack depth: %d, Frame size: %d bytes)\n",
				p.Depth, gemmkit.RecursiveFrameSize())
		}
		fmt.Println()
	}
}

func parseValues(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("value must be non-negative, got %d", n)
		}
		values = append(values, n)
	}
	return values, nil
}
