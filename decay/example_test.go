package decay_test

import (
	"fmt"

	"github.com/katalvlaran/nucleon/decay"
)

// ExampleRemaining decays 80 units over one half-life.
func ExampleRemaining() {
	left, err := decay.Remaining(80, 10, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(left)
	// Output:
	// 40
}

// ExampleRemaining_zeroHalfLife shows the undefined-rate error.
func ExampleRemaining_zeroHalfLife() {
	_, err := decay.Remaining(100, 0, 5)
	fmt.Println(err)
	// Output:
	// elapsed=5: decay: half-life must be non-zero: nucleon: domain error
}

// ExampleElapsed asks how long carbon-14 takes to drop to a quarter.
func ExampleElapsed() {
	t, _ := decay.Elapsed(100, 25, 5730)
	fmt.Printf("%.0f years\n", t)
	// Output:
	// 11460 years
}
