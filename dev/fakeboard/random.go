package fakeboard

import (
	"fmt"
	"math/rand"
)

// randomSwitch returns a function that will output various integers at different weights.
//
// Ex. randomSwitch(2, 3, 5) will return a function that will output:
//   - `0` 20% of the time
//   - `1` 30% of the time
//   - `2` 50% of the time
func randomSwitch(weights ...int) func(rndm *rand.Rand) int {
	if len(weights) == 0 {
		panic("a random switch must have at least 1 weight")
	}

	var sum int
	for _, p := range weights {
		if p <= 0 {
			panic("weights must be positive")
		}
		sum += p
	}

	return func(rndm *rand.Rand) int {
		value := rndm.Intn(sum)

		threshold := 0
		for i := 0; i < len(weights); i++ {
			threshold += weights[i]
			if value < threshold {
				return i
			}
		}

		panic(fmt.Sprintf("random value generated was out of bounds: %d", value))
	}
}

func randomRollNumber(rndm *rand.Rand) string {
	return fmt.Sprintf("2%d%06d", 1+rndm.Intn(4), rndm.Intn(1_000_000))
}

func pick[T any](rndm *rand.Rand, items []T) T {
	return items[rndm.Intn(len(items))]
}
