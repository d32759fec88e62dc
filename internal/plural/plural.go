package plural

import (
	"fmt"

	"github.com/jinzhu/inflection"
)

// Count renders n followed by noun, pluralized unless n is one.
func Count(n int, noun string) string {
	if n != 1 {
		noun = inflection.Plural(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}
