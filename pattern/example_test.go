package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/pattern"
)

// ExampleFind locates an L-shaped pattern that only appears once the image
// is rotated.
func ExampleFind() {
	img, _ := grid.New([]string{
		"....",
		"###.",
		"#...",
		"....",
	})
	ell, _ := pattern.New([]string{
		"#.",
		"##",
	}, '#')

	m, err := pattern.Find(img, ell, pattern.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("orientation:", m.Orientation)
	fmt.Println("matches:", m.Count())
	fmt.Println("roughness:", m.Roughness())

	// Output:
	// orientation: 3
	// matches: 1
	// roughness: 1
}
