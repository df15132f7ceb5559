// Copyright 2020 Aleksandr Demakin. All rights reserved.

package animnum_test

import (
	"fmt"

	"github.com/avdva/animnum"
)

func ExampleDisplay() {
	d, err := animnum.New(animnum.DefaultConfig())
	if err != nil {
		panic(err)
	}
	for _, v := range []interface{}{1234, "1235", 1299} {
		f, err := d.Update(v)
		if err != nil {
			panic(err)
		}
		fmt.Println(f.Text, f.Edits, f.Changed)
		for _, s := range f.Segments {
			for _, dir := range s.Directives {
				if dir.Changed {
					fmt.Printf("  %c -> %c %s after %.2fs\n", dir.Prev, dir.Char, dir.Direction, dir.Layers[1].Delay)
				}
			}
		}
	}

	// Output:
	// 1,234 {+1,234+} 0
	// 1,235 1,23[-4-]{+5+} 1
	//   4 -> 5 up after 0.00s
	// 1,299 1,2[-35-]{+99+} 2
	//   3 -> 9 up after 0.05s
	//   5 -> 9 up after 0.00s
}
