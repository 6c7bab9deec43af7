package opt_test

import (
	"fmt"
	"time"

	"github.com/ardnew/tracekv/opt"
)

func ExampleString() {
	var missing *int

	fmt.Println(opt.String(opt.Ptr(5)))
	fmt.Println(opt.String(missing))
	fmt.Println(opt.StringOr(missing, "n/a"))
	// Output:
	// 5
	// null
	// n/a
}

func ExampleDate() {
	genesis := time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC)

	fmt.Println(opt.Date(&genesis))
	fmt.Println(opt.DateTime(&genesis))
	fmt.Println(opt.Date(nil))
	// Output:
	// 2020-05-01
	// 2020-05-01 00:00:00
	// null
}

func ExampleJSON() {
	fmt.Println(opt.JSON([]string{"DeFi", "Layer 1"}))
	fmt.Println(opt.JSON(nil))
	// Output:
	// ["DeFi","Layer 1"]
	// null
}
