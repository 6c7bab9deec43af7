package conv_test

import (
	"fmt"
	"strconv"

	"github.com/ardnew/tracekv/conv"
)

type Label string

func (Label) From(n int) Label { return Label(strconv.Itoa(n)) }

func ExampleConvert() {
	fmt.Printf("%q\n", conv.Convert[Label]([]int{1, 2, 3}))
	// Output: ["1" "2" "3"]
}

func ExampleMapRefs() {
	type user struct{ Name string }

	users := []user{{"ada"}, {"linus"}}
	names := conv.MapRefs(users, func(u *user) string { return u.Name })

	fmt.Println(names)
	// Output: [ada linus]
}

func ExampleTryMap() {
	_, err := conv.TryMap([]string{"1", "two"}, strconv.Atoi)

	fmt.Println(err)
	// Output: conversion failed: strconv.Atoi: parsing "two": invalid syntax
}
