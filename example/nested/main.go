// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Nested option keys round-trip into and out of a tree shaped config
// file: run once to write demo_settings.json, then run again with the
// written file as the sole argument to load it back.
package main

import (
	"fmt"
	"os"

	"github.com/miniconf-go/miniconf"
	"github.com/miniconf-go/miniconf/value"
)

func main() {
	conf := miniconf.New(miniconf.Description("A nested key example"))
	conf.Option("numOpt").ShortFlag("n").Default(value.Number(3.14)).Description("a number value")
	conf.Option("part1.value1").ShortFlag("p1v1").Default(value.String("p1v1")).Description("nested value example")
	conf.Option("part1.value2").ShortFlag("p1v2").Default(value.String("p1v2")).Description("nested value example")
	conf.Option("part2.value1").ShortFlag("p2v1").Default(value.Number(2.1)).Description("nested value example")
	conf.Option("part2.subpart1.value1").ShortFlag("p2-1v1").Default(value.String("p2-1v1")).Description("nested value example")

	err := conf.Parse(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "errors in parsing:")
		conf.WriteLog(os.Stderr)
		os.Exit(1)
	}

	s, err := conf.Get("part2.subpart1.value1").Text()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("part2.subpart1.value1 = %s\n", s)

	err = conf.SerializeFile("demo_settings.json")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("saved to demo_settings.json")
}
