// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"os"

	"github.com/miniconf-go/miniconf"
	"github.com/miniconf-go/miniconf/value"
)

func main() {
	conf := miniconf.New(miniconf.Description("A simple example"))
	conf.Option("numOpt").ShortFlag("n").Default(value.Number(3.14)).Description("a number value")
	conf.Option("intOpt").ShortFlag("d").Default(value.Int(122)).Description("an integer value")
	conf.Option("boolOpt").ShortFlag("b").Default(value.Bool(false)).Required(true).Description("a boolean value")
	conf.Option("strOpt").ShortFlag("s").Default(value.String("string")).Required(true).Description("a string value")

	err := conf.Parse(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "errors in parsing:")
		conf.WriteLog(os.Stderr)
		os.Exit(1)
	}

	conf.Print(os.Stdout)
}
