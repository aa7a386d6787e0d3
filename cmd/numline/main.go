// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// numline is a small command line front end for the numberline package: it
// parses interval notation, combines number lines, and validates values
// against them or against named constraints from a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/numberline"
	"github.com/dolthub/numberline/constraints"
)

func main() {
	app := kingpin.New("numline", "Exact interval arithmetic over the extended real number line.")
	app.HelpFlag.Short('h')
	verbose := app.Flag("verbose", "enable debug logging").Short('v').Bool()

	check := app.Command("check", "Check whether values lie on a number line.")
	checkLine := check.Arg("line", "number line in interval notation, e.g. '[0, 10), (12, inf)'").Required().String()
	checkValues := check.Arg("values", "values to check").Required().Float64List()

	union := app.Command("union", "Print the union of two number lines.")
	unionLeft := union.Arg("left", "left number line").Required().String()
	unionRight := union.Arg("right", "right number line").Required().String()

	subtract := app.Command("subtract", "Print the difference of two number lines.")
	subtractLeft := subtract.Arg("left", "left number line").Required().String()
	subtractRight := subtract.Arg("right", "right number line").Required().String()

	complement := app.Command("complement", "Print the complement of a number line.")
	complementLine := complement.Arg("line", "number line").Required().String()

	validate := app.Command("validate", "Validate values against a named constraint from a YAML file.")
	validateConfig := validate.Flag("config", "constraint file").Short('c').Required().String()
	validateName := validate.Arg("name", "constraint name").Required().String()
	validateValues := validate.Arg("values", "values to validate").Required().Float64List()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	logrus.SetLevel(logrus.WarnLevel)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var ok bool
	var err error
	switch cmd {
	case check.FullCommand():
		ok, err = runCheck(*checkLine, *checkValues)
	case union.FullCommand():
		ok, err = runCombine(*unionLeft, *unionRight, numberline.NumberLine.Union)
	case subtract.FullCommand():
		ok, err = runCombine(*subtractLeft, *subtractRight, numberline.NumberLine.Subtract)
	case complement.FullCommand():
		ok, err = runComplement(*complementLine)
	case validate.FullCommand():
		ok, err = runValidate(*validateConfig, *validateName, *validateValues)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}

func runCheck(lineStr string, values []float64) (bool, error) {
	line, err := numberline.ParseNumberLine(lineStr)
	if err != nil {
		return false, err
	}
	return reportValues(line, values), nil
}

func runCombine(leftStr, rightStr string, combine func(numberline.NumberLine, numberline.NumberLine) numberline.NumberLine) (bool, error) {
	left, err := numberline.ParseNumberLine(leftStr)
	if err != nil {
		return false, err
	}
	right, err := numberline.ParseNumberLine(rightStr)
	if err != nil {
		return false, err
	}

	fmt.Println(combine(left, right).String())
	return true, nil
}

func runComplement(lineStr string) (bool, error) {
	line, err := numberline.ParseNumberLine(lineStr)
	if err != nil {
		return false, err
	}

	fmt.Println(line.Complement().String())
	return true, nil
}

func runValidate(configPath, name string, values []float64) (bool, error) {
	set, err := constraints.Load(configPath)
	if err != nil {
		return false, err
	}

	line, found := set.Get(name)
	if !found {
		return false, constraints.ErrUnknownConstraint.New(name)
	}
	return reportValues(line, values), nil
}

// reportValues prints one line per value and returns whether all of them
// passed.
func reportValues(line numberline.NumberLine, values []float64) bool {
	ok := true
	for _, v := range values {
		if err := line.Validate(v); err != nil {
			color.Red("fail  %v", err)
			ok = false
		} else {
			color.Green("ok    %v in %s", v, line.String())
		}
	}
	return ok
}
