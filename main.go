/*
 * BigNum - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"

	calc "github.com/rcornwell/bignum/calc"
	logger "github.com/rcornwell/bignum/util/logger"
)

var Logger *slog.Logger

// REPL commands, also offered for completion.
var commandWords = []string{"exit", "help", "quit", "vars"}

func main() {
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optExpr := getopt.StringLong("expr", 'e', "", "Evaluate one expression and exit")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror debug logging to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(Logger)

	eval := calc.New()

	if *optExpr != "" {
		result, err := eval.Eval(*optExpr)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			os.Exit(1)
		}
		fmt.Println(result.String())
		os.Exit(0)
	}

	Logger.Info("BigNum started")
	consoleReader(eval)
}

// Interactive loop. Each line is a command or an expression handed to
// the calculator.
func consoleReader(eval *calc.Calculator) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(line string) []string {
		return complete(eval, line)
	})

	for {
		input, err := line.Prompt("bignum> ")
		if err == nil {
			line.AppendHistory(input)
			if quit := process(eval, input); quit {
				return
			}
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return
		}
		slog.Error("error reading line: " + err.Error())
	}
}

// Run one REPL line. Returns true on a quit command.
func process(eval *calc.Calculator, input string) bool {
	switch strings.TrimSpace(input) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		fmt.Println("Enter an expression (+ - * / % and parentheses) or name = expression.")
		fmt.Println("The previous result is available as _.")
		fmt.Println("Commands: vars, help, quit.")
		return false
	case "vars":
		for _, name := range eval.Names() {
			value, _ := eval.Lookup(name)
			fmt.Println(name + " = " + value.String())
		}
		return false
	}

	result, err := eval.Eval(input)
	if err != nil {
		fmt.Println("Error: " + err.Error())
		return false
	}
	fmt.Println(result.String())
	return false
}

// Offer command words and variable names matching the typed prefix.
func complete(eval *calc.Calculator, prefix string) []string {
	var matches []string
	for _, word := range commandWords {
		if strings.HasPrefix(word, prefix) {
			matches = append(matches, word)
		}
	}
	for _, name := range eval.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}
