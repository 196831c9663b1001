package main

import (
	"fmt"
	"io/ioutil"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"otus/internal"
)

// Demo driver: plays the role of compiled output. Each line of the
// script is one dispatch request (symbol followed by literal operands);
// every distinct (symbol, arity) pair is bound once and the target is
// reused across lines.
var demoScript = `
plus 1 2
plus "x=" 1
plus 1 "=x"
times "a" 4
times 2 "a"
divide 4 2
divide 1 0
less 1 2
equals null null
and true false
not true
plus 9223372036854775807 1
modulo 10N 3
`

func main() {
	log := logrus.New()

	source := demoScript
	if len(os.Args) > 1 {
		b, err := ioutil.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		source = string(b)
	}

	if !run(source, log) {
		os.Exit(1)
	}
}

func run(source string, log *logrus.Logger) bool {
	ok := true
	targets := make(map[string]*internal.DispatchTarget)

	for i, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitLine(line)
		symbol := fields[0]
		operands := make([]interface{}, 0, len(fields)-1)
		badLine := false
		for _, f := range fields[1:] {
			v, err := parseOperand(f)
			if err != nil {
				log.WithField("line", i+1).Error(err)
				badLine = true
				break
			}
			operands = append(operands, v)
		}
		if badLine {
			ok = false
			continue
		}

		key := fmt.Sprintf("%s/%d", symbol, len(operands))
		target, bound := targets[key]
		if !bound {
			var err error
			target, err = internal.Bind(symbol, len(operands))
			if err != nil {
				log.WithFields(logrus.Fields{"line": i + 1, "operator": symbol}).Error(err)
				ok = false
				continue
			}
			targets[key] = target
		}

		value, err := target.Invoke(operands...)
		if err != nil {
			fmt.Printf("%s %s\n", color.Red("✗ "+line+" =>"), err)
			continue
		}
		fmt.Printf("%s %v\n", color.Green("✓ "+line+" =>"), value)
	}

	return ok
}

// splitLine fields the request, keeping quoted strings whole.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
		case r == ' ' && !quoted:
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields
}

// parseOperand reads one literal. The N suffix marks big integers; this
// is a driver convenience, not language syntax.
func parseOperand(tok string) (interface{}, error) {
	switch tok {
	case "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if strings.HasPrefix(tok, `"`) {
		return strconv.Unquote(tok)
	}
	if strings.HasSuffix(tok, "N") {
		if n, ok := new(big.Int).SetString(strings.TrimSuffix(tok, "N"), 10); ok {
			return n, nil
		}
		return nil, fmt.Errorf("bad big integer literal %q", tok)
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("unrecognized operand %q", tok)
}
