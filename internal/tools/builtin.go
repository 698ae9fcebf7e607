package tools

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// BuiltinTools returns the adapters implemented in this module, keyed by name
func BuiltinTools() map[string]Tool {
	return map[string]Tool{
		"get_current_datetime": NewFuncTool("get_current_datetime", currentDatetime),
		"get_system_info":      NewFuncTool("get_system_info", systemInfo),
		"calculate_expression": NewFuncTool("calculate_expression", calculateExpression),
		"unit_converter":       NewFuncTool("unit_converter", convertUnits),
		"generate_password":    NewFuncTool("generate_password", generatePassword),
		"tell_joke":            NewFuncTool("tell_joke", tellJoke),
		"random_fact":          NewFuncTool("random_fact", randomFact),
	}
}

func currentDatetime(_ context.Context, _ string) (string, error) {
	now := time.Now()
	return fmt.Sprintf("It is %s, %s.", now.Format("3:04 PM"), now.Format("Monday, January 2, 2006")), nil
}

func systemInfo(_ context.Context, _ string) (string, error) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return fmt.Sprintf("Running on %s/%s with %d CPUs. Process memory: %.1f MB allocated, %d goroutines active.",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(),
		float64(mem.Alloc)/(1024*1024), runtime.NumGoroutine()), nil
}

var exprPattern = regexp.MustCompile(`[\d(][\d\s+*/().-]*`)

// calculateExpression evaluates the first arithmetic expression found in the
// query. Supports + - * / and parentheses.
func calculateExpression(_ context.Context, query string) (string, error) {
	expr := strings.TrimSpace(exprPattern.FindString(query))
	if expr == "" {
		return "", fmt.Errorf("no arithmetic expression found in query")
	}
	result, err := evalExpression(expr)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate %q: %w", expr, err)
	}
	return fmt.Sprintf("%s = %s", expr, strconv.FormatFloat(result, 'f', -1, 64)), nil
}

// exprParser is a minimal recursive-descent parser for + - * / and parens
type exprParser struct {
	input string
	pos   int
}

func evalExpression(input string) (float64, error) {
	p := &exprParser{input: input}
	result, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected character %q at position %d", p.input[p.pos], p.pos)
	}
	return result, nil
}

func (p *exprParser) parseSum() (float64, error) {
	left, err := p.parseProduct()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, nil
		}
		switch p.input[p.pos] {
		case '+':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseProduct() (float64, error) {
	left, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, nil
		}
		switch p.input[p.pos] {
		case '*':
			p.pos++
			right, err := p.parseAtom()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseAtom()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseAtom() (float64, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}
	if p.input[p.pos] == '(' {
		p.pos++
		value, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return value, nil
	}
	if p.input[p.pos] == '-' {
		p.pos++
		value, err := p.parseAtom()
		if err != nil {
			return 0, err
		}
		return -value, nil
	}
	start := p.pos
	for p.pos < len(p.input) && (p.input[p.pos] == '.' || (p.input[p.pos] >= '0' && p.input[p.pos] <= '9')) {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected number at position %d", start)
	}
	return strconv.ParseFloat(p.input[start:p.pos], 64)
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

var unitConversionPattern = regexp.MustCompile(`([\d.]+)\s*(km|kilometers?|miles?|mi|kg|kilograms?|pounds?|lbs?|celsius|c|fahrenheit|f)\b`)

func convertUnits(_ context.Context, query string) (string, error) {
	match := unitConversionPattern.FindStringSubmatch(strings.ToLower(query))
	if match == nil {
		return "", fmt.Errorf("no convertible quantity found in query")
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return "", fmt.Errorf("invalid number %q: %w", match[1], err)
	}
	switch unit := match[2]; {
	case strings.HasPrefix(unit, "km") || strings.HasPrefix(unit, "kilometer"):
		return fmt.Sprintf("%.2f km is %.2f miles", value, value*0.621371), nil
	case strings.HasPrefix(unit, "mi"):
		return fmt.Sprintf("%.2f miles is %.2f km", value, value*1.60934), nil
	case strings.HasPrefix(unit, "kg") || strings.HasPrefix(unit, "kilogram"):
		return fmt.Sprintf("%.2f kg is %.2f pounds", value, value*2.20462), nil
	case strings.HasPrefix(unit, "pound") || strings.HasPrefix(unit, "lb"):
		return fmt.Sprintf("%.2f pounds is %.2f kg", value, value*0.453592), nil
	case unit == "celsius" || unit == "c":
		return fmt.Sprintf("%.1f°C is %.1f°F", value, value*9/5+32), nil
	case unit == "fahrenheit" || unit == "f":
		return fmt.Sprintf("%.1f°F is %.1f°C", value, (value-32)*5/9), nil
	}
	return "", fmt.Errorf("unsupported unit %q", match[2])
}

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

func generatePassword(_ context.Context, _ string) (string, error) {
	const length = 16
	var sb strings.Builder
	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordCharset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		sb.WriteByte(passwordCharset[idx.Int64()])
	}
	return fmt.Sprintf("Here is a generated password: %s", sb.String()), nil
}

var jokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"I told my computer I needed a break, and it said 'no problem, I'll go to sleep.'",
	"There are only 10 kinds of people: those who understand binary and those who don't.",
	"Why did the developer go broke? Because he used up all his cache.",
	"A SQL query walks into a bar, walks up to two tables and asks: can I join you?",
}

var facts = []string{
	"Honey never spoils. Archaeologists have found edible honey in ancient Egyptian tombs.",
	"Octopuses have three hearts and blue blood.",
	"The first computer bug was an actual moth found in a Harvard Mark II relay in 1947.",
	"A day on Venus is longer than a year on Venus.",
	"Bananas are berries, but strawberries are not.",
}

func tellJoke(_ context.Context, _ string) (string, error) {
	return pickRandom(jokes)
}

func randomFact(_ context.Context, _ string) (string, error) {
	return pickRandom(facts)
}

func pickRandom(items []string) (string, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(items))))
	if err != nil {
		return "", fmt.Errorf("failed to pick entry: %w", err)
	}
	return items[idx.Int64()], nil
}
