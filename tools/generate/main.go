package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// OverrideConfig represents the optional TOML file merged over errors.dat
type OverrideConfig struct {
	Messages map[string]string `toml:"messages"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "tools/generate/errors.dat", "Path to the toolkit's errors.dat")
	overrides := flag.String("overrides", "tools/generate/warnings.toml", "TOML file with extra or replacement messages")
	out := flag.String("out", "errors_generated.go", "Output file")
	pkg := flag.String("pkg", "epanet", "Package name of the output file")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", *in, err)
	}
	defer f.Close()

	messages, err := parseCatalog(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	// The override file is optional
	if data, err := os.ReadFile(*overrides); err == nil {
		if err := mergeOverrides(messages, data); err != nil {
			return fmt.Errorf("failed to parse %s: %w", *overrides, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	code, err := generateGoCode(*pkg, messages)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, code, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	fmt.Printf("✓ Generated %s (%d messages)\n", *out, len(messages))
	return nil
}

// parseCatalog reads DAT(code,"text") lines. Other lines are ignored.
func parseCatalog(r io.Reader) (map[int]string, error) {
	messages := make(map[int]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		rest, ok := strings.CutPrefix(line, "DAT(")
		if !ok {
			continue
		}
		rest = strings.TrimSuffix(rest, ")")

		codeText, msgText, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: missing message", lineNo)
		}
		code, err := strconv.Atoi(strings.TrimSpace(codeText))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad code %q", lineNo, codeText)
		}
		msg, err := strconv.Unquote(strings.TrimSpace(msgText))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad message %s", lineNo, msgText)
		}
		if _, dup := messages[code]; dup {
			return nil, fmt.Errorf("line %d: duplicate code %d", lineNo, code)
		}
		messages[code] = msg
	}
	return messages, scanner.Err()
}

// mergeOverrides applies the [messages] table of a TOML file. Keys are
// message codes.
func mergeOverrides(messages map[int]string, data []byte) error {
	var config OverrideConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return err
	}
	for key, msg := range config.Messages {
		code, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("messages: bad code %q", key)
		}
		messages[code] = msg
	}
	return nil
}

func generateGoCode(pkg string, messages map[int]string) ([]byte, error) {
	codes := make([]int, 0, len(messages))
	for code := range messages {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	var b bytes.Buffer
	b.WriteString("// Code generated by tools/generate from errors.dat. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("// errorMessages holds the toolkit message catalog, used when the loaded\n")
	b.WriteString("// library cannot describe a code itself.\n")
	b.WriteString("var errorMessages = map[int]string{\n")
	for _, code := range codes {
		fmt.Fprintf(&b, "\t%d: %q,\n", code, messages[code])
	}
	b.WriteString("}\n")

	return format.Source(b.Bytes())
}
