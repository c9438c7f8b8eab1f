// Command chardetect prints the detected encoding and confidence of one
// or more files, or of stdin if none are given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/asquebay/chardetect/internal/registry"

	chardetect "github.com/asquebay/chardetect"
)

var eraFlag = flag.String("encoding-era", "ALL", "restrict detection to one era: modern-web, legacy-iso, legacy-regional, dos, legacy-mac, mainframe, or ALL")

func parseEra(s string) (chardetect.Era, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return registry.AllEras, nil
	case "modern-web":
		return registry.ModernWeb, nil
	case "legacy-iso":
		return registry.LegacyISO, nil
	case "legacy-regional":
		return registry.LegacyRegional, nil
	case "dos":
		return registry.DOS, nil
	case "legacy-mac":
		return registry.LegacyMac, nil
	case "mainframe":
		return registry.Mainframe, nil
	default:
		return 0, fmt.Errorf("unknown encoding era %q", s)
	}
}

func main() {
	flag.Parse()

	era, err := parseEra(*eraFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nОшибка: неизвестная эра кодировки: %v\n", err, err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := detectReader("<stdin>", os.Stdin, era); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	status := 0
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open %s: %v\nОшибка: не удалось открыть %s: %v\n", path, err, path, err)
			status = 1
			continue
		}
		if err := detectReader(path, f, era); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
		}
		f.Close()
	}
	os.Exit(status)
}

func detectReader(label string, r io.Reader, era chardetect.Era) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", label, err)
	}
	result, err := chardetect.Detect(data, era)
	if err != nil {
		return fmt.Errorf("detecting %s: %w", label, err)
	}
	encoding := result.Encoding
	if encoding == "" {
		encoding = "None"
	}
	fmt.Printf("%s: %s with confidence %.2f\n", label, encoding, result.Confidence)
	return nil
}
