package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"lengthcalc/length"
)

func main() {
	log.SetFlags(0)
	denom := flag.Int("d", length.DefaultDenominator, "fraction denominator for inch display")
	flag.Parse()
	if *denom <= 0 {
		log.Fatalf("denominator (%d) must be positive", *denom)
	}

	conv := length.New(length.Denominator(*denom))

	// One-shot mode: convert each argument and exit.
	if flag.NArg() > 0 {
		code := 0
		for _, arg := range flag.Args() {
			if err := printResult(conv, arg); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				code = 1
			}
		}
		os.Exit(code)
	}

	fmt.Println("Length Converter — enter a value, get mm.")
	fmt.Println(`Examples: 25mm | 2.5cm | 0.75m | 1" | 1 3/8" | 7/16in`)
	fmt.Println("Expr: 3/4 + 1/16 | (1 3/8) * 2")
	fmt.Printf("Fraction precision: 1/%d inch\n", *denom)
	fmt.Println("Type 'q' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter length: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return
		}
		// A malformed entry never terminates the session.
		if err := printResult(conv, line); err != nil {
			fmt.Printf("Error: %v\n\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func printResult(conv *length.Converter, input string) error {
	res, err := conv.Convert(input)
	if err != nil {
		return err
	}
	inches := res.DecimalInches()
	frac, err := conv.FormatFraction(inches)
	if err != nil {
		return err
	}
	fmt.Printf("= %.2f mm   (inch: %.5f\" ~ %s\")\n\n", res.Millimeters, inches, frac)
	return nil
}
