package main

import (
	"fmt"

	"github.com/deanishe/awgo"

	"lengthcalc/length"
)

// wf talks to Alfred: argument parsing, feedback items, panic recovery.
var wf *aw.Workflow

func init() {
	wf = aw.New()
}

func run() {
	if len(wf.Args()) == 0 {
		return
	}
	query := wf.Args()[0]

	res, err := length.Convert(query)
	if err != nil {
		wf.NewItem("Cannot convert '"+query+"'").
			Subtitle(`Try: 25mm, 2.5cm, 0.75m, 1", 1 3/8", 7/16in, 3/4 + 1/16`).
			Valid(false)
		wf.SendFeedback()
		return
	}

	mm := fmt.Sprintf("%.2f mm", res.Millimeters)
	inches := res.DecimalInches()
	frac, _ := length.FormatInchFraction(inches, length.DefaultDenominator)
	wf.NewItem(mm).
		Subtitle(fmt.Sprintf("%.5f\" ~ %s\"", inches, frac)).
		Arg(mm).
		Valid(true)
	wf.SendFeedback()
}

func main() {
	wf.Run(run)
}
