package ui

import "fmt"

// ASCII banner for the application
const Banner = `
   ___           _         ___       _       _
  |_ _|_ __  ___| |_ __ _ / _ \ ___ (_)_ __ | |_
   | || '_ \/ __| __/ _` + "`" + ` | | | / __|| | '_ \| __|
   | || | | \__ \ || (_| | |_| \__ \| | | | | |_
  |___|_| |_|___/\__\__,_|\___/|___/|_|_| |_|\__|

        profile intelligence and archive utility
`

// Quiet suppresses all terminal output when set
var Quiet bool

// Color functions for terminal output
var (
	Cyan    = colorize("\033[36m%s\033[0m")
	Yellow  = colorize("\033[33m%s\033[0m")
	Red     = colorize("\033[31m%s\033[0m")
	Green   = colorize("\033[32m%s\033[0m")
	Magenta = colorize("\033[35m%s\033[0m")
	Dim     = colorize("\033[2m%s\033[0m")
)

// colorize returns a function that wraps text with ANSI color codes
func colorize(colorString string) func(string) string {
	return func(text string) string {
		return fmt.Sprintf(colorString, text)
	}
}

// PrintBanner prints the ASCII banner with color
func PrintBanner() {
	if Quiet {
		return
	}
	fmt.Print(Cyan(Banner))
}

// PrintError prints an error message in red
func PrintError(msg string, args ...interface{}) {
	if Quiet {
		return
	}
	if len(args) > 0 {
		fmt.Println(Red(msg + ": " + fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Println(Red(msg))
	}
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	if Quiet {
		return
	}
	fmt.Println(Green(msg))
}

// PrintInfo prints a label/value pair
func PrintInfo(label string, value string) {
	if Quiet {
		return
	}
	fmt.Printf("%s: %s\n", Cyan(label), Yellow(value))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(msg string, args ...interface{}) {
	if Quiet {
		return
	}
	if len(args) > 0 {
		fmt.Println(Yellow(msg + ": " + fmt.Sprintf("%v", args[0])))
	} else {
		fmt.Println(Yellow(msg))
	}
}

// PrintHighlight prints a highlighted message in magenta
func PrintHighlight(msg string) {
	if Quiet {
		return
	}
	fmt.Println(Magenta(msg))
}
