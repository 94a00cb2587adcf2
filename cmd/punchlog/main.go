// punchlog - Chat Transcript Work Hours Calculator
//
// punchlog reads an exported group chat transcript and derives attendance
// timesheets from "clock in / clock out" style messages: a daily work log,
// weekly totals per person, and a last-week workday timesheet.
package main

import (
	"os"

	"punchlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
