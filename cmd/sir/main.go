// Command sir tracks topics to review on a day, week, month schedule.
package main

import "github.com/mesh-intelligence/sir/internal/cli"

func main() {
	cli.Execute()
}
