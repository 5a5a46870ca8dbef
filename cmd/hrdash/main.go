package main

import "hr-dashboard/internal/cli"

func main() {
	cli.Execute()
}
