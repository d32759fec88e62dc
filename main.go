package main

import "github.com/cmmoran/sdmarkup/cmd"

func main() {
	cmd.Execute()
}
