package main

import "github.com/llm4s/szmigrate/cmd"

func main() {
	cmd.Execute()
}
