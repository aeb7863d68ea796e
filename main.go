package main

import "pipeline-features/cmd"

func main() {
	cmd.Execute()
}
