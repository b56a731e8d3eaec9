package main

import "DocTrackerGo/cmd"

func main() {
	cmd.Execute()
}
