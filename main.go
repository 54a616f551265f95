package main

import "github.com/Tiliavir/study-time-planner/cmd"

func main() {
	cmd.Execute()
}
