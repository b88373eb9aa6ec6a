package main

import "github.com/jsphweid/songsheet/cmd"

func main() {
	cmd.Execute()
}
