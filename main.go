package main

import "github.com/jsphweid/modeviz/cmd"

func main() {
	cmd.Execute()
}
