package main

import "github.com/restodata/restosim/cmd"

func main() {
	cmd.Execute()
}
