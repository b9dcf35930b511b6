package main

import "github.com/npillmayer/wellpath/cmd/wellplot/cmd"

func main() {
	cmd.Execute()
}
