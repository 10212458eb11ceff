package main

import "github.com/arloliu/astrofits/cmd/fitsinfo/cmd"

func main() {
	cmd.Execute()
}
