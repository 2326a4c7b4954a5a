package main

import "github.com/gavvrail/MackDihh-sub000/cmd"

func main() {
	cmd.Execute()
}
