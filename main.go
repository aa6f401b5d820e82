package main

import "github.com/dzjyyds666/strtable/cmd"

func main() {
	cmd.Execute()
}
