package main

import "docstore/cmd/server/cmd"

func main() {
	cmd.Execute()
}
