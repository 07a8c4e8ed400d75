package main

import (
	cmd "github.com/tastebook/tastebook/cmd/tastebook"
)

func main() {
	cmd.Execute()
}
