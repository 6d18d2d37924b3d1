package main

import (
	"github.com/boostorg/scope/pkg/cli"
)

func main() {
	cli.Execute()
}
