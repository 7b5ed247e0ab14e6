package main

import "github.com/nfrund/b2bsite/cmd/site-cli/cmd"

func main() {
	cmd.Execute()
}
