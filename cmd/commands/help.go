package commands

import "fmt"

const help = `media gallery catalog service

usage:
  %[1]s run <config.yml>   start the HTTP API (and the gRPC health server when enabled)
  %[1]s version            print the version
  %[1]s help               show this message
`

func HandleHelp(args []string) {
	fmt.Printf(help, args[0]) //nolint
}
