package main

import "github.com/457992195/BGmi/internal/cmd"

func main() {
	cmd.Execute()
}
