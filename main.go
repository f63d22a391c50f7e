package main

import "github.com/hongik-triple/acnelog_backend/cmd"

func main() {
	cmd.Execute()
}
