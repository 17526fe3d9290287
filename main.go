package main

import "github.com/chrisdamba/ridehailsim/cmd"

func main() {
	cmd.Execute()
}
