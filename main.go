package main

import "golang-netup/cmd"

func main() {
	cmd.Execute()
}
