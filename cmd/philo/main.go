package main

import "github.com/viant/philo/cmd"

func main() {
	cmd.Execute()
}
