package main

import (
	"github.com/bornholm/roster/internal/command"
	"github.com/bornholm/roster/internal/command/task"
)

func main() {
	command.Main(
		"roster", "sign volunteers up for event tasks",
		task.Commands()...,
	)
}
