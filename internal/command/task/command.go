package task

import "github.com/urfave/cli/v2"

func Commands() []*cli.Command {
	return []*cli.Command{
		ListCommand(),
		UnfilledCommand(),
		ShowCommand(),
		SearchCommand(),
		ScheduleCommand(),
		SummaryCommand(),
		AssignCommand(),
		RemoveCommand(),
		AddSlotCommand(),
		CreateCommand(),
	}
}
