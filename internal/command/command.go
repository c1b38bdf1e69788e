package command

import (
	commandHandler "simpleeval/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewReminderHandler)

type Command struct {
	reminderCommandHandler *commandHandler.ReminderHandler
}

// NewCommand .
func NewCommand(
	reminderCommandHandler *commandHandler.ReminderHandler,
) *Command {
	return &Command{
		reminderCommandHandler: reminderCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "remind",
			Short: "run the schedule reminder sweep once",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.reminderCommandHandler.Sweep(cmd, args)
			},
		},
	)
}
