package notify

import (
	"context"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Command runs a user supplied shell command after each phase. The ended and
// next phases are passed as STUDYTIMER_ENDED and STUDYTIMER_NEXT.
type Command struct {
	args []string
}

// NewCommand parses cmdLine with shell quoting rules.
func NewCommand(cmdLine string) (*Command, error) {
	args, err := shellquote.Split(cmdLine)
	if err != nil {
		return nil, errInvalidSessionCmd.Wrap(err)
	}

	return &Command{args: args}, nil
}

// Name implements Notifier.
func (c *Command) Name() string {
	return "command"
}

// Notify implements Notifier.
func (c *Command) Notify(ctx context.Context, ev Event) error {
	if len(c.args) == 0 {
		return nil
	}

	name := c.args[0]
	args := c.args[1:]

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(),
		"STUDYTIMER_ENDED="+ev.Ended.String(),
		"STUDYTIMER_NEXT="+ev.Next.String(),
	)

	return cmd.Run()
}
