package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/sumleap/internal/controller"
	"github.com/abhisek/sumleap/internal/remote"
)

// remoteCmd sends one-shot control requests to a running session over the
// local control socket. Meant for a parent or teacher in another terminal.
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Control a running practice session",
}

var remotePauseCmd = &cobra.Command{
	Use:   "pause [message]",
	Short: "Pause the session, optionally with a message",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg := ""
		if len(args) > 0 {
			msg = args[0]
		}
		return sendRemote(cmd, controller.Request{
			Kind:    controller.RequestPause,
			Message: msg,
		})
	},
}

var remoteResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendRemote(cmd, controller.Request{Kind: controller.RequestResume})
	},
}

var remoteRodCmd = &cobra.Command{
	Use:   "rod <value>",
	Short: "Show a value on the learner's abacus rod display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("rod value must be a number: %w", err)
		}
		return sendRemote(cmd, controller.Request{
			Kind:  controller.RequestRodValue,
			Value: v,
		})
	},
}

var remoteHideRodCmd = &cobra.Command{
	Use:   "hide-rod",
	Short: "Hide the rod display",
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendRemote(cmd, controller.Request{
			Kind:    controller.RequestRodVisible,
			Visible: false,
		})
	},
}

var remoteSayCmd = &cobra.Command{
	Use:   "say <message>",
	Short: "Show a message to the learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendRemote(cmd, controller.Request{
			Kind:    controller.RequestBroadcast,
			Message: args[0],
		})
	},
}

func sendRemote(cmd *cobra.Command, req controller.Request) error {
	req.ID = uuid.New().String()
	path, _ := cmd.Flags().GetString("socket")
	if path == "" {
		path = remote.DefaultSocketPath()
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if err := remote.Send(ctx, path, req); err != nil {
		return fmt.Errorf("is a session running? %w", err)
	}
	fmt.Println("Sent.")
	return nil
}

func init() {
	remoteCmd.PersistentFlags().String("socket", "", "Path to the control socket")
	remoteCmd.AddCommand(remotePauseCmd)
	remoteCmd.AddCommand(remoteResumeCmd)
	remoteCmd.AddCommand(remoteRodCmd)
	remoteCmd.AddCommand(remoteHideRodCmd)
	remoteCmd.AddCommand(remoteSayCmd)
}
