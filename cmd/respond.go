package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/CrewWing/internal/conversation"
)

var respondSeed int64

var respondCmd = &cobra.Command{
	Use:   "respond [message]",
	Short: "Reply to a message with the conversational assistant",
	Long: `Respond classifies the message intent (task creation, priority briefing,
status update, project setup, or general) and prints a canned assistant
reply. Pass --seed for reproducible output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRespond,
}

func init() {
	rootCmd.AddCommand(respondCmd)

	respondCmd.Flags().Int64Var(&respondSeed, "seed", 0, "random seed (0 uses the current time)")
}

func runRespond(cmd *cobra.Command, args []string) error {
	message, err := readMessage(args)
	if err != nil {
		return err
	}

	seed := respondSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	responder := conversation.NewResponder(rand.New(rand.NewSource(seed)))

	fmt.Println(responder.Respond(message))
	return nil
}
