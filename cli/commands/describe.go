package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

func (a *App) newDescribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe IMAGE [IMAGE...]",
		Short: "Describe images with a vision model",
		Long: `Describe sends one or more images to the model and prints its
textual answer. The default question asks for a detailed
description; --prompt replaces it.

Examples:
  nanobanana describe photo.png
  nanobanana describe chart.png --prompt "what trend does this chart show?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runDescribe,
	}

	cmd.Flags().StringVarP(&a.descPrompt, "prompt", "p", "", "question to ask about the images")

	return cmd
}

func (a *App) runDescribe(cmd *cobra.Command, args []string) error {
	images, err := a.readAttachments(args)
	if err != nil {
		return err
	}

	client, err := a.newProviderClient()
	if err != nil {
		return err
	}

	description, err := client.Describe(cmd.Context(), &core.DescribeRequest{
		Model:  core.ModelID(a.model),
		Prompt: a.descPrompt,
		Images: images,
	})
	if err != nil {
		return a.handleProviderError(err)
	}

	if a.jsonOutput {
		data, err := json.Marshal(map[string]string{"description": description})
		if err != nil {
			return exitWithCode(ExitProvider, err)
		}
		fmt.Fprintln(a.stdout, string(data))
		return nil
	}

	fmt.Fprintln(a.stdout, description)
	return nil
}
