package commands

import (
	"github.com/spf13/cobra"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

func (a *App) newEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit IMAGE [IMAGE...]",
		Short: "Edit images with a text instruction",
		Long: `Edit transforms one or more input images according to a text
instruction. With several inputs the model composes them into a
single result.

Examples:
  nanobanana edit photo.png --prompt "make the sky purple" -o edited.png
  nanobanana edit subject.png background.jpg --prompt "put the subject in front of the background" -o out.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runEdit,
	}

	cmd.Flags().StringVarP(&a.editPrompt, "prompt", "p", "", "edit instruction (required)")
	cmd.Flags().StringVarP(&a.editOutput, "output", "o", "", "output file (default: raw bytes on stdout when piped)")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func (a *App) runEdit(cmd *cobra.Command, args []string) error {
	images, err := a.readAttachments(args)
	if err != nil {
		return err
	}

	client, err := a.newProviderClient()
	if err != nil {
		return err
	}

	result, err := client.Edit(cmd.Context(), &core.EditRequest{
		Model:  core.ModelID(a.model),
		Prompt: a.editPrompt,
		Images: images,
	})
	if err != nil {
		return a.handleProviderError(err)
	}

	return a.writeImageResult(result, a.editOutput)
}
