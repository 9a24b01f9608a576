package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
)

func (a *App) newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an image from a text prompt",
		Long: `Generate creates an image from a text description.

Examples:
  nanobanana generate --prompt "a sunset over the ocean" -o sunset.png
  nanobanana generate --prompt "a city at night" --aspect-ratio 16:9 --image-size 2K -o city.png
  nanobanana generate --prompt "match this style" --image ref.png -o out.png`,
		RunE: a.runGenerate,
	}

	cmd.Flags().StringVarP(&a.genPrompt, "prompt", "p", "", "text description of the image (required)")
	cmd.Flags().StringVarP(&a.genOutput, "output", "o", "", "output file (default: raw bytes on stdout when piped)")
	cmd.Flags().StringVar(&a.genAspect, "aspect-ratio", "", "aspect ratio (1:1, 3:4, 4:3, 9:16, 16:9)")
	cmd.Flags().StringVar(&a.genSize, "image-size", "", "resolution (1K, 2K, 4K)")
	cmd.Flags().StringArrayVar(&a.genImages, "image", nil, "guidance image file, repeatable")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, args []string) error {
	if a.genAspect != "" && !core.AspectRatio(a.genAspect).IsValid() {
		return exitWithCode(ExitValidation,
			fmt.Errorf("invalid aspect ratio %q, allowed: 1:1, 3:4, 4:3, 9:16, 16:9", a.genAspect))
	}
	if a.genSize != "" && !core.ImageSize(a.genSize).IsValid() {
		return exitWithCode(ExitValidation,
			fmt.Errorf("invalid image size %q, allowed: 1K, 2K, 4K", a.genSize))
	}

	images, err := a.readAttachments(a.genImages)
	if err != nil {
		return err
	}

	client, err := a.newProviderClient()
	if err != nil {
		return err
	}

	result, err := client.Generate(cmd.Context(), &core.GenerateRequest{
		Model:       core.ModelID(a.model),
		Prompt:      a.genPrompt,
		AspectRatio: core.AspectRatio(a.genAspect),
		Size:        core.ImageSize(a.genSize),
		Images:      images,
	})
	if err != nil {
		return a.handleProviderError(err)
	}

	return a.writeImageResult(result, a.genOutput)
}
