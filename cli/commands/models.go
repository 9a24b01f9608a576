package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrafaeldie12/nano-banana-pro-mcp/core"
	"github.com/mrafaeldie12/nano-banana-pro-mcp/providers/gemini"
)

func (a *App) newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the supported models",
		RunE:  a.runModels,
	}
}

func (a *App) runModels(cmd *cobra.Command, args []string) error {
	ids := gemini.AllowedModels()

	if a.jsonOutput {
		infos := make([]*core.ModelInfo, 0, len(ids))
		for _, id := range ids {
			infos = append(infos, gemini.GetModelInfo(id))
		}
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return exitWithCode(ExitProvider, err)
		}
		fmt.Fprintln(a.stdout, string(data))
		return nil
	}

	for _, id := range ids {
		info := gemini.GetModelInfo(id)
		marker := " "
		if id == gemini.DefaultModel {
			marker = "*"
		}
		caps := make([]string, 0, len(info.Capabilities))
		for _, c := range info.Capabilities {
			caps = append(caps, string(c))
		}
		fmt.Fprintf(a.stdout, "%s %-28s %-44s %s\n", marker, info.ID, info.DisplayName, strings.Join(caps, ", "))
	}
	fmt.Fprintln(a.stdout, "\n* default model")
	return nil
}
