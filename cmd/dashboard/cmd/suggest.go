package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"listinglab/internal/dataset"
	"listinglab/internal/insights"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <file>",
	Short: "Lists data-quality suggestions for a spreadsheet, using OpenAI when OPENAI_API_KEY is set.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		t, err := loadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		suggestions, err := insights.New(cfg.OpenAIKey, cfg.OpenAIModel).Suggest(cmd.Context(), dataset.Summarize(t))
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range suggestions {
			fmt.Println("-", s)
		}
	},
}
