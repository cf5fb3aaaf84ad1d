package cmd

import (
	"log"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"listinglab/internal/db"
	"listinglab/internal/repository"
)

var uploadsLimit int

func init() {
	uploadsCmd.Flags().IntVarP(&uploadsLimit, "limit", "n", 20, "number of uploads to list")
	rootCmd.AddCommand(uploadsCmd)
}

var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Lists the spreadsheets most recently uploaded to the web dashboard.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		conn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		uploads, err := (&repository.UploadRepository{DB: conn}).List(uploadsLimit)
		if err != nil {
			log.Fatal(err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "File", "Size", "Rows", "Columns", "Uploaded"})
		for _, u := range uploads {
			t.AppendRow(table.Row{u.ID, u.FileName, humanize.Bytes(uint64(u.SizeBytes)), u.Rows, u.Columns, humanize.Time(u.UploadedAt)})
		}
		t.Render()
	},
}
