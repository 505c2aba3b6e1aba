package commands

import (
	"os"
	"strconv"

	"enrollment-backend/lib/util/serviceutil"
	"enrollment-backend/services/enrollment"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <semester> <year> [subject]",
	Short: "Fetches the seating availability listing for one term and prints it.",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		year, err := strconv.Atoi(args[1])
		if err != nil {
			serviceutil.Fatal("failed to parse year", err)
		}
		termKey, err := enrollment.EncodeTerm(args[0], year)
		if err != nil {
			serviceutil.Fatal("failed to encode term", err)
		}

		subject := cfg.PrimarySubject
		if len(args) == 3 {
			subject = args[2]
		}

		sections, err := createClient(cfg).Sections(cmd.Context(), termKey, subject)
		if err != nil {
			serviceutil.Fatal("failed to fetch sections", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"cat_no", "session", "title", "enrolled"})
		for _, s := range sections {
			t.AppendRow(table.Row{s.CatalogNumber, s.Session, s.Title, s.Enrolled})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
