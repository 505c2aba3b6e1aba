package commands

import (
	"fmt"
	"strconv"

	"enrollment-backend/lib/util/serviceutil"
	"enrollment-backend/services/enrollment"

	"github.com/spf13/cobra"
)

func init() {
	termCmd.AddCommand(termEncodeCmd)
	termCmd.AddCommand(termDecodeCmd)
	rootCmd.AddCommand(termCmd)
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Converts between semester/year and the numeric term key.",
}

var termEncodeCmd = &cobra.Command{
	Use:   "encode <semester> <year>",
	Short: "Prints the term key for a semester and year.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := strconv.Atoi(args[1])
		if err != nil {
			serviceutil.Fatal("failed to parse year", err)
		}
		key, err := enrollment.EncodeTerm(args[0], year)
		if err != nil {
			serviceutil.Fatal("failed to encode term", err)
		}
		fmt.Println(key)
	},
}

var termDecodeCmd = &cobra.Command{
	Use:   "decode <key>",
	Short: "Prints the semester and year for a term key.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := strconv.Atoi(args[0])
		if err != nil {
			serviceutil.Fatal("failed to parse term key", err)
		}
		semester, year, err := enrollment.DecodeTerm(key)
		if err != nil {
			serviceutil.Fatal("failed to decode term", err)
		}
		fmt.Printf("%s %d\n", semester, year)
	},
}
