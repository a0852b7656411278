package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"eventpass-tui/catalog"
	"eventpass-tui/model"
	"eventpass-tui/ticketing"
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List your tickets",
	Long:  `List your tickets as a table, optionally filtered by status and sorted by event date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		ascending, _ := cmd.Flags().GetBool("asc")

		ledger := ticketing.NewLedger(catalog.SeedTickets())
		tickets := ticketing.SortByDate(ledger.Filter(model.TicketStatus(status)), ascending)
		if len(tickets) == 0 {
			fmt.Println("No tickets found.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Event", "Date", "Venue", "Seat", "Price", "Status"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, AutoMerge: true, WidthMax: 28},
			{Number: 3, WidthMax: 28},
		})
		t.Style().Options.SeparateRows = true
		for _, ticket := range tickets {
			t.AppendRow(table.Row{
				ticket.EventName,
				ticket.EventDate.Format(time.DateOnly),
				ticket.Venue,
				ticket.SeatInfo,
				fmt.Sprintf("$%.2f", ticket.Price),
				string(ticket.Status),
			})
		}
		t.Render()
		return nil
	},
}
