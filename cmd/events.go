package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"eventpass-tui/catalog"
	"eventpass-tui/model"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List upcoming events",
	Long:  `List the event catalog as a table, optionally narrowed to a category or to featured events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		featuredOnly, _ := cmd.Flags().GetBool("featured")

		var events []model.Event
		if featuredOnly {
			events = catalog.FeaturedEvents()
		} else {
			events = catalog.EventsByCategory(category)
		}
		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Event", "Date", "Location", "Category", "From"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 28},
			{Number: 4, WidthMax: 32},
		})
		for _, ev := range events {
			t.AppendRow(table.Row{
				ev.Id,
				ev.Title,
				ev.Date.Format(time.DateOnly),
				ev.Location,
				ev.Category,
				fmt.Sprintf("$%.2f", ev.Price),
			})
		}
		t.Render()
		return nil
	},
}
