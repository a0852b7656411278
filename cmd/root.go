package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"eventpass-tui/tui"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "eventpass",
	Short: "Browse events, pick seats and manage tickets from the terminal",
	Long:  `EventPass lets you browse upcoming events, select seats on a live map and keep your tickets, all without leaving the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(tui.New(), tea.WithAltScreen()).Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of EventPass",
	Run: func(cmd *cobra.Command, args []string) {
		out := fmt.Sprintf("eventpass %s", version)
		if commit != "none" && commit != "" {
			out += fmt.Sprintf(" (%s)", commit)
		}
		fmt.Println(out)
	},
}

func Execute() {
	rootCmd.AddCommand(eventsCmd, ticketsCmd, versionCmd)
	eventsCmd.Flags().String("category", "", "only list events in this category")
	eventsCmd.Flags().Bool("featured", false, "only list featured events")
	ticketsCmd.Flags().String("status", "", "filter by ticket status [valid, used, cancelled]")
	ticketsCmd.Flags().Bool("asc", false, "sort by event date ascending")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
