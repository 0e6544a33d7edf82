/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/raccoonbooks/biblio-cli/internal/library"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a summary of the library",
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		ctx := cmd.Context()

		people, err := client.ListPeople(ctx)
		if err != nil {
			log.Printf("❌ Error loading people: %v\n", failMessage(err))
			os.Exit(1)
		}
		books, err := client.ListBooks(ctx)
		if err != nil {
			log.Printf("❌ Error loading books: %v\n", failMessage(err))
			os.Exit(1)
		}
		reservations, err := client.ListReservations(ctx)
		if err != nil {
			log.Printf("❌ Error loading reservations: %v\n", failMessage(err))
			os.Exit(1)
		}
		fines, err := client.ListFines(ctx)
		if err != nil {
			log.Printf("❌ Error loading fines: %v\n", failMessage(err))
			os.Exit(1)
		}

		availability := library.Resolve(reservations)
		available := availability.Available(books)

		now := time.Now()
		openCount := 0
		overdueCount := 0
		for _, r := range reservations {
			if !r.Open() {
				continue
			}
			openCount++
			if library.Assess(r.StartDate, now).OverdueDays > 0 {
				overdueCount++
			}
		}

		unpaidCount := 0
		unpaidTotal := 0.0
		for _, fine := range fines {
			if !fine.Paid {
				unpaidCount++
				unpaidTotal += fine.Amount
			}
		}

		var md strings.Builder
		md.WriteString("# Raccoon Books\n\n")
		md.WriteString(fmt.Sprintf("- **People**: %d registered\n", len(people)))
		md.WriteString(fmt.Sprintf("- **Books**: %d in the catalog, %d available\n", len(books), len(available)))
		md.WriteString(fmt.Sprintf("- **Open reservations**: %d (%d overdue)\n", openCount, overdueCount))
		md.WriteString(fmt.Sprintf("- **Unpaid fines**: %d totaling R$ %.2f\n", unpaidCount, unpaidTotal))

		if overdueCount > 0 {
			md.WriteString("\n## Overdue\n\n")
			for _, r := range reservations {
				if !r.Open() {
					continue
				}
				assessment := library.Assess(r.StartDate, now)
				if assessment.OverdueDays == 0 {
					continue
				}
				personName := "-"
				if r.Person != nil {
					personName = r.Person.Name
				}
				bookTitle := "-"
				if r.Book != nil {
					bookTitle = r.Book.Title
				}
				md.WriteString(fmt.Sprintf("- %s holds *%s*: %d day(s) late, R$ %.2f due\n",
					personName, bookTitle, assessment.OverdueDays, assessment.Fee))
			}
		}

		rendered, err := glamour.Render(md.String(), "dark")
		if err != nil {
			log.Printf("⚠️ Failed to render summary: %v", err)
			fmt.Println(md.String())
			return
		}
		fmt.Println(rendered)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
