/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/spf13/cobra"
)

var fineUnpaidOnly bool
var finePerson int64
var fineReservation int64
var fineAmount float64
var fineDescription string
var fineForceDelete bool

// fineCmd represents the fine command
var fineCmd = &cobra.Command{
	Use:     "fine",
	Short:   "Manage fines",
	Aliases: []string{"f"},
}

var listFineCmd = &cobra.Command{
	Use:     "list",
	Short:   "List fines",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		fines, err := client.ListFines(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading fines: %v\n", failMessage(err))
			os.Exit(1)
		}

		var filtered []model.Fine
		for _, fine := range fines {
			if fineUnpaidOnly && fine.Paid {
				continue
			}
			filtered = append(filtered, fine)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Fines: %v shown\n", len(filtered))
		fmt.Println(strings.Repeat("=", 30))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Person")),
			text.FgGreen.Sprintf("Book"),
			text.FgGreen.Sprintf("Amount"),
			text.FgGreen.Sprintf("Description"),
			text.FgGreen.Sprintf("Issued"),
			text.FgGreen.Sprintf("Status"),
		})

		for _, fine := range filtered {
			personName := "-"
			if fine.Person != nil {
				personName = fine.Person.Name
			}
			bookTitle := "-"
			if fine.Reservation != nil && fine.Reservation.Book != nil {
				bookTitle = fine.Reservation.Book.Title
			}

			status := text.FgHiRed.Sprintf("unpaid")
			if fine.Paid {
				status = text.FgHiGreen.Sprintf("paid")
			}

			t.AppendRow(table.Row{
				fine.ID,
				personName,
				bookTitle,
				fmt.Sprintf("R$ %.2f", fine.Amount),
				fine.Description,
				fine.IssuedAt.Format("2006-01-02"),
				status,
			})
		}

		t.Render()
	},
}

var newFineCmd = &cobra.Command{
	Use:     "new",
	Short:   "Record a fine by hand",
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		if fineAmount <= 0 {
			log.Printf("❌ Error: --amount must be greater than zero\n")
			os.Exit(1)
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		req := model.FineRequest{
			PersonID:    finePerson,
			Amount:      fineAmount,
			Description: fineDescription,
			IssuedAt:    time.Now(),
			Paid:        false,
		}
		if cmd.Flags().Changed("reservation") {
			req.ReservationID = &fineReservation
		}

		created, err := client.CreateFine(cmd.Context(), req)
		if err != nil {
			log.Printf("❌ Failed to create fine: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Fine %d recorded (R$ %.2f).\n", created.ID, created.Amount)
	},
}

var payFineCmd = &cobra.Command{
	Use:   "pay [fineID]",
	Short: "Mark a fine as paid",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fineID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid fine ID: %s\n", args[0])
			os.Exit(1)
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		paid := true
		updated, err := client.UpdateFine(cmd.Context(), fineID, model.FinePatch{Paid: &paid})
		if err != nil {
			log.Printf("❌ Failed to update fine: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Fine %d marked as paid.\n", updated.ID)
	},
}

var editFineCmd = &cobra.Command{
	Use:     "edit [fineID]",
	Short:   "Update a fine",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		fineID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid fine ID: %s\n", args[0])
			os.Exit(1)
		}

		var patch model.FinePatch
		if cmd.Flags().Changed("amount") {
			if fineAmount <= 0 {
				log.Printf("❌ Error: --amount must be greater than zero\n")
				os.Exit(1)
			}
			patch.Amount = &fineAmount
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &fineDescription
		}
		if patch.Amount == nil && patch.Description == nil {
			log.Printf("❌ Nothing to update, pass --amount or --description\n")
			os.Exit(1)
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		updated, err := client.UpdateFine(cmd.Context(), fineID, patch)
		if err != nil {
			log.Printf("❌ Failed to update fine: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Fine %d updated.\n", updated.ID)
	},
}

var deleteFineCmd = &cobra.Command{
	Use:     "remove [fineID]",
	Short:   "Delete a fine",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		fineID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid fine ID: %s\n", args[0])
			os.Exit(1)
		}

		if !fineForceDelete && !confirm(fmt.Sprintf("Delete fine %d?", fineID)) {
			fmt.Println("Aborted.")
			return
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		if err := client.DeleteFine(cmd.Context(), fineID); err != nil {
			log.Printf("❌ Failed to delete fine: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Fine %d deleted.\n", fineID)
	},
}

func init() {
	fineCmd.AddCommand(listFineCmd)
	fineCmd.AddCommand(newFineCmd)
	fineCmd.AddCommand(payFineCmd)
	fineCmd.AddCommand(editFineCmd)
	fineCmd.AddCommand(deleteFineCmd)
	rootCmd.AddCommand(fineCmd)
	listFineCmd.Flags().BoolVar(&fineUnpaidOnly, "unpaid", false, "Show only unpaid fines")
	newFineCmd.Flags().Int64Var(&finePerson, "person", 0, "ID of the member to charge")
	newFineCmd.Flags().Int64Var(&fineReservation, "reservation", 0, "Related reservation ID (optional)")
	newFineCmd.Flags().Float64Var(&fineAmount, "amount", 0, "Amount in currency units")
	newFineCmd.Flags().StringVar(&fineDescription, "description", "", "Free-text reason")
	_ = newFineCmd.MarkFlagRequired("person")
	_ = newFineCmd.MarkFlagRequired("amount")
	editFineCmd.Flags().Float64Var(&fineAmount, "amount", 0, "New amount")
	editFineCmd.Flags().StringVar(&fineDescription, "description", "", "New description")
	deleteFineCmd.Flags().BoolVarP(&fineForceDelete, "yes", "y", false, "Skip the confirmation prompt")
}
