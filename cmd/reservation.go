/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/raccoonbooks/biblio-cli/internal/api"
	"github.com/raccoonbooks/biblio-cli/internal/library"
	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/raccoonbooks/biblio-cli/internal/util"
	"github.com/spf13/cobra"
)

var reservationSearchQuery string
var reservationPerson int64
var reservationBook int64
var reservationYes bool

// reservationCmd represents the reservation command
var reservationCmd = &cobra.Command{
	Use:     "reservation",
	Short:   "Manage reservations and returns",
	Aliases: []string{"r"},
}

// reserve posts the reservation and translates the server's conflict
// rejection into the fixed message, without inspecting the payload.
func reserve(cmd *cobra.Command, client *api.Client, personID, bookID int64) (model.Reservation, error) {
	created, err := client.CreateReservation(cmd.Context(), model.ReservationRequest{
		PersonID: personID,
		BookID:   bookID,
	})
	if err != nil {
		if api.IsConflict(err) {
			log.Printf("❌ %s\n", alreadyReservedMsg)
		} else {
			log.Printf("❌ Failed to create reservation: %v\n", failMessage(err))
		}
		return model.Reservation{}, err
	}
	return created, nil
}

func renderReservationsTable(reservations []model.Reservation, now time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Person")),
		text.FgGreen.Sprintf("Book"),
		text.FgGreen.Sprintf("Start"),
		text.FgGreen.Sprintf("Due"),
		text.FgGreen.Sprintf("Overdue"),
	})

	for _, r := range reservations {
		personName := "-"
		if r.Person != nil {
			personName = r.Person.Name
		}
		bookTitle := "-"
		if r.Book != nil {
			bookTitle = r.Book.Title
		}
		start := "-"
		if r.StartDate != nil {
			start = r.StartDate.Format("2006-01-02 15:04")
		}

		assessment := library.Assess(r.StartDate, now)
		overdue := text.FgHiGreen.Sprintf("on time")
		if assessment.OverdueDays > 0 {
			overdue = text.FgHiRed.Sprintf("%d day(s) / R$ %.2f", assessment.OverdueDays, assessment.Fee)
		}

		t.AppendRow(table.Row{
			r.ID,
			personName,
			bookTitle,
			start,
			assessment.DueDate.Format("2006-01-02"),
			overdue,
		})
	}

	t.Render()
}

// loadOpenReservations refetches and renders the open list, the CLI's
// version of the page reload after a return or cancellation.
func loadOpenReservations(cmd *cobra.Command, client *api.Client) {
	reservations, err := client.ListReservations(cmd.Context())
	if err != nil {
		log.Printf("⚠️ Failed to reload reservations: %v\n", failMessage(err))
		return
	}
	open := util.OpenReservations(reservations)
	fmt.Printf("\nOpen reservations: %d\n", len(open))
	renderReservationsTable(open, time.Now())
}

var listReservationCmd = &cobra.Command{
	Use:     "list",
	Short:   "List open reservations",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		reservations, err := client.ListReservations(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading reservations: %v\n", failMessage(err))
			os.Exit(1)
		}

		open := util.OpenReservations(reservations)
		filtered := util.SearchReservations(open, reservationSearchQuery)

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Reservations: %v open\n", len(filtered))
		fmt.Println(strings.Repeat("=", 30))

		renderReservationsTable(filtered, time.Now())
	},
}

var newReservationCmd = &cobra.Command{
	Use:     "new",
	Short:   "Reserve a book for a member",
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		book, err := client.GetBook(cmd.Context(), reservationBook)
		if err != nil {
			log.Printf("❌ Error loading book: %v\n", failMessage(err))
			os.Exit(1)
		}

		reservations, err := client.ListReservations(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading reservations: %v\n", failMessage(err))
			os.Exit(1)
		}

		availability := library.Resolve(reservations)
		if availability.IsReserved(book) {
			log.Printf("❌ %s\n", alreadyReservedMsg)
			os.Exit(1)
		}

		created, err := reserve(cmd, client, reservationPerson, reservationBook)
		if err != nil {
			os.Exit(1)
		}

		fmt.Printf("✅ Reservation %d created for book %q.\n", created.ID, book.Title)
	},
}

var returnReservationCmd = &cobra.Command{
	Use:   "return [reservationID]",
	Short: "Return a book, charging the late fee when due",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reservationID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid reservation ID: %s\n", args[0])
			os.Exit(1)
		}

		client, _, zapLog, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		reservations, err := client.ListReservations(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading reservations: %v\n", failMessage(err))
			os.Exit(1)
		}

		var target *model.Reservation
		for i := range reservations {
			if reservations[i].ID == reservationID && reservations[i].Open() {
				target = &reservations[i]
				break
			}
		}
		if target == nil {
			log.Printf("❌ Reservation %d not found or already closed\n", reservationID)
			os.Exit(1)
		}

		assessment := library.Assess(target.StartDate, time.Now())

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fieldStyle := color.New(color.FgHiGreen).SprintFunc()
		feeStyle := color.New(color.FgHiYellow).SprintFunc()

		fmt.Printf("%s\n", titleStyle("Confirm return"))
		fmt.Println(strings.Repeat("-", 50))
		if target.Book != nil {
			fmt.Printf("Book: %v\n", fieldStyle(target.Book.Title))
		}
		if target.Person != nil {
			fmt.Printf("Person: %v\n", fieldStyle(target.Person.Name))
		}
		fmt.Printf("Overdue: %v\n", feeStyle(fmt.Sprintf("%d day(s)", assessment.OverdueDays)))
		fmt.Printf("Fine: %v\n", feeStyle(fmt.Sprintf("R$ %.2f", assessment.Fee)))
		if assessment.OverdueDays > 0 {
			fmt.Println("The fine will be recorded automatically on confirmation.")
		}

		if !reservationYes && !confirm("Confirm return?") {
			fmt.Println("Aborted.")
			return
		}

		service := library.NewReturnService(client, zapLog)
		outcome, err := service.Return(cmd.Context(), *target)
		if err != nil {
			if errors.Is(err, library.ErrMissingPerson) {
				log.Printf("❌ Reservation has no person attached.\n")
			} else {
				log.Printf("❌ Failed to return: %v\n", failMessage(err))
			}
			os.Exit(1)
		}

		if outcome.FineID != 0 {
			fmt.Printf("✅ Book returned. Fine %d recorded (R$ %.2f, %d day(s) late).\n",
				outcome.FineID, outcome.Fee, outcome.OverdueDays)
		} else {
			fmt.Println("✅ Book returned on time, no fine recorded.")
		}

		loadOpenReservations(cmd, client)
	},
}

var cancelReservationCmd = &cobra.Command{
	Use:   "cancel [reservationID]",
	Short: "Cancel a reservation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reservationID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid reservation ID: %s\n", args[0])
			os.Exit(1)
		}

		if !reservationYes && !confirm(fmt.Sprintf("Cancel reservation %d?", reservationID)) {
			fmt.Println("Aborted.")
			return
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		if err := client.CancelReservation(cmd.Context(), reservationID); err != nil {
			log.Printf("❌ Failed to cancel reservation: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Reservation %d cancelled.\n", reservationID)

		loadOpenReservations(cmd, client)
	},
}

func init() {
	reservationCmd.AddCommand(listReservationCmd)
	reservationCmd.AddCommand(newReservationCmd)
	reservationCmd.AddCommand(returnReservationCmd)
	reservationCmd.AddCommand(cancelReservationCmd)
	rootCmd.AddCommand(reservationCmd)
	listReservationCmd.Flags().StringVarP(&reservationSearchQuery, "search", "q", "", "Search by person or book")
	newReservationCmd.Flags().Int64Var(&reservationPerson, "person", 0, "ID of the member")
	newReservationCmd.Flags().Int64Var(&reservationBook, "book", 0, "ID of the book")
	_ = newReservationCmd.MarkFlagRequired("person")
	_ = newReservationCmd.MarkFlagRequired("book")
	returnReservationCmd.Flags().BoolVarP(&reservationYes, "yes", "y", false, "Skip the confirmation prompt")
	cancelReservationCmd.Flags().BoolVarP(&reservationYes, "yes", "y", false, "Skip the confirmation prompt")
}
