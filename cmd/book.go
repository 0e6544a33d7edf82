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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/raccoonbooks/biblio-cli/internal/library"
	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/raccoonbooks/biblio-cli/internal/util"
	"github.com/spf13/cobra"
)

var bookTitleFilter string
var bookAuthorFilter string
var bookYearFilter string
var bookAuthor string
var bookYear int
var bookReservePerson int64
var bookAvailableOnly bool
var bookForceDelete bool

// Shown instead of the raw 409 payload when a reservation bounces.
const alreadyReservedMsg = "Book is already reserved."

// bookCmd represents the book command
var bookCmd = &cobra.Command{
	Use:     "book",
	Short:   "Manage the book catalog",
	Aliases: []string{"b"},
}

var listBookCmd = &cobra.Command{
	Use:     "list",
	Short:   "List books with their availability",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		books, err := client.ListBooks(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading books: %v\n", failMessage(err))
			os.Exit(1)
		}

		reservations, err := client.ListReservations(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading reservations: %v\n", failMessage(err))
			os.Exit(1)
		}

		availability := library.Resolve(reservations)

		filtered := util.FilterBooks(books, bookTitleFilter, bookAuthorFilter, bookYearFilter)
		if bookAvailableOnly {
			filtered = availability.Available(filtered)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Books: %v shown\n", len(filtered))
		fmt.Println(strings.Repeat("=", 30))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Author"),
			text.FgGreen.Sprintf("Year"),
			text.FgGreen.Sprintf("Status"),
		})

		for _, book := range filtered {
			status := text.FgHiGreen.Sprintf("available")
			if availability.IsReserved(book) {
				if holder, ok := availability.Holder(book.ID); ok {
					status = text.FgHiRed.Sprintf("reserved (%s)", holder.Name)
				} else {
					status = text.FgHiRed.Sprintf("reserved")
				}
			}

			t.AppendRow(table.Row{
				book.ID,
				book.Title,
				book.Author,
				book.Year,
				status,
			})
		}

		t.Render()
	},
}

var newBookCmd = &cobra.Command{
	Use:     "new [title]",
	Short:   "Add a book to the catalog",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		book := model.Book{
			Title:  args[0],
			Author: bookAuthor,
			Year:   bookYear,
		}
		if err := book.Validate(); err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		created, err := client.CreateBook(cmd.Context(), book)
		if err != nil {
			log.Printf("❌ Failed to create book: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Book %d (%s) has been created successfully.\n", created.ID, created.Title)
	},
}

var editBookCmd = &cobra.Command{
	Use:     "edit [bookID]",
	Short:   "Update a book",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid book ID: %s\n", args[0])
			os.Exit(1)
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		book, err := client.GetBook(cmd.Context(), bookID)
		if err != nil {
			log.Printf("❌ Error loading book: %v\n", failMessage(err))
			os.Exit(1)
		}

		if cmd.Flags().Changed("title") {
			book.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("author") {
			book.Author = bookAuthor
		}
		if cmd.Flags().Changed("year") {
			book.Year = bookYear
		}

		if err := book.Validate(); err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		updated, err := client.UpdateBook(cmd.Context(), bookID, book)
		if err != nil {
			log.Printf("❌ Failed to update book: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Book %d (%s) updated successfully.\n", updated.ID, updated.Title)
	},
}

var deleteBookCmd = &cobra.Command{
	Use:     "remove [bookID]",
	Short:   "Delete a book",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid book ID: %s\n", args[0])
			os.Exit(1)
		}

		if !bookForceDelete && !confirm(fmt.Sprintf("Delete book %d?", bookID)) {
			fmt.Println("Aborted.")
			return
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		if err := client.DeleteBook(cmd.Context(), bookID); err != nil {
			log.Printf("❌ Failed to delete book: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Book %d deleted.\n", bookID)
	},
}

var reserveBookCmd = &cobra.Command{
	Use:   "reserve [bookID]",
	Short: "Reserve an available book for a member",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid book ID: %s\n", args[0])
			os.Exit(1)
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		book, err := client.GetBook(cmd.Context(), bookID)
		if err != nil {
			log.Printf("❌ Error loading book: %v\n", failMessage(err))
			os.Exit(1)
		}

		reservations, err := client.ListReservations(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading reservations: %v\n", failMessage(err))
			os.Exit(1)
		}

		// Reserved books never reach the API; the same guard the
		// server enforces with a 409.
		availability := library.Resolve(reservations)
		if availability.IsReserved(book) {
			log.Printf("❌ %s\n", alreadyReservedMsg)
			os.Exit(1)
		}

		created, err := reserve(cmd, client, bookReservePerson, bookID)
		if err != nil {
			os.Exit(1)
		}

		fmt.Printf("✅ Book %q reserved (reservation %d).\n", book.Title, created.ID)
	},
}

func init() {
	bookCmd.AddCommand(listBookCmd)
	bookCmd.AddCommand(newBookCmd)
	bookCmd.AddCommand(editBookCmd)
	bookCmd.AddCommand(deleteBookCmd)
	bookCmd.AddCommand(reserveBookCmd)
	rootCmd.AddCommand(bookCmd)
	listBookCmd.Flags().StringVar(&bookTitleFilter, "title", "", "Filter by title")
	listBookCmd.Flags().StringVar(&bookAuthorFilter, "author", "", "Filter by author")
	listBookCmd.Flags().StringVar(&bookYearFilter, "year", "", "Filter by publication year")
	listBookCmd.Flags().BoolVar(&bookAvailableOnly, "available", false, "Show only books free to reserve")
	newBookCmd.Flags().StringVar(&bookAuthor, "author", "", "Author name")
	newBookCmd.Flags().IntVar(&bookYear, "year", 0, "Publication year")
	editBookCmd.Flags().String("title", "", "New title")
	editBookCmd.Flags().StringVar(&bookAuthor, "author", "", "New author")
	editBookCmd.Flags().IntVar(&bookYear, "year", 0, "New publication year")
	deleteBookCmd.Flags().BoolVarP(&bookForceDelete, "yes", "y", false, "Skip the confirmation prompt")
	reserveBookCmd.Flags().Int64Var(&bookReservePerson, "person", 0, "ID of the member reserving the book")
	_ = reserveBookCmd.MarkFlagRequired("person")
}
