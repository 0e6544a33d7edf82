/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/raccoonbooks/biblio-cli/internal/util"
	"github.com/spf13/cobra"
)

func personFromFlags(name string) model.Person {
	return model.Person{
		Name:    name,
		Email:   personEmail,
		Phone:   personPhone,
		Address: personAddress,
	}
}

var personSearchQuery string
var personPageSize int
var personEmail string
var personPhone string
var personAddress string
var personForceDelete bool

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:     "person",
	Short:   "Manage library members",
	Aliases: []string{"p"},
}

var listPersonCmd = &cobra.Command{
	Use:     "list",
	Short:   "List registered members",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		people, err := client.ListPeople(cmd.Context())
		if err != nil {
			log.Printf("❌ Error loading people: %v\n", failMessage(err))
			os.Exit(1)
		}

		filtered := util.SearchPeople(people, personSearchQuery)

		reader := bufio.NewReader(os.Stdin)
		page := 0

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("People: %v shown\n", len(filtered))
		fmt.Println(strings.Repeat("=", 30))

		// `--limit` がない場合は全件表示
		if personPageSize == -1 {
			personPageSize = len(filtered)
		}

		for {
			start := page * personPageSize
			end := start + personPageSize

			if start >= len(filtered) {
				fmt.Println("No more people to display.")
				break
			}
			if end > len(filtered) {
				end = len(filtered)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleDouble)
			t.Style().Options.SeparateRows = false

			t.AppendHeader(table.Row{
				text.FgGreen.Sprintf("ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Name")),
				text.FgGreen.Sprintf("Email"),
				text.FgGreen.Sprintf("Phone"),
				text.FgGreen.Sprintf("Address"),
			})

			for _, person := range filtered[start:end] {
				phone := person.Phone
				if phone == "" {
					phone = "-"
				}
				t.AppendRow(table.Row{
					person.ID,
					person.Name,
					person.Email,
					phone,
					person.Address,
				})
			}

			t.Render()

			if end >= len(filtered) {
				break
			}

			fmt.Print("\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if input == "q" {
				break
			}

			page++
		}
	},
}

var newPersonCmd = &cobra.Command{
	Use:     "new [name]",
	Short:   "Register a new member",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		person := personFromFlags(args[0])
		if err := person.Validate(); err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		created, err := client.CreatePerson(cmd.Context(), person)
		if err != nil {
			log.Printf("❌ Failed to create person: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Person %d (%s) has been created successfully.\n", created.ID, created.Name)
	},
}

var showPersonCmd = &cobra.Command{
	Use:     "show [personID]",
	Short:   "Show member detail",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		personID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid person ID: %s\n", args[0])
			os.Exit(1)
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		person, err := client.GetPerson(cmd.Context(), personID)
		if err != nil {
			log.Printf("❌ Error loading person: %v\n", failMessage(err))
			os.Exit(1)
		}

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fieldStyle := color.New(color.FgHiGreen).SprintFunc()

		fmt.Printf("[%v] %v\n", titleStyle(person.ID), titleStyle(person.Name))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Email: %v\n", fieldStyle(person.Email))
		fmt.Printf("Phone: %v\n", fieldStyle(person.Phone))
		fmt.Printf("Address: %v\n", fieldStyle(person.Address))
	},
}

var editPersonCmd = &cobra.Command{
	Use:     "edit [personID]",
	Short:   "Update a member",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"e"},
	Run: func(cmd *cobra.Command, args []string) {
		personID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid person ID: %s\n", args[0])
			os.Exit(1)
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		person, err := client.GetPerson(cmd.Context(), personID)
		if err != nil {
			log.Printf("❌ Error loading person: %v\n", failMessage(err))
			os.Exit(1)
		}

		if cmd.Flags().Changed("name") {
			person.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("email") {
			person.Email = personEmail
		}
		if cmd.Flags().Changed("phone") {
			person.Phone = personPhone
		}
		if cmd.Flags().Changed("address") {
			person.Address = personAddress
		}

		if err := person.Validate(); err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		updated, err := client.UpdatePerson(cmd.Context(), personID, person)
		if err != nil {
			log.Printf("❌ Failed to update person: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Person %d (%s) updated successfully.\n", updated.ID, updated.Name)
	},
}

var deletePersonCmd = &cobra.Command{
	Use:     "remove [personID]",
	Short:   "Delete a member",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		personID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Printf("❌ Invalid person ID: %s\n", args[0])
			os.Exit(1)
		}

		if !personForceDelete && !confirm(fmt.Sprintf("Delete person %d?", personID)) {
			fmt.Println("Aborted.")
			return
		}

		client, _, _, err := newClient()
		if err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		if err := client.DeletePerson(cmd.Context(), personID); err != nil {
			log.Printf("❌ Failed to delete person: %v\n", failMessage(err))
			os.Exit(1)
		}

		fmt.Printf("✅ Person %d deleted.\n", personID)
	},
}

func init() {
	personCmd.AddCommand(listPersonCmd)
	personCmd.AddCommand(newPersonCmd)
	personCmd.AddCommand(showPersonCmd)
	personCmd.AddCommand(editPersonCmd)
	personCmd.AddCommand(deletePersonCmd)
	rootCmd.AddCommand(personCmd)
	listPersonCmd.Flags().StringVarP(&personSearchQuery, "search", "q", "", "Search by name, email, phone or address")
	listPersonCmd.Flags().IntVar(&personPageSize, "limit", 20, "Set the number of rows to display per page (-1 for all)")
	newPersonCmd.Flags().StringVar(&personEmail, "email", "", "Email address")
	newPersonCmd.Flags().StringVar(&personPhone, "phone", "", "Phone number (optional)")
	newPersonCmd.Flags().StringVar(&personAddress, "address", "", "Postal address")
	editPersonCmd.Flags().String("name", "", "New name")
	editPersonCmd.Flags().StringVar(&personEmail, "email", "", "New email address")
	editPersonCmd.Flags().StringVar(&personPhone, "phone", "", "New phone number")
	editPersonCmd.Flags().StringVar(&personAddress, "address", "", "New postal address")
	deletePersonCmd.Flags().BoolVarP(&personForceDelete, "yes", "y", false, "Skip the confirmation prompt")
}
