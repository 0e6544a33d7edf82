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

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/raccoonbooks/biblio-cli/internal/config"
	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Model struct {
	cursor    int
	fields    []string
	config    model.Config
	textInput textinput.Model
	editMode  bool
}

func newModel(cfg model.Config) tea.Model {
	return &Model{
		cursor:    0,
		fields:    generateFieldList(),
		config:    cfg,
		textInput: textinput.New(),
		editMode:  false,
	}
}

func generateFieldList() []string {
	return []string{
		"APIURL", "TimeoutSeconds", "LogLevel",
		"Export.Dir", "Export.Bucket", "Export.AWSProfile", "Export.AWSRegion",
		"Save & Exit",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) forceRedraw() tea.Msg {
	return tea.WindowSizeMsg{}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.updateConfig()
				m.editMode = false
				m.textInput.Blur()
				return m, tea.Batch(tea.ClearScreen, m.forceRedraw)
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.fields)-1 {
				if err := config.Save(m.config); err != nil {
					log.Printf("⚠️ Failed to save config file: %v", err)
				}
				return m, tea.Quit
			}
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			m.textInput.Focus()
		}
	}

	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString("\033[H\033[2J")
	s.WriteString("📄 Configure biblio\n\n")

	for i, field := range generateFieldList() {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}

		value := m.getFieldValue(field)

		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field, value))
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + generateFieldList()[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to save, ESC to cancel)\n")
	} else {
		s.WriteString("\n⬆️⬇️ to move, Enter to edit, Q to quit\n")
	}

	return s.String()
}

func (m Model) getFieldValue(field string) string {
	switch field {
	case "APIURL":
		return m.config.APIURL
	case "TimeoutSeconds":
		return strconv.Itoa(m.config.TimeoutSeconds)
	case "LogLevel":
		return m.config.LogLevel
	case "Export.Dir":
		return m.config.Export.Dir
	case "Export.Bucket":
		return m.config.Export.Bucket
	case "Export.AWSProfile":
		return m.config.Export.AWSProfile
	case "Export.AWSRegion":
		return m.config.Export.AWSRegion
	default:
		return "UNKNOWN"
	}
}

func (m *Model) updateConfig() {
	newValue := m.textInput.Value()

	switch m.fields[m.cursor] {
	case "APIURL":
		m.config.APIURL = newValue
	case "TimeoutSeconds":
		if newInt, err := strconv.Atoi(newValue); err == nil {
			m.config.TimeoutSeconds = newInt
		}
	case "LogLevel":
		m.config.LogLevel = newValue
	case "Export.Dir":
		m.config.Export.Dir = newValue
	case "Export.Bucket":
		m.config.Export.Bucket = newValue
	case "Export.AWSProfile":
		m.config.Export.AWSProfile = newValue
	case "Export.AWSRegion":
		m.config.Export.AWSRegion = newValue
	}

	if err := config.Save(m.config); err != nil {
		log.Printf("⚠️ Failed to save config file: %v", err)
	}
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := config.GetConfigPath()
		if err != nil {
			log.Printf("failed to get config path: %v", err)
		}

		fmt.Println(configPath)

		cfg := model.DefaultConfig()

		configByte, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("❌ Failed to read config file: %v", err)
				os.Exit(1)
			}
		} else if err = yaml.Unmarshal(configByte, &cfg); err != nil {
			log.Printf("failed to parse YAML: %v", err)
		}

		if _, err := tea.NewProgram(newModel(cfg)).Run(); err != nil {
			log.Fatalf("❌ Error running TUI: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
