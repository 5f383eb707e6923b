package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"

	"formkit/internal/config"
	"formkit/internal/eventbus"
	"formkit/theme"
)

// tagOptions is the candidate set offered by the demo's tag field
var tagOptions = []string{"bug", "feature", "docs", "refactor", "test", "ci", "design"}

// submission is one persisted form snapshot
type submission struct {
	Description string    `toml:"description"`
	Tags        []string  `toml:"tags"`
	SubmittedAt time.Time `toml:"submitted_at"`
}

// submissionLog is the on-disk collection of submissions
type submissionLog struct {
	Submissions []submission `toml:"submissions"`
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("formdemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// Load the theme palette
	palette := theme.DefaultPalette()
	if cfg.ThemePath != "" {
		palette, err = theme.LoadPalette(cfg.ThemePath)
		if err != nil {
			log.Printf("Falling back to default theme: %v", err)
			palette = theme.DefaultPalette()
		}
	}

	// Create the form model and program
	form := newFormModel(bus, cfg, palette.Styles(), tagOptions)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.MouseInput {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(form, opts...)

	// Persist submissions as they arrive and notify the UI
	bus.Subscribe(eventbus.EventFormSubmitted, func(e eventbus.Event) {
		event, ok := e.(eventbus.FormSubmittedEvent)
		if !ok {
			return
		}
		if err := appendSubmission(cfg.OutputPath, event); err != nil {
			log.Printf("Failed to save submission: %v", err)
			bus.Publish(eventbus.ErrorEvent{Err: err})
			return
		}
		bus.Publish(eventbus.SaveCompletedEvent{Path: cfg.OutputPath})
	})
	bus.Subscribe(eventbus.EventSaveCompleted, func(e eventbus.Event) {
		if event, ok := e.(eventbus.SaveCompletedEvent); ok {
			p.Send(savedMsg{path: event.Path})
		}
	})
	bus.Subscribe(eventbus.EventFieldChanged, func(e eventbus.Event) {
		if event, ok := e.(eventbus.FieldChangedEvent); ok {
			log.Printf("Field changed: %s", event.Field)
		}
	})

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads from the given path, or the default location when no
// path is given. Failures fall back to the default configuration.
func loadConfig(svc config.Service, path string) *config.Config {
	if path != "" {
		cfg, err := svc.LoadFromPath(path)
		if err != nil {
			log.Printf("Error loading config from %s: %v", path, err)
			return config.DefaultConfig()
		}
		return cfg
	}

	cfg, err := svc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// appendSubmission reads the existing submission log, appends the new
// snapshot and writes the file back as TOML.
func appendSubmission(path string, event eventbus.FormSubmittedEvent) error {
	var entries submissionLog
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to parse submission log: %w", err)
		}
	}

	entry := submission{SubmittedAt: time.Now()}
	if description, ok := event.Fields["description"].(string); ok {
		entry.Description = description
	}
	if tags, ok := event.Fields["tags"].([]string); ok {
		entry.Tags = tags
	}
	entries.Submissions = append(entries.Submissions, entry)

	data, err := toml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode submission log: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write submission log: %w", err)
	}
	return nil
}
