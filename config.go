package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/magiconair/properties"

	"confirmpanel/slideconfirm"
)

var (
	panelVersion = "1.0.0" // Default panel version
	buildVersion = "_TAG_" // Placeholder for build version
	environment  *properties.Properties
)

func init() {
	if buildVersion != ("_" + "TAG" + "_") {
		panelVersion = buildVersion
	}
}

// GetPort returns the readiness port of the managed command from
// panel.properties, defaulting to "8080".
func GetPort() string {
	return getProp("PANEL_PORT", "8080")
}

// GetCommand returns the managed command line, empty if none is configured.
func GetCommand() string {
	return getProp("PANEL_COMMAND", "")
}

// GetReleasesURL returns the release-feed URL for the update check, empty to
// disable the check.
func GetReleasesURL() string {
	return getProp("PANEL_RELEASES_URL", "")
}

// SliderConfig builds the slider settings from panel.properties, falling
// back to the package defaults for missing or unparsable keys.
func SliderConfig() slideconfirm.Config {
	cfg := slideconfirm.DefaultConfig()
	cfg.Threshold = getFloatProp("PANEL_THRESHOLD", cfg.Threshold)
	cfg.MinPercentage = getFloatProp("PANEL_MIN_PERCENTAGE", cfg.MinPercentage)
	cfg.ResetOnCompletion = getBoolProp("PANEL_RESET_ON_COMPLETION", cfg.ResetOnCompletion)
	if ms := getFloatProp("PANEL_DURATION_MS", float64(cfg.Duration/time.Millisecond)); ms > 0 {
		cfg.Duration = time.Duration(ms) * time.Millisecond
	}
	return cfg
}

func getProp(key, fallback string) string {
	if environment == nil {
		return fallback
	}
	value, ok := environment.Get(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getFloatProp(key string, fallback float64) float64 {
	raw := getProp(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return v
}

func getBoolProp(key string, fallback bool) bool {
	raw := getProp(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return v
}

func InitEnv() {
	// Check for the presence of panel.properties in the install dir
	props := properties.NewProperties()
	envFilePath := filepath.Join(panelInstallDir, "panel.properties")
	if _, err := os.Stat(envFilePath); os.IsNotExist(err) {
		if err := os.MkdirAll(panelInstallDir, 0755); err != nil {
			log.Fatalf("Failed to create install directory: %v", err)
		}
		props.Set("PANEL_PORT", "8080")
		file, err := os.Create(envFilePath)
		if err != nil {
			log.Fatalf("Failed to create panel.properties file: %v", err)
		}
		defer file.Close()
		if _, err := props.Write(file, properties.UTF8); err != nil {
			log.Fatalf("Failed to write panel.properties file: %v", err)
		}
		// Add commented-out entries
		rawString := `# Command the panel launches and guards (remove the leading # to uncomment)
#PANEL_COMMAND=java -jar server.jar

# Slide-to-confirm tuning (remove the leading # to uncomment)
#PANEL_THRESHOLD=50
#PANEL_MIN_PERCENTAGE=0
#PANEL_DURATION_MS=300
#PANEL_RESET_ON_COMPLETION=true

# Release feed for the update notification (remove the leading # to uncomment)
#PANEL_RELEASES_URL=https://api.github.com/repos/example/confirmpanel/releases`

		if _, err := file.WriteString(rawString); err != nil {
			log.Fatalf("Failed to write comment to panel.properties file: %v", err)
		}
	}

	// Load the properties into the global variable environment
	environment = properties.NewProperties()
	content, err := os.ReadFile(envFilePath)
	if err != nil {
		log.Fatalf("Failed to read panel.properties file: %v", err)
	}
	if err := environment.Load(content, properties.UTF8); err != nil {
		log.Fatalf("Failed to load panel.properties file: %v", err)
	}

	// Log the properties for debugging
	log.Printf("Loaded properties from %s:", envFilePath)
	for _, key := range environment.Keys() {
		value, _ := environment.Get(key)
		log.Printf("  %s = %s", key, value)
	}
}
