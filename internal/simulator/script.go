package simulator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chrisdamba/ridehailsim/internal/models"
)

// LoadEventScript reads a textual event script and returns the seed events
// in file order. Each non-blank, non-comment line is
// "<timestamp> <EventType> <args...>"; malformed lines fail the whole load
// so that bad input never reaches the queue.
func LoadEventScript(path string) ([]models.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event script: %w", err)
	}
	defer file.Close()

	events, err := ParseEventScript(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// ParseEventScript parses script lines from r.
func ParseEventScript(r io.Reader) ([]models.Event, error) {
	var events []models.Event

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		event, err := parseScriptLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event script: %w", err)
	}

	return events, nil
}

func parseScriptLine(line string) (models.Event, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("expected \"<timestamp> <EventType> <args...>\", got %q", line)
	}

	timestamp, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", tokens[0], err)
	}
	if timestamp < 0 {
		return nil, fmt.Errorf("timestamp must be non-negative, got %d", timestamp)
	}

	switch eventType := tokens[1]; eventType {
	case models.EventDriverRequest:
		if len(tokens) != 5 {
			return nil, fmt.Errorf("DriverRequest needs <id> <location> <speed>, got %q", line)
		}
		location, err := models.ParseLocation(tokens[3])
		if err != nil {
			return nil, err
		}
		speed, err := strconv.Atoi(tokens[4])
		if err != nil {
			return nil, fmt.Errorf("invalid speed %q: %w", tokens[4], err)
		}
		driver, err := models.NewDriver(tokens[2], location, speed)
		if err != nil {
			return nil, err
		}
		return models.NewDriverRequest(timestamp, driver), nil

	case models.EventRiderRequest:
		if len(tokens) != 6 {
			return nil, fmt.Errorf("RiderRequest needs <id> <origin> <destination> <patience>, got %q", line)
		}
		origin, err := models.ParseLocation(tokens[3])
		if err != nil {
			return nil, err
		}
		destination, err := models.ParseLocation(tokens[4])
		if err != nil {
			return nil, err
		}
		patience, err := strconv.ParseInt(tokens[5], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid patience %q: %w", tokens[5], err)
		}
		rider, err := models.NewRider(tokens[2], origin, destination, patience)
		if err != nil {
			return nil, err
		}
		return models.NewRiderRequest(timestamp, rider), nil

	default:
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}
}
