package subtitle

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseSRT parses SRT content into lines. Malformed blocks are skipped, the
// same way a forgiving player treats them.
func ParseSRT(data []byte) []Line {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	blocks := strings.Split(content, "\n\n")
	var lines []Line

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		rows := strings.Split(block, "\n")
		if len(rows) < 3 {
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(rows[0]))
		if err != nil {
			continue
		}

		if !strings.Contains(rows[1], "-->") {
			continue
		}
		parts := strings.Split(rows[1], "-->")
		if len(parts) != 2 {
			continue
		}

		start, err := parseTimestamp(parts[0])
		if err != nil {
			continue
		}
		end, err := parseTimestamp(parts[1])
		if err != nil {
			continue
		}

		lines = append(lines, Line{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(rows[2:], "\n"),
		})
	}

	return lines
}

// FormatSRT renders lines as SRT content. Indices are renumbered
// sequentially; comment lines are skipped.
func FormatSRT(lines []Line) []byte {
	var sb strings.Builder
	n := 0
	for _, line := range lines {
		if line.Comment {
			continue
		}
		n++
		if n > 1 {
			sb.WriteString("\n")
		}
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString("\n")
		sb.WriteString(formatTimestamp(line.Start))
		sb.WriteString(" --> ")
		sb.WriteString(formatTimestamp(line.End))
		sb.WriteString("\n")
		sb.WriteString(line.Text)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// LoadFile reads and parses an SRT file.
func LoadFile(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	return ParseSRT(data), nil
}

// SaveFile writes lines to an SRT file.
func SaveFile(path string, lines []Line) error {
	if err := os.WriteFile(path, FormatSRT(lines), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// parseTimestamp converts "HH:MM:SS,mmm" to milliseconds. A period is
// accepted in place of the comma.
func parseTimestamp(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return ((hours*60+minutes)*60+seconds)*1000 + millis, nil
}

func formatTimestamp(millis int) string {
	if millis < 0 {
		millis = 0
	}
	hours := millis / 3600000
	millis %= 3600000
	minutes := millis / 60000
	millis %= 60000
	seconds := millis / 1000
	millis %= 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
