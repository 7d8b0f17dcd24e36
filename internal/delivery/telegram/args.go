package telegram

import (
	"errors"
	"strconv"
	"strings"
)

var errUsage = errors.New("usage")

// parsePayType accepts the words people actually type for the two pay types.
func parsePayType(s string) (hourly bool, err error) {
	switch strings.ToLower(s) {
	case "h", "hourly", "hour":
		return true, nil
	case "s", "salary", "salaried", "annual":
		return false, nil
	}
	return false, errUsage
}

// parseHireArgs reads "<name...> <hourly|salary> <wage>". Names may contain spaces.
func parseHireArgs(args []string) (name string, hourly bool, wage int, err error) {
	if len(args) < 3 {
		return "", false, 0, errUsage
	}
	n := len(args)
	if hourly, err = parsePayType(args[n-2]); err != nil {
		return "", false, 0, err
	}
	if wage, err = strconv.Atoi(args[n-1]); err != nil {
		return "", false, 0, errUsage
	}
	return strings.Join(args[:n-2], " "), hourly, wage, nil
}

// parseNameAmount reads "<name...> <integer>".
func parseNameAmount(args []string) (name string, amount int, err error) {
	if len(args) < 2 {
		return "", 0, errUsage
	}
	n := len(args)
	if amount, err = strconv.Atoi(args[n-1]); err != nil {
		return "", 0, errUsage
	}
	return strings.Join(args[:n-1], " "), amount, nil
}

// parseRenameArgs reads "<old> <new>" or, for names with spaces, "<old...> | <new...>".
func parseRenameArgs(payload string) (oldName, newName string, err error) {
	if i := strings.IndexByte(payload, '|'); i >= 0 {
		oldName = strings.TrimSpace(payload[:i])
		newName = strings.TrimSpace(payload[i+1:])
	} else {
		fields := strings.Fields(payload)
		if len(fields) != 2 {
			return "", "", errUsage
		}
		oldName, newName = fields[0], fields[1]
	}
	if oldName == "" || newName == "" {
		return "", "", errUsage
	}
	return oldName, newName, nil
}

// parseEditArgs reads "<old...> | <new...> <hourly|salary> <wage>", or
// "<old> <new> <hourly|salary> <wage>" when neither name has spaces.
func parseEditArgs(payload string) (oldName, newName string, hourly bool, wage int, err error) {
	var rest []string
	if i := strings.IndexByte(payload, '|'); i >= 0 {
		oldName = strings.TrimSpace(payload[:i])
		rest = strings.Fields(payload[i+1:])
	} else {
		fields := strings.Fields(payload)
		if len(fields) != 4 {
			return "", "", false, 0, errUsage
		}
		oldName, rest = fields[0], fields[1:]
	}
	if oldName == "" {
		return "", "", false, 0, errUsage
	}
	newName, hourly, wage, err = parseHireArgs(rest)
	if err != nil {
		return "", "", false, 0, err
	}
	return oldName, newName, hourly, wage, nil
}

// parseAmount reads the reply to a work prompt.
func parseAmount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, errUsage
	}
	return n, nil
}
