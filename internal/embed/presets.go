package embed

import (
	"errors"
	"fmt"
	"strings"
)

// Colors of the preset embeds.
const (
	LogColor   = ColorLatte
	WarnColor  = ColorOrange
	ErrorColor = ColorRed
)

const errorTitle = "An error occurred!"

// Log returns an embed for informational messages.
func Log(title, description string) (*Embed, error) {
	return New(Attrs{"title": title, "description": description, "color": LogColor})
}

// CommandLog returns a log embed with a footer naming the user who executed a command.
func CommandLog(title, description, user, iconURL string) (*Embed, error) {
	em, err := Log(title, description)
	if err != nil {
		return nil, err
	}
	f := Footer{Text: fmt.Sprintf("command executed by %s", user), IconURL: iconURL}
	if err := em.SetFooter(f); err != nil {
		return nil, err
	}
	return em, nil
}

// Warn returns an embed for warnings.
func Warn(title, description string) (*Embed, error) {
	return New(Attrs{"title": title, "description": description, "color": WarnColor})
}

// Error returns an embed reporting err.
// The description shows the chain of wrapped errors and is truncated to fit.
// When title is empty a generic title is used.
func Error(title string, err error) (*Embed, error) {
	if title == "" {
		title = errorTitle
	}
	desc, _ := Truncate(renderError(err), descriptionLength)
	return New(Attrs{"title": title, "description": desc, "color": ErrorColor})
}

// renderError returns a human readable trace of err and the errors it wraps.
func renderError(err error) string {
	var b strings.Builder
	b.WriteString("Error content:\n")
	if err == nil {
		b.WriteString("<nil>")
		return b.String()
	}
	b.WriteString(err.Error())
	last := err.Error()
	for e := errors.Unwrap(err); e != nil; e = errors.Unwrap(e) {
		msg := e.Error()
		if msg == last {
			continue
		}
		fmt.Fprintf(&b, "\ncaused by: %s (%T)", msg, e)
		last = msg
	}
	return b.String()
}
