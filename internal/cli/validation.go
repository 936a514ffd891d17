package cli

import (
	"fmt"
	"regexp"
	"strings"
)

var questionnaireIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validateQuestionnaireID checks that an ID can be placed in a URL path
// segment as is. Returns an error with a helpful message otherwise.
func validateQuestionnaireID(id string) error {
	if id == "" {
		return fmt.Errorf("questionnaire ID must not be empty")
	}
	if questionnaireIDPattern.MatchString(id) {
		return nil
	}

	// Check if a whole link was pasted
	if strings.Contains(id, "/") {
		last := id[strings.LastIndex(strings.TrimRight(id, "/"), "/")+1:]
		last = strings.TrimRight(last, "/")
		if questionnaireIDPattern.MatchString(last) {
			return fmt.Errorf("invalid questionnaire ID '%s'. Pass only the ID, e.g. %s", id, last)
		}
	}

	// Generic invalid format
	return fmt.Errorf("invalid questionnaire ID '%s'. Use letters, digits, '-' or '_'", id)
}
