package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value interface{}) {
	*ve = append(*ve, ValidationError{Field: field, Value: value, Message: message})
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs ValidationErrors

	if c.PageSize < 0 {
		errs.Add("page_size", "must not be negative", c.PageSize)
	}
	if strings.TrimSpace(c.AWSCLI) == "" {
		errs.Add("aws_cli", "must not be empty", c.AWSCLI)
	}
	if strings.TrimSpace(c.ShellCommand) == "" {
		errs.Add("shell_command", "must not be empty", c.ShellCommand)
	}
	if c.EndpointURL != "" {
		u, err := url.Parse(c.EndpointURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs.Add("endpoint_url", "must be an absolute URL such as http://localhost:4566", c.EndpointURL)
		}
	}
	if c.Container != "" && c.SelectContainer {
		errs.Add("select_container", "cannot be combined with container", c.SelectContainer)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
