package copyright

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultAuthor is used when no author name is configured.
	DefaultAuthor = "Unknown Author"
	// DefaultCompany is used when no company name is configured.
	DefaultCompany = "Unknown Company"
)

// Attribution identifies who is touching a file and when.
type Attribution struct {
	Author  string
	Company string
	Date    time.Time
}

func (a Attribution) author() string {
	if s := strings.TrimSpace(a.Author); s != "" {
		return s
	}
	return DefaultAuthor
}

func (a Attribution) company() string {
	if s := strings.TrimSpace(a.Company); s != "" {
		return s
	}
	return DefaultCompany
}

// WrittenBy returns "Written by {author}, {Month} {year}".
func (a Attribution) WrittenBy() string {
	return fmt.Sprintf("Written by %s, %s %d", a.author(), a.Date.Month(), a.Date.Year())
}

// UpdatedBy returns "Updated by {author}, {Month} {year}".
func (a Attribution) UpdatedBy() string {
	return fmt.Sprintf("Updated by %s, %s %d", a.author(), a.Date.Month(), a.Date.Year())
}

// Notice returns a fresh copyright block ending in a newline.
func Notice(a Attribution) string {
	lines := []string{
		fmt.Sprintf("/* Copyright (C) %d, %s", a.Date.Year(), a.company()),
		"** All rights reserved.",
		"**",
		"** Unauthorized copying of this file, via any medium is strictly prohibited",
		"** Proprietary and confidential",
		"**",
		"** " + a.WrittenBy(),
		"*/",
	}
	return strings.Join(lines, "\n") + "\n"
}
