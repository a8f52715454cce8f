package main

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadFailureMessage(t *testing.T) {
	msg := loadFailureMessage("./animation.jpg", errors.New("open image: no such file or directory"))

	expected := "Failed to load image. Ensure the file path './animation.jpg' is correct: "
	if !strings.HasPrefix(msg, expected) {
		t.Errorf("loadFailureMessage() = %q, expected prefix %q", msg, expected)
	}
	if !strings.HasSuffix(msg, "no such file or directory") {
		t.Errorf("loadFailureMessage() = %q, expected the cause at the end", msg)
	}
}
