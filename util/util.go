package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// Bullet prefixed to every option shown in the file picker
const bullet = "○ "

// Lists the regular files of a directory, skipping hidden files, sorted by name
func ListFiles(dirName string) ([]string, error) {
	entries, err := os.ReadDir(dirName)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, f := range entries {
		if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}
		files = append(files, f.Name())
	}
	sort.Strings(files)

	return files, nil
}

// Clean up a picker response to remove the bullet point
func FormatCliResponse(response string) string {
	return strings.Replace(response, bullet, "", -1)
}

// Prompt the user to select a file from dirName. This stands in for the file
// chooser dialog of the desktop tool.
func SelectFile(message string, dirName string) (string, error) {
	files, err := ListFiles(dirName)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no files to choose from in %s", dirName)
	}

	options := make([]string, 0, len(files))
	for _, f := range files {
		options = append(options, bullet+f)
	}

	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return filepath.Join(dirName, FormatCliResponse(selected)), nil
}

// Checks that path names a readable regular file
func CheckFileIsValid(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Wraps s in color when enabled, otherwise returns s unchanged
func Colorize(s string, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + TerminalReset
}

const (
	TerminalReset = "\033[0m"
	TerminalRed   = "\033[31m"
	TerminalGreen = "\033[32m"
	TerminalCyan  = "\033[36m"
)
