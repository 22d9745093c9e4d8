package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"
)

var errNotFound = errors.New("not found")

// verifyChanges fails when a required needle is missing from filetext.
func verifyChanges(filetext string, changes []filechange) error {
	for _, fc := range changes {
		if fc.required && !strings.Contains(filetext, fc.needle) {
			return fmt.Errorf("%s %w", fc.name, errNotFound)
		}
	}
	return nil
}

// applyChanges verifies filetext and then runs every replacement in order.
func applyChanges(filetext string, changes []filechange) (string, error) {
	if err := verifyChanges(filetext, changes); err != nil {
		return "", err
	}
	for _, fc := range changes {
		n := strings.Count(filetext, fc.needle)
		if n == 0 {
			log.Printf("Info\tNot Found '%s', nothing to replace", fc.name)
			continue
		}
		if fc.count >= 0 && n > fc.count {
			n = fc.count
		}
		log.Printf("Info\tReplacing %d of '%s'", n, fc.name)
		filetext = strings.Replace(filetext, fc.needle, fc.replacement, fc.count)
	}
	return filetext, nil
}

func editFile(filepath string, changes []filechange) error {
	log.Printf("Starting\teditFile on: %s", filepath)

	info, err := os.Stat(filepath)
	if err != nil {
		return err
	}

	fileBytes, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	if !utf8.Valid(fileBytes) {
		return fmt.Errorf("%s is not valid utf-8", filepath)
	}

	newtext, err := applyChanges(string(fileBytes), changes)
	if err != nil {
		log.Printf("Error\t%v in %s", err, filepath)
		return err
	}

	err = os.WriteFile(filepath, []byte(newtext), info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("error writing file %s: %w", filepath, err)
	}
	log.Printf("Info\tWrote %s", filepath)
	return nil
}
