package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func targetPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(targetFile))
}

// setupConfig reads root/.env when there is one.
func setupConfig(root string) error {
	err := godotenv.Load(filepath.Join(root, ".env"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// setupLogging sends log output to a timestamped file in logDir, or nowhere
// when logDir is empty. The returned func closes the file.
func setupLogging(logDir string) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(io.Discard)
	if logDir == "" {
		return func() {}, nil
	}

	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	logpath := filepath.Join(logDir, fmt.Sprintf("logs-%v.log", time.Now().Format("20060102_150405")))
	logFile, err := os.OpenFile(logpath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(io.Discard)
		logFile.Close()
	}, nil
}

func newRootCommand(root string) *cobra.Command {
	return &cobra.Command{
		Use:   "removeMainMenu",
		Short: "Remove the Main menu link from " + targetFile,
		Long: `removeMainMenu deletes the pressable "Main menu" block, its handleGoHome
handler and the imports they used from the profile screen. It must be run
from the root of the expo project and refuses to touch the file when the
block is not there.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupConfig(root); err != nil {
				return err
			}
			closeLog, err := setupLogging(os.Getenv("LOG_DIR"))
			if err != nil {
				return err
			}
			defer closeLog()

			return editFile(targetPath(root), filechanges)
		},
	}
}

func main() {
	if err := newRootCommand(".").Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
