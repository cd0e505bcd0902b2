package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/di"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/ports"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(func(logger *zap.Logger, messageFilter ports.MessageFilter) error {
		return run(logger, messageFilter, flags, os.Stdin)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, messageFilter ports.MessageFilter, flags *di.CLIFlags, stdin io.Reader) error {
	defer logger.Sync()

	message, err := readMessage(logger, flags, stdin)
	if err != nil {
		return err
	}

	if err := messageFilter.Start(); err != nil {
		return err
	}
	defer messageFilter.Stop()

	_, err = messageFilter.ProcessMessage(context.Background(), message)
	return err
}

// readMessage takes the message from -message, then -file, then stdin
func readMessage(logger *zap.Logger, flags *di.CLIFlags, stdin io.Reader) (string, error) {
	if flags.Message != "" {
		return flags.Message, nil
	}

	var r io.Reader
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		r = file
		logger.Info("Reading message from file", zap.String("file", flags.InputFile))
	} else {
		if stdin == nil {
			return "", errors.New("no message given")
		}
		r = stdin
		logger.Info("Reading message from stdin")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}
	return string(data), nil
}
