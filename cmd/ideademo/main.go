package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	idea "github.com/moofMonkey/go-idea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func flags(message bool) []cli.Flag {
	fs := []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
		&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "password folded into the cipher key"},
		&cli.StringFlag{Name: "log-level", Usage: "zerolog level (debug, info, warn, error)"},
	}
	if message {
		fs = append(fs, &cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "plaintext message"})
	}
	return fs
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "ideademo",
		Usage:     "IDEA block cipher demonstration",
		Version:   fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     flags(true),
		Action:    withConfig(stderr, demo),
		Commands: []*cli.Command{
			{
				Name:      "demo",
				Usage:     "encrypt then decrypt a message and print every stage",
				UsageText: "demo [--message text] [--password pw]",
				Flags:     flags(true),
				Action:    withConfig(stderr, demo),
			},
			{
				Name:      "encrypt",
				Usage:     "print the hex ciphertext of a message",
				UsageText: "encrypt [--password pw] [message...]",
				Flags:     flags(true),
				Action:    withConfig(stderr, encryptCmd),
			},
			{
				Name:      "decrypt",
				Usage:     "decrypt a hex ciphertext",
				UsageText: "decrypt [--password pw] <hex>",
				Flags:     flags(false),
				Action:    withConfig(stderr, decryptCmd),
			},
		},
	}
}

type action func(c *cli.Context, cfg *Config, logger zerolog.Logger) error

func withConfig(stderr io.Writer, fn action) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := LoadConfig(c)
		if err != nil {
			return errors.Wrap(err, "load config")
		}
		logger, err := newLogger(stderr, cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "log level")
		}
		return fn(c, cfg, logger)
	}
}

func demo(c *cli.Context, cfg *Config, logger zerolog.Logger) error {
	out := c.App.Writer
	plaintext := []byte(cfg.Message)
	fmt.Fprintf(out, "Plaintext: %s\n", formatBytes(plaintext))

	encrypted, err := idea.Encrypt(plaintext, cfg.Password)
	if err != nil {
		return err
	}
	logger.Debug().Int("in", len(plaintext)).Int("out", len(encrypted)).Msg("encrypted")
	fmt.Fprintf(out, "Encrypted: %s\n", formatBytes(encrypted))

	decrypted, err := idea.Decrypt(encrypted, cfg.Password)
	if err != nil {
		return err
	}
	logger.Debug().Int("in", len(encrypted)).Int("out", len(decrypted)).Msg("decrypted")
	fmt.Fprintf(out, "Decrypted: %s\n", formatBytes(decrypted))
	fmt.Fprintf(out, "Decrypted (as string): %s\n", decrypted)
	return nil
}

func encryptCmd(c *cli.Context, cfg *Config, logger zerolog.Logger) error {
	message := cfg.Message
	if c.Args().Present() {
		message = strings.Join(c.Args().Slice(), " ")
	}
	encrypted, err := idea.Encrypt([]byte(message), cfg.Password)
	if err != nil {
		return err
	}
	logger.Info().Int("bytes", len(encrypted)).Msg("message encrypted")
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(encrypted))
	return nil
}

func decryptCmd(c *cli.Context, cfg *Config, logger zerolog.Logger) error {
	if c.NArg() != 1 {
		return errors.New("decrypt expects exactly one hex argument")
	}
	ciphertext, err := hex.DecodeString(c.Args().First())
	if err != nil {
		return errors.Wrap(err, "decode ciphertext")
	}
	decrypted, err := idea.Decrypt(ciphertext, cfg.Password)
	if err != nil {
		logger.Error().Err(err).Int("bytes", len(ciphertext)).Msg("decrypt failed")
		return err
	}
	logger.Info().Int("bytes", len(decrypted)).Msg("message decrypted")
	fmt.Fprintln(c.App.Writer, string(decrypted))
	return nil
}

// formatBytes renders b as signed bytes, e.g. [-24, -8, 94].
func formatBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(int8(v))))
	}
	sb.WriteByte(']')
	return sb.String()
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
