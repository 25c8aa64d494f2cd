package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	ecsig "github.com/josekit/ecsig-go"
	"github.com/josekit/ecsig-go/internal/audit"
	"github.com/josekit/ecsig-go/internal/config"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))

	var journalFile *os.File
	var journalOut io.Writer
	if cfg.JournalPath != "" {
		f, err := os.OpenFile(cfg.JournalPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			slog.Error("open journal", "error", err)
			os.Exit(1)
		}
		journalFile = f
		journalOut = f
	}
	journal := audit.NewJournal(cfg.JournalBuffer, journalOut)

	app := &cli.App{
		Name:  "ecsig",
		Usage: "sign and verify messages with multi-curve ECDSA keys",
		Commands: []*cli.Command{
			{
				Name:      "sign",
				Usage:     "sign a message with a private key, printing the url-safe base64 signature",
				ArgsUsage: "<message or - for stdin>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "key", Usage: "path to a SEC1 or PKCS8 private key PEM file"},
					&cli.StringFlag{Name: "raw-hex", Usage: "hex-encoded raw private scalar (alternative to --key)"},
					&cli.StringFlag{Name: "alg", Value: cfg.DefaultAlgorithm, Usage: "algorithm: ES256, ES384, ES512 or ES256K"},
				},
				Action: func(cctx *cli.Context) error {
					return runSign(cctx, journal)
				},
			},
			{
				Name:      "verify",
				Usage:     "verify a signature against a message and a public key",
				ArgsUsage: "<message or - for stdin>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pub", Required: true, Usage: "path to a public key PEM file"},
					&cli.StringFlag{Name: "sig", Required: true, Usage: "url-safe base64 signature"},
					&cli.StringFlag{Name: "alg", Value: cfg.DefaultAlgorithm, Usage: "algorithm: ES256, ES384, ES512 or ES256K"},
				},
				Action: func(cctx *cli.Context) error {
					return runVerify(cctx, journal)
				},
			},
			{
				Name:  "inspect",
				Usage: "report which curve a PEM key belongs to",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "key", Usage: "path to a private key PEM file"},
					&cli.StringFlag{Name: "pub", Usage: "path to a public key PEM file"},
				},
				Action: runInspect,
			},
		},
	}

	// Drain the journal before exiting, even on command failure.
	runErr := app.Run(os.Args)
	journal.Close()
	if journalFile != nil {
		journalFile.Close()
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		if coder, ok := runErr.(cli.ExitCoder); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func runSign(cctx *cli.Context, journal *audit.Journal) error {
	alg := ecsig.Algorithm(cctx.String("alg"))
	message, err := readMessage(cctx)
	if err != nil {
		return err
	}

	key, err := loadSigningKey(cctx, alg)
	if err != nil {
		journal.Record("Sign", string(alg), "ERROR", errorKind(err), err.Error())
		return err
	}

	sig, err := ecsig.SignEC(message, key, alg)
	if err != nil {
		journal.Record("Sign", string(alg), "ERROR", errorKind(err), err.Error())
		return err
	}

	journal.Record("Sign", string(alg), "OK", "", "")
	fmt.Println(sig)
	return nil
}

func runVerify(cctx *cli.Context, journal *audit.Journal) error {
	alg := ecsig.Algorithm(cctx.String("alg"))
	message, err := readMessage(cctx)
	if err != nil {
		return err
	}

	pemText, err := os.ReadFile(cctx.String("pub"))
	if err != nil {
		return err
	}
	key, err := loadVerifyingKey(alg, string(pemText))
	if err != nil {
		journal.Record("Verify", string(alg), "ERROR", errorKind(err), err.Error())
		return err
	}

	valid, err := ecsig.VerifyEC(message, cctx.String("sig"), key, alg)
	if err != nil {
		journal.Record("Verify", string(alg), "ERROR", errorKind(err), err.Error())
		return err
	}
	if !valid {
		journal.Record("Verify", string(alg), "INVALID", "", "")
		return cli.Exit("invalid", 1)
	}

	journal.Record("Verify", string(alg), "OK", "", "")
	fmt.Println("valid")
	return nil
}

func runInspect(cctx *cli.Context) error {
	if path := cctx.String("key"); path != "" {
		pemText, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, alg := range ecsig.Algorithms() {
			if _, err := loadSigningKeyPEM(alg, string(pemText)); err == nil {
				fmt.Printf("private key: %s\n", alg)
				return nil
			}
		}
		return cli.Exit("not a valid private key for any supported curve", 1)
	}
	if path := cctx.String("pub"); path != "" {
		pemText, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, alg := range ecsig.Algorithms() {
			if _, err := loadVerifyingKey(alg, string(pemText)); err == nil {
				fmt.Printf("public key: %s\n", alg)
				return nil
			}
		}
		return cli.Exit("not a valid public key for any supported curve", 1)
	}
	return cli.Exit("one of --key or --pub is required", 1)
}

func readMessage(cctx *cli.Context) ([]byte, error) {
	arg := cctx.Args().First()
	if arg == "" {
		return nil, cli.Exit("message argument is required (use - for stdin)", 1)
	}
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return []byte(arg), nil
}

// loadSigningKey pairs the algorithm tag with the matching curve's key
// type; the library trusts the caller to get this pairing right.
func loadSigningKey(cctx *cli.Context, alg ecsig.Algorithm) (ecsig.Signer, error) {
	if rawHex := cctx.String("raw-hex"); rawHex != "" {
		raw, err := hex.DecodeString(strings.TrimSpace(rawHex))
		if err != nil {
			return nil, fmt.Errorf("decode raw scalar hex: %w", err)
		}
		return loadSigningKeyBytes(alg, raw)
	}
	path := cctx.String("key")
	if path == "" {
		return nil, cli.Exit("one of --key or --raw-hex is required", 1)
	}
	pemText, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadSigningKeyPEM(alg, string(pemText))
}

func loadSigningKeyPEM(alg ecsig.Algorithm, pemText string) (ecsig.Signer, error) {
	switch alg {
	case ecsig.ES256:
		return ecsig.NewSigningKeyP256FromPEM(pemText)
	case ecsig.ES384:
		return ecsig.NewSigningKeyP384FromPEM(pemText)
	case ecsig.ES512:
		return ecsig.NewSigningKeyP521FromPEM(pemText)
	case ecsig.ES256K:
		return ecsig.NewSigningKeyK256FromPEM(pemText)
	default:
		return nil, ecsig.ErrUnknownAlgorithm
	}
}

func loadSigningKeyBytes(alg ecsig.Algorithm, raw []byte) (ecsig.Signer, error) {
	switch alg {
	case ecsig.ES256:
		return ecsig.NewSigningKeyP256FromBytes(raw)
	case ecsig.ES384:
		return ecsig.NewSigningKeyP384FromBytes(raw)
	case ecsig.ES512:
		return ecsig.NewSigningKeyP521FromBytes(raw)
	case ecsig.ES256K:
		return ecsig.NewSigningKeyK256FromBytes(raw)
	default:
		return nil, ecsig.ErrUnknownAlgorithm
	}
}

func loadVerifyingKey(alg ecsig.Algorithm, pemText string) (ecsig.Verifier, error) {
	switch alg {
	case ecsig.ES256:
		return ecsig.NewVerifyingKeyP256FromPEM(pemText)
	case ecsig.ES384:
		return ecsig.NewVerifyingKeyP384FromPEM(pemText)
	case ecsig.ES512:
		return ecsig.NewVerifyingKeyP521FromPEM(pemText)
	case ecsig.ES256K:
		return ecsig.NewVerifyingKeyK256FromPEM(pemText)
	default:
		return nil, ecsig.ErrUnknownAlgorithm
	}
}

func errorKind(err error) string {
	var e *ecsig.Error
	if errors.As(err, &e) {
		return string(e.Kind)
	}
	return ""
}
