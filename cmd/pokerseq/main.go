package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NChechulin/poker-sequence-search/internal/config"
	"github.com/NChechulin/poker-sequence-search/internal/rng"
	"github.com/NChechulin/poker-sequence-search/internal/util"
	"github.com/NChechulin/poker-sequence-search/pkg/game"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// exit codes
const (
	exitOK = iota
	exitHandSize
	exitBadInput
)

var command = flag.String("c", "play", "specifies the command (play, deal)")
var format = flag.String("format", "text", "output format for play (text, json)")
var pretty = flag.Bool("pretty", false, "also print the matched cards")

type playOptions struct {
	format string
	pretty bool
	// prompt receives the input prompts, nil disables them
	prompt io.Writer
}

func main() {
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not parse level")
	}

	switch *command {
	case "play":
		opts := playOptions{
			format: *format,
			pretty: *pretty,
		}

		if term.IsTerminal(int(os.Stdin.Fd())) {
			opts.prompt = os.Stderr
		}

		os.Exit(play(os.Stdin, os.Stdout, opts))

	case "deal":
		if err := deal(os.Stdout, rng.New(cfg.Deal.Seed), cfg.Deal); err != nil {
			logrus.WithError(err).Fatal("could not deal")
		}

	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// play reads the computer's and the player's lines from in and writes the outcome to out
func play(in io.Reader, out io.Writer, opts playOptions) int {
	log := logrus.WithField("round", uuid.New().String())
	reader := bufio.NewReader(in)

	computer, err := getLine(reader, opts.prompt, "Computer")
	if err != nil {
		log.WithError(err).Error("could not read the computer's cards")
		return exitBadInput
	}

	player, err := getLine(reader, opts.prompt, "Player")
	if err != nil {
		log.WithError(err).Error("could not read the player's cards")
		return exitBadInput
	}

	round, err := game.NewRound(computer, player)
	if err != nil {
		log.WithError(err).Error("could not parse cards")
		return exitBadInput
	}

	log.WithFields(logrus.Fields{
		"computer": round.Computer.Pretty(),
		"player":   round.Player.Pretty(),
	}).Debug("playing round")

	result, err := round.Play()
	if err != nil {
		log.WithError(err).Error("could not play round")
		if errors.Is(err, game.ErrPatternLongerThanText) || errors.Is(err, game.ErrEmptyHand) {
			return exitHandSize
		}

		return exitBadInput
	}

	if err := writeResult(out, round, result, opts); err != nil {
		log.WithError(err).Error("could not write result")
		return exitBadInput
	}

	return exitOK
}

func writeResult(out io.Writer, round *game.Round, result *game.Result, opts playOptions) error {
	switch opts.format {
	case "json":
		return json.NewEncoder(out).Encode(result)
	case "text", "":
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}

	if _, err := fmt.Fprintln(out, result.String()); err != nil {
		return err
	}

	if opts.pretty {
		for i, match := range result.Matches(round) {
			if _, err := fmt.Fprintf(out, "  %d: %s\n", result.Offsets[i], match.Pretty()); err != nil {
				return err
			}
		}
	}

	return nil
}

func getLine(reader *bufio.Reader, prompt io.Writer, question string) (string, error) {
	if prompt != nil {
		_, _ = fmt.Fprintf(prompt, "%s: ", question)
	}

	str, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && str != "") {
		return "", err
	}

	return strings.TrimRight(str, "\r\n"), nil
}

// deal writes a random round as two lines, suitable as input for play
func deal(out io.Writer, gen rng.Generator, cfg config.Deal) error {
	round, err := game.Deal(gen, game.DealOptions{
		ComputerCards: cfg.ComputerCards,
		PlayerCards:   cfg.PlayerCards,
		Jokers:        cfg.Jokers,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s\n%s\n", round.Computer, round.Player)
	return err
}
