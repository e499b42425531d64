package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"rbnim/game"
	"rbnim/searcher"
	"strconv"
	"strings"
)

var ErrNoInput = errors.New("input closed before a move was entered")

type Agent interface {
	// FindMove returns the move to play and the search metrics, if any were collected
	FindMove(state *game.State) (game.Move, searcher.SearchMetric, error)
}

// Human reads moves from a console and re-prompts until a legal move is
// entered.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewScanner(in), out: out}
}

func (h *Human) FindMove(state *game.State) (game.Move, searcher.SearchMetric, error) {
	fmt.Fprintln(h.out, "Your turn:")
	for {
		token, err := h.ask("Which color to remove (red or blue)? ")
		if err != nil {
			return game.Move{}, searcher.SearchMetric{}, err
		}
		color, err := game.ParseColor(token)
		if err != nil {
			fmt.Fprintln(h.out, "Invalid color! Choose 'red' or 'blue'.")
			continue
		}

		token, err = h.ask("Remove how many marbles (1 or 2)? ")
		if err != nil {
			return game.Move{}, searcher.SearchMetric{}, err
		}
		count, err := strconv.Atoi(token)
		if err != nil {
			fmt.Fprintln(h.out, "Please enter a valid number (1 or 2).")
			continue
		}

		move := game.Move{Color: color, Count: count}
		if !state.IsLegal(move) {
			fmt.Fprintln(h.out, "Invalid move! Try again.")
			continue
		}
		return move, searcher.SearchMetric{}, nil
	}
}

func (h *Human) ask(prompt string) (string, error) {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", fmt.Errorf("reading move: %w", err)
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(h.in.Text()), nil
}
