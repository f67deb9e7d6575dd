package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/LIAMBB/chess-movegen/store"
)

// traverseTree lets the user walk the stored move tree: a number descends
// into that child, 'b' goes back, 'd' dumps the raw board and 'q' quits.
func traverseTree(ctx context.Context, st *store.Store, rootID int64, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	currentNodeID := rootID
	var history []int64

	for {
		board, err := st.LoadBoard(ctx, currentNodeID)
		if err != nil {
			return fmt.Errorf("load state %d: %w", currentNodeID, err)
		}
		fmt.Fprintf(out, "\nCurrent Board State (ID: %d):\n%s", currentNodeID, board)

		childIDs, err := st.Children(ctx, currentNodeID)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "\nAvailable Moves:")
		if len(childIDs) == 0 {
			fmt.Fprintln(out, "No further moves available.")
		}
		for i, childID := range childIDs {
			childBoard, err := st.LoadBoard(ctx, childID)
			if err != nil {
				return fmt.Errorf("load state %d: %w", childID, err)
			}
			fmt.Fprintf(out, "%d: Move to state ID %d (%s)\n", i, childID, childBoard.Encode())
		}

		fmt.Fprint(out, "\nEnter move number, 'b' to go back, 'd' to dump, or 'q' to quit: ")
		input, err := reader.ReadString('\n')
		if err == io.EOF && input == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		input = strings.TrimSpace(input)

		switch input {
		case "b":
			if len(history) > 0 {
				currentNodeID = history[len(history)-1]
				history = history[:len(history)-1]
			} else {
				fmt.Fprintln(out, "Cannot go back further")
			}
		case "d":
			fmt.Fprint(out, spew.Sdump(board))
		case "q":
			return nil
		default:
			moveIndex, err := strconv.Atoi(input)
			if err != nil || moveIndex < 0 || moveIndex >= len(childIDs) {
				fmt.Fprintln(out, "Invalid input. Please enter a valid move number.")
				continue
			}
			history = append(history, currentNodeID)
			currentNodeID = childIDs[moveIndex]
		}
	}
}
