// Package explore expands the move tree breadth first from a starting
// position and records every reached state in the store.
package explore

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/LIAMBB/chess-movegen/components"
	"github.com/LIAMBB/chess-movegen/store"
)

type Options struct {
	MaxDepth     int
	Workers      int   // defaults to runtime.NumCPU()
	MaxSizeBytes int64 // zero disables the size check
}

type Stats struct {
	RootID        int64
	StatesAtDepth map[int]int // new states found at each ply
	Processed     int         // states expanded
	StoppedEarly  bool        // the database size ceiling was reached
}

type Explorer struct {
	store *store.Store
	opts  Options
	log   *logrus.Entry
}

type node struct {
	stateID int64
	board   *components.ChessBoard
}

type expansion struct {
	parent   node
	children []*components.ChessBoard
}

func New(st *store.Store, opts Options) *Explorer {
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	return &Explorer{
		store: st,
		opts:  opts,
		log:   logrus.WithField("component", "explorer"),
	}
}

// Run explores up to MaxDepth plies from root. A state reached more than once
// is linked to each parent but expanded only the first time.
func (e *Explorer) Run(ctx context.Context, root *components.ChessBoard) (Stats, error) {
	stats := Stats{StatesAtDepth: make(map[int]int)}

	rootID, err := e.store.SaveBoard(ctx, root)
	if err != nil {
		return stats, fmt.Errorf("explore: store root: %w", err)
	}
	stats.RootID = rootID

	seen := map[int64]bool{rootID: true}
	queue := []node{{stateID: rootID, board: root}}

	for depth := 0; depth < e.opts.MaxDepth && len(queue) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if e.opts.MaxSizeBytes > 0 {
			exceeded, err := e.store.ExceedsSize(ctx, e.opts.MaxSizeBytes)
			if err != nil {
				return stats, fmt.Errorf("explore: check size: %w", err)
			}
			if exceeded {
				e.log.WithField("depth", depth).Warn("database size limit reached, stopping exploration")
				stats.StoppedEarly = true
				return stats, nil
			}
		}

		e.log.WithFields(logrus.Fields{"depth": depth, "nodes": len(queue)}).Info("processing depth")

		expansions, err := e.expand(ctx, queue)
		if err != nil {
			return stats, err
		}

		var next []node
		for _, exp := range expansions {
			ids, err := e.store.SaveBoards(ctx, exp.children)
			if err != nil {
				return stats, fmt.Errorf("explore: store children of %d: %w", exp.parent.stateID, err)
			}
			if err := e.store.AddRelations(ctx, exp.parent.stateID, ids); err != nil {
				return stats, fmt.Errorf("explore: link children of %d: %w", exp.parent.stateID, err)
			}
			for i, id := range ids {
				if seen[id] {
					continue
				}
				seen[id] = true
				next = append(next, node{stateID: id, board: exp.children[i]})
			}
		}

		stats.Processed += len(queue)
		stats.StatesAtDepth[depth] = len(next)
		e.log.WithFields(logrus.Fields{
			"depth":     depth,
			"new":       len(next),
			"processed": stats.Processed,
		}).Info("depth complete")

		queue = next
	}

	return stats, nil
}

// expand generates successors for every queued node on a pool of workers.
// Results keep the queue order.
func (e *Explorer) expand(ctx context.Context, queue []node) ([]expansion, error) {
	results := make([]expansion, len(queue))
	work := make(chan int)
	errChan := make(chan error, 1)

	var wg sync.WaitGroup
	for i := 0; i < e.opts.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range work {
				children, err := queue[j].board.Successors()
				if err != nil {
					select {
					case errChan <- fmt.Errorf("explore: worker %d, state %d: %w", workerID, queue[j].stateID, err):
					default:
					}
					continue
				}
				results[j] = expansion{parent: queue[j], children: children}
			}
		}(i)
	}

	// Distribute work
feed:
	for j := range queue {
		select {
		case <-ctx.Done():
			break feed
		case work <- j:
		}
	}
	close(work)
	wg.Wait()
	close(errChan)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := <-errChan; err != nil {
		return nil, err
	}
	return results, nil
}
