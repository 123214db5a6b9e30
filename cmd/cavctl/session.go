package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/app/reorder"
	"github.com/MiguelCav2025/sitecav/internal/domain/content"
)

// controller is the part of a reorder.Collection a session drives.
type controller interface {
	Load(ctx context.Context) error
	Reorder(src, dst int) error
	Commit(ctx context.Context) error
	State() reorder.State
	IsDirty() bool
	NeedsCommit() bool
}

// session is an interactive line-oriented editor over one ordered
// collection. Nothing is written until save.
type session struct {
	name   string
	ctrl   controller
	lines  func() []string
	in     *bufio.Scanner
	out    io.Writer
	prompt bool

	quitPending bool
}

func newSession[T any, PT interface {
	*T
	content.Orderable
}](name string, c *reorder.Collection[T, PT], label func(T) string, in io.Reader, out io.Writer) *session {
	return &session{
		name: name,
		ctrl: c,
		lines: func() []string {
			items := c.Items()
			lines := make([]string, len(items))
			for i, item := range items {
				lines[i] = fmt.Sprintf("%3d  %s  (%s)", i, label(item), PT(&item).Identifier())
			}
			return lines
		},
		in:  bufio.NewScanner(in),
		out: out,
	}
}

var errQuit = errors.New("quit")

// Run loads the collection and reads commands until quit or end of input.
func (s *session) Run(ctx context.Context) error {
	if err := s.ctrl.Load(ctx); err != nil {
		return fmt.Errorf("loading %s: %w", s.name, err)
	}
	s.list()

	for {
		if s.prompt {
			fmt.Fprintf(s.out, "%s [%s]> ", s.name, s.ctrl.State())
		}
		if !s.in.Scan() {
			if s.ctrl.IsDirty() {
				fmt.Fprintln(s.out, "end of input: unsaved changes discarded")
			}
			return s.in.Err()
		}
		err := s.exec(ctx, strings.Fields(s.in.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *session) exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}
	cmd := args[0]
	if cmd != "quit" && cmd != "exit" && cmd != "q" {
		s.quitPending = false
	}

	switch cmd {
	case "list", "ls":
		s.list()
	case "move", "mv":
		if len(args) != 3 {
			return errors.New("usage: move <from> <to>")
		}
		src, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[1])
		}
		dst, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[2])
		}
		if err := s.ctrl.Reorder(src, dst); err != nil {
			return err
		}
		s.list()
	case "status":
		s.status()
	case "save":
		if !s.ctrl.NeedsCommit() {
			fmt.Fprintln(s.out, "nothing to save")
			return nil
		}
		if err := s.ctrl.Commit(ctx); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "order saved")
	case "reload":
		dirty := s.ctrl.IsDirty()
		if err := s.ctrl.Load(ctx); err != nil {
			return err
		}
		if dirty {
			fmt.Fprintln(s.out, "unsaved changes discarded")
		}
		s.list()
	case "quit", "exit", "q":
		if s.ctrl.IsDirty() && !s.quitPending {
			s.quitPending = true
			fmt.Fprintln(s.out, "unsaved changes: save, or quit again to discard them")
			return nil
		}
		return errQuit
	case "help", "?":
		s.help()
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (s *session) list() {
	lines := s.lines()
	if len(lines) == 0 {
		fmt.Fprintf(s.out, "%s is empty\n", s.name)
		return
	}
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
}

func (s *session) status() {
	msg := "no unsaved changes"
	switch {
	case s.ctrl.IsDirty():
		msg = "unsaved changes"
	case s.ctrl.NeedsCommit():
		msg = "no unsaved changes, stored positions have gaps (save renumbers them)"
	}
	fmt.Fprintf(s.out, "%s: %s, %s\n", s.name, s.ctrl.State(), msg)
}

func (s *session) help() {
	fmt.Fprint(s.out, `commands:
  list                 show the working order
  move <from> <to>     move the item at index from to index to
  status               show whether there are unsaved changes
  save                 write the working order as positions 0..n-1
  reload               discard changes and read the stored order
  quit                 leave the session
`)
}
