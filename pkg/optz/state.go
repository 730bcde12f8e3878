// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optz

import (
	"fmt"
	"slices"

	"github.com/ef-ds/deque"
)

// phase is the recognition status of the option at one argument position.
type phase int

const (
	// unrecognized: no argument claimed by the current reader call.
	unrecognized phase = iota
	// pending: the current reader call claimed arguments up to the cursor.
	pending
	// recognized: some reader claimed the option. Permanent for the position.
	recognized
	// failed: nobody recognized the option.
	failed
)

func (p phase) String() string {
	switch p {
	case unrecognized:
		return "unrecognized"
	case pending:
		return "pending"
	case recognized:
		return "recognized"
	case failed:
		return "failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// state tracks the recognition of the option at one argument position.
// It is owned by the parser while the position is processed.
type state[T any] struct {
	args     []string
	head     []string
	argIndex int

	name   string
	key    string
	values []string

	phase phase
	// upto is the index of the first argument following the claimed ones,
	// or -1 when nothing is claimed.
	upto int
	// claimed are the arguments claimed by the recognizing reader.
	claimed []string

	// actions queued by the current reader call (func() error).
	actions *deque.Deque
	// deferred is the deferral registered by the current reader call.
	deferred ReaderFunc[T]
	// allDeferred are the deferrals of every reader call (ReaderFunc[T]).
	allDeferred *deque.Deque
	// observers run once the option is recognized.
	observers []func(*Option[T]) error

	// reason is the unrecognize reason of the current reader call.
	reason error
	// finalReason is the first reason retained from a deferring reader call.
	finalReason error
}

func newState[T any](args []string, argIndex int) *state[T] {
	return &state[T]{
		args:        args,
		head:        slices.Clone(args[:argIndex]),
		argIndex:    argIndex,
		upto:        -1,
		actions:     deque.New(),
		allDeferred: deque.New(),
	}
}

func (s *state[T]) isRecognized() bool {
	return s.phase == recognized
}

// tail returns the arguments starting at the option.
func (s *state[T]) tail() []string {
	return s.args[s.argIndex:]
}

// setInput makes in the current candidate and returns the arguments it implies.
func (s *state[T]) setInput(in Input) []string {
	s.name = in.Name
	s.key = in.LookupKey()
	s.values = in.Values

	args := make([]string, 0, len(s.head)+1+len(in.Values)+len(in.Tail))
	args = append(args, s.head...)
	args = append(args, in.Name)
	args = append(args, in.Values...)
	args = append(args, in.Tail...)
	s.args = args
	return args
}

// read invokes reader and interprets the recognition methods it called.
func (s *state[T]) read(opt *Option[T], reader Reader[T]) error {
	s.actions = deque.New()
	s.reason = nil
	s.deferred = nil
	if !s.isRecognized() {
		s.phase = unrecognized
		s.upto = -1
	}

	if err := reader.Read(opt); err != nil {
		return err
	}

	if s.deferred != nil {
		s.allDeferred.PushBack(s.deferred)
		if s.finalReason == nil {
			s.finalReason = s.reason
		}
		return nil
	}

	if actions := s.actions; actions.Len() > 0 {
		s.observe(func(*Option[T]) error {
			return drain(actions)
		})
	}
	if !s.isRecognized() && s.upto >= 0 {
		s.claimed = slices.Clip(s.args[s.argIndex+1 : s.upto])
		s.phase = recognized
	}
	return nil
}

// done finalizes the position. It returns the index of the argument to
// process next.
func (s *state[T]) done(opt *Option[T]) (int, error) {
	if !s.isRecognized() {
		s.phase = failed
		if s.finalReason != nil {
			return -1, s.finalReason
		}
		return -1, opt.unrecognizedError()
	}

	s.actions = deque.New()
	for s.allDeferred.Len() > 0 {
		v, _ := s.allDeferred.PopFront()
		if err := v.(ReaderFunc[T]).Read(opt); err != nil {
			return -1, err
		}
	}
	for _, observer := range s.observers {
		if err := observer(opt); err != nil {
			return -1, err
		}
	}
	// Actions registered by deferred readers.
	if err := drain(s.actions); err != nil {
		return -1, err
	}
	return s.upto, nil
}

// take claims option values. When rest is set the values extend up to the
// end of the arguments rather than to the values proposed by the syntax.
func (s *state[T]) take(rest bool, limit int, limited bool) []string {
	if limited && limit < 0 {
		limit = 0
	}
	if s.isRecognized() {
		if limited && limit < len(s.claimed) {
			return slices.Clone(s.claimed[:limit])
		}
		return slices.Clone(s.claimed)
	}

	from := s.argIndex + 1
	var to int
	switch {
	case limited && rest:
		to = from + limit
	case limited:
		to = from + min(limit, len(s.values))
	case rest:
		to = len(s.args)
	default:
		to = from + len(s.values)
	}
	to = clamp(to, from, len(s.args))

	result := slices.Clone(s.args[from:to])
	s.claim(from + len(result))
	return result
}

func (s *state[T]) recognize(action func() error) {
	if s.upto < 0 {
		s.claim(s.argIndex + 1)
	}
	if action != nil {
		s.actions.PushBack(action)
	}
}

func (s *state[T]) claim(upto int) {
	s.upto = upto
	if !s.isRecognized() {
		s.phase = pending
	}
	s.deferred = nil
	s.reason = nil
}

func (s *state[T]) deferTo(then ReaderFunc[T]) {
	if then == nil {
		then = noopReader[T]
	}
	s.deferred = then
}

func (s *state[T]) unrecognize(reason error) {
	if s.isRecognized() {
		return
	}
	if s.deferred == nil {
		s.deferred = noopReader[T]
	}
	if reason != nil {
		s.reason = reason
	}
	s.phase = unrecognized
	s.upto = -1
	s.actions = deque.New()
}

func (s *state[T]) observe(observer func(*Option[T]) error) {
	s.observers = append(s.observers, observer)
}

func drain(actions *deque.Deque) error {
	for actions.Len() > 0 {
		v, _ := actions.PopFront()
		if err := v.(func() error)(); err != nil {
			return err
		}
	}
	return nil
}

func noopReader[T any](*Option[T]) error {
	return nil
}
