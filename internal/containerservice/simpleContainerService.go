package containerservice

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/SystemBuilders/chains/internal/cache"
	"github.com/SystemBuilders/chains/internal/queue"
	"github.com/SystemBuilders/chains/internal/rpn"
	"github.com/SystemBuilders/chains/internal/stack"
)

// SafeContainerMap is the container service's data structure.
type SafeContainerMap struct {
	Stacks map[ulid.ULID]*stack.Stack[string]
	Queues map[ulid.ULID]*queue.Queue[string]
	Mutex  sync.Mutex
}

var _ ContainerService = (*SimpleContainerService)(nil)

// SimpleContainerService is a container service that implements
// ContainerService. It keeps the containers in golang maps guarded by a
// single mutex and has an in-built logger.
//
// It also evaluates postfix expressions, remembering recent results in
// an LRU cache.
type SimpleContainerService struct {
	log        zerolog.Logger
	containers *SafeContainerMap
	entropy    io.Reader

	evalMu    sync.Mutex
	evaluator *rpn.Evaluator
	results   *cache.LRUCache
}

// NewSimpleContainerService creates and returns a new container service
// ready to use. cacheSize bounds the number of remembered expression
// results.
func NewSimpleContainerService(log zerolog.Logger, cacheSize int) *SimpleContainerService {
	safeContainerMap := &SafeContainerMap{
		Stacks: make(map[ulid.ULID]*stack.Stack[string]),
		Queues: make(map[ulid.ULID]*queue.Queue[string]),
	}
	return &SimpleContainerService{
		log:        log,
		containers: safeContainerMap,
		entropy:    ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		evaluator:  rpn.NewEvaluator(log),
		results:    cache.NewLRUCache(cacheSize),
	}
}

// Create makes a new container of the given kind.
func (cs *SimpleContainerService) Create(kind Kind) (ulid.ULID, error) {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now()), cs.entropy)
	if err != nil {
		return ulid.ULID{}, errors.Wrap(err, "generate container id")
	}

	switch kind {
	case KindStack:
		cs.containers.Stacks[id] = stack.New[string]()
	case KindQueue:
		cs.containers.Queues[id] = queue.New[string]()
	default:
		return ulid.ULID{}, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}

	cs.
		log.
		Debug().
		Str("kind", string(kind)).
		Str("container", id.String()).
		Msg("created")
	return id, nil
}

// Drop removes a container.
func (cs *SimpleContainerService) Drop(kind Kind, id ulid.ULID) error {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	switch kind {
	case KindStack:
		s, ok := cs.containers.Stacks[id]
		if !ok {
			return cs.missing(kind, id)
		}
		s.Clear()
		delete(cs.containers.Stacks, id)
	case KindQueue:
		q, ok := cs.containers.Queues[id]
		if !ok {
			return cs.missing(kind, id)
		}
		q.Clear()
		delete(cs.containers.Queues, id)
	default:
		return errors.Wrapf(ErrUnknownKind, "%q", kind)
	}

	cs.
		log.
		Debug().
		Str("kind", string(kind)).
		Str("container", id.String()).
		Msg("dropped")
	return nil
}

// Describe returns a snapshot of a container.
func (cs *SimpleContainerService) Describe(kind Kind, id ulid.ULID) (Description, error) {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	switch kind {
	case KindStack:
		s, ok := cs.containers.Stacks[id]
		if !ok {
			return Description{}, cs.missing(kind, id)
		}
		return Description{Count: s.Count(), Values: s.Values()}, nil
	case KindQueue:
		q, ok := cs.containers.Queues[id]
		if !ok {
			return Description{}, cs.missing(kind, id)
		}
		return Description{Count: q.Count(), Values: q.Values()}, nil
	}
	return Description{}, errors.Wrapf(ErrUnknownKind, "%q", kind)
}

// Clear empties a container.
func (cs *SimpleContainerService) Clear(kind Kind, id ulid.ULID) error {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	switch kind {
	case KindStack:
		s, ok := cs.containers.Stacks[id]
		if !ok {
			return cs.missing(kind, id)
		}
		s.Clear()
	case KindQueue:
		q, ok := cs.containers.Queues[id]
		if !ok {
			return cs.missing(kind, id)
		}
		q.Clear()
	default:
		return errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	return nil
}

// Push places value on top of the stack id.
func (cs *SimpleContainerService) Push(id ulid.ULID, value string) error {
	if value == "" {
		return ErrEmptyValue
	}

	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	s, ok := cs.containers.Stacks[id]
	if !ok {
		return cs.missing(KindStack, id)
	}
	if err := s.Push(value); err != nil {
		return err
	}
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Int("count", s.Count()).
		Msg("pushed")
	return nil
}

// Pop removes and returns the value on top of the stack id.
func (cs *SimpleContainerService) Pop(id ulid.ULID) (string, error) {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	s, ok := cs.containers.Stacks[id]
	if !ok {
		return "", cs.missing(KindStack, id)
	}
	value, err := s.Pop()
	if err != nil {
		cs.
			log.
			Debug().
			Str("container", id.String()).
			Msg("can't pop, stack is empty")
		return "", err
	}
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Int("count", s.Count()).
		Msg("popped")
	return value, nil
}

// Peek returns the value on top of the stack id.
func (cs *SimpleContainerService) Peek(id ulid.ULID) (string, error) {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	s, ok := cs.containers.Stacks[id]
	if !ok {
		return "", cs.missing(KindStack, id)
	}
	return s.Peek()
}

// Enqueue adds value to the tail of the queue id.
func (cs *SimpleContainerService) Enqueue(id ulid.ULID, value string) error {
	if value == "" {
		return ErrEmptyValue
	}

	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	q, ok := cs.containers.Queues[id]
	if !ok {
		return cs.missing(KindQueue, id)
	}
	if _, err := q.Enqueue(value); err != nil {
		return err
	}
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Int("count", q.Count()).
		Msg("enqueued")
	return nil
}

// Dequeue removes and returns the value at the head of the queue id.
func (cs *SimpleContainerService) Dequeue(id ulid.ULID) (string, error) {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	q, ok := cs.containers.Queues[id]
	if !ok {
		return "", cs.missing(KindQueue, id)
	}
	value, err := q.Dequeue()
	if err != nil {
		cs.
			log.
			Debug().
			Str("container", id.String()).
			Msg("can't dequeue, queue is empty")
		return "", err
	}
	cs.
		log.
		Debug().
		Str("container", id.String()).
		Int("count", q.Count()).
		Msg("dequeued")
	return value, nil
}

// PeekHead returns the value at the head of the queue id.
func (cs *SimpleContainerService) PeekHead(id ulid.ULID) (string, error) {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	q, ok := cs.containers.Queues[id]
	if !ok {
		return "", cs.missing(KindQueue, id)
	}
	return q.PeekHead()
}

// PeekTail returns the value at the tail of the queue id.
func (cs *SimpleContainerService) PeekTail(id ulid.ULID) (string, error) {
	cs.containers.Mutex.Lock()
	defer cs.containers.Mutex.Unlock()

	q, ok := cs.containers.Queues[id]
	if !ok {
		return "", cs.missing(KindQueue, id)
	}
	return q.PeekTail()
}

func (cs *SimpleContainerService) missing(kind Kind, id ulid.ULID) error {
	cs.
		log.
		Debug().
		Str("kind", string(kind)).
		Str("container", id.String()).
		Msg("container doesn't exist")
	return errors.Wrapf(ErrContainerDoesntExist, "%s %s", kind, id)
}
