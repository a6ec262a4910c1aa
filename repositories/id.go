package repositories

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/blogem/contact-book/models"
	"github.com/google/uuid"
)

// ID generation strategies
const (
	IDStrategyTimestamp = "timestamp"
	IDStrategyUUID      = "uuid"
)

// IDGenerator issues ids for new contacts
type IDGenerator interface {
	NextID() models.ContactID
}

// NewIDGenerator returns the generator for the named strategy
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategyTimestamp:
		return NewTimestampIDGenerator(time.Now), nil
	case IDStrategyUUID:
		return uuidGenerator{}, nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", strategy)
}

// timestampGenerator renders the creation time in Unix milliseconds.
// Ids are strictly increasing within a process, so two creates in the
// same millisecond still get distinct ids.
type timestampGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestampIDGenerator creates a millisecond timestamp generator using the given clock
func NewTimestampIDGenerator(now func() time.Time) IDGenerator {
	return &timestampGenerator{now: now}
}

func (g *timestampGenerator) NextID() models.ContactID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return models.ContactID(strconv.FormatInt(ms, 10))
}

type uuidGenerator struct{}

func (uuidGenerator) NextID() models.ContactID {
	return models.ContactID(uuid.NewString())
}

// assignID picks a fresh id that is not already present in contacts
func assignID(gen IDGenerator, contacts []models.Contact) models.ContactID {
	id := gen.NextID()
	for hasID(contacts, id) {
		id = gen.NextID()
	}
	return id
}
