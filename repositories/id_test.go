package repositories

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/contact-book/models"
)

func TestTimestampIDGeneratorIsMonotonic(t *testing.T) {
	now := fixedClock()
	clock := func() time.Time { return now }
	gen := NewTimestampIDGenerator(clock)

	first := gen.NextID()
	assert.Equal(t, models.ContactID(strconv.FormatInt(now.UnixMilli(), 10)), first)

	second := gen.NextID()
	assert.Equal(t, models.ContactID(strconv.FormatInt(now.UnixMilli()+1, 10)), second)

	// Clock going backwards still yields a larger id
	now = now.Add(-time.Hour)
	third := gen.NextID()
	assert.Equal(t, models.ContactID(strconv.FormatInt(fixedClock().UnixMilli()+2, 10)), third)
}

func TestUUIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator(IDStrategyUUID)
	require.NoError(t, err)

	id := gen.NextID()
	_, err = uuid.Parse(string(id))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.NextID())
}

func TestNewIDGeneratorUnknownStrategy(t *testing.T) {
	_, err := NewIDGenerator("sequence")
	assert.Error(t, err)
}

func TestAssignIDSkipsTakenIDs(t *testing.T) {
	gen := NewTimestampIDGenerator(fixedClock)
	taken := models.ContactID(strconv.FormatInt(fixedClock().UnixMilli(), 10))

	id := assignID(gen, []models.Contact{{ID: taken}})
	assert.NotEqual(t, taken, id)
}
