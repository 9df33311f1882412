package event

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/pkg/domain/model"
)

func TestLogDispatcher(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dispatcher := NewLogDispatcher(logger)

	err := dispatcher.Dispatch(model.OrderDeleted{OrderID: 5, DeletedBy: 1})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, "OrderDeleted", entry.Data["event"])
	assert.Equal(t, model.OrderDeleted{OrderID: 5, DeletedBy: 1}, entry.Data["payload"])
}
