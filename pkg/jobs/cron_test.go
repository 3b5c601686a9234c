package jobs

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/store"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/wizard"
)

func TestSetupJobs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	cm := NewCronManager(wizard.NewManager(time.Minute), store.NewMemoryStore(), nil, logger)
	require.NoError(t, cm.SetupJobs())

	assert.Contains(t, buf.String(), "Cron jobs configured successfully")

	cm.Start()
	cm.Stop()
	assert.Contains(t, buf.String(), "Stopping cron scheduler")
}

func TestNewCronManagerDefaultsLogger(t *testing.T) {
	cm := NewCronManager(wizard.NewManager(time.Minute), store.NewMemoryStore(), nil, nil)
	assert.NotNil(t, cm.logger)
}
